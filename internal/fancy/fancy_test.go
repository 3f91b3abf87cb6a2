package fancy_test

import (
	"testing"

	"github.com/atlanticdynamic/statusd/internal/fancy"
	"github.com/stretchr/testify/assert"
)

func TestTree(t *testing.T) {
	tree := fancy.Tree()
	assert.NotNil(t, tree)

	tree.Root("Root Node")
	child := fancy.BranchNode("Child Node", "")
	child.Child("Grandchild")
	tree.Child(child)

	out := tree.String()
	assert.Contains(t, out, "Root Node")
	assert.Contains(t, out, "Child Node")
	assert.Contains(t, out, "Grandchild")
}

func TestBranchNode(t *testing.T) {
	node := fancy.BranchNode("Test Title", "(5)")
	out := node.String()
	assert.Contains(t, out, "Test Title")
	assert.Contains(t, out, "(5)")

	bare := fancy.BranchNode("Only Title", "")
	assert.Contains(t, bare.String(), "Only Title")
}

func TestTextStyles(t *testing.T) {
	assert.Contains(t, fancy.ListenerText("127.0.0.1:8080"), "127.0.0.1:8080")
	assert.Contains(t, fancy.ValidText("valid"), "valid")
	assert.Contains(t, fancy.ErrorText("broken"), "broken")
	assert.Contains(t, fancy.PathText("PORT"), "PORT")
}
