package trie

import (
	"slices"
	"strings"
)

// Node is a single character in the trie.
type Node struct {
	parent   *Node          // non-owning back reference, nil for the root and for detached nodes
	children map[rune]*Node // owned children keyed by their character
	key      rune           // the character this node represents, zero for the root
	isWord   bool           // the path from the root to this node spells a stored word
	depth    int            // number of characters between the root and this node
}

// newNode creates a node for key hanging under parent.
func newNode(key rune, parent *Node) *Node {
	return &Node{
		parent: parent,
		key:    key,
		depth:  parent.depth + 1,
	}
}

// isRoot checks if the current node is the root of the trie.
func (n *Node) isRoot() bool {
	return n.parent == nil && n.depth == 0
}

// Key returns the character of the node.
func (n *Node) Key() rune {
	return n.key
}

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// IsWord reports whether the node terminates a stored word.
func (n *Node) IsWord() bool {
	return n.isWord
}

// Depth returns the distance of the node from the root.
func (n *Node) Depth() int {
	return n.depth
}

// Child returns the child for r, or nil.
func (n *Node) Child(r rune) *Node {
	return n.children[r]
}

// Children returns the children ordered by character.
func (n *Node) Children() []*Node {
	children := make([]*Node, 0, len(n.children))
	n.ForEachChild(func(child *Node) {
		children = append(children, child)
	})
	return children
}

// checks if the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

// attachChild returns the child for r, creating it if it does not exist yet.
func (n *Node) attachChild(r rune) *Node {
	if child, ok := n.children[r]; ok {
		return child
	}
	if n.children == nil {
		n.children = map[rune]*Node{}
	}
	child := newNode(r, n)
	n.children[r] = child
	return child
}

// detach disconnects the node from its parent. Both the parent's child entry
// and the node's back reference are cleared.
func (n *Node) detach() {
	if n.isRoot() {
		panic("[BUG] detach: You can not detach the root")
	}
	if n.parent == nil {
		return
	}
	delete(n.parent.children, n.key)
	n.parent = nil
}

// applies a function to each child of the node in character order.
// will return the original node n
func (n *Node) ForEachChild(f func(child *Node)) *Node {
	keys := make([]rune, 0, len(n.children))
	for r := range n.children {
		keys = append(keys, r)
	}
	slices.Sort(keys)
	for _, r := range keys {
		f(n.children[r])
	}
	return n
}

// recursively applies a function (f) to each descendant node, depth first, in character order.
// will return the original node n
func (n *Node) ForEachStepDown(f func(node *Node)) *Node {
	n.ForEachChild(func(child *Node) {
		f(child)
		child.ForEachStepDown(f)
	})
	return n
}

// applies a function to the node and each ancestor below the root, moving up,
// as long as the (while) condition holds. pass nil if no condition is needed.
// will return the original node n
func (n *Node) ForEachStepUp(f func(node *Node), while func(node *Node) bool) *Node {
	current := n
	for current.parent != nil && (while == nil || while(current)) {
		f(current)
		current = current.parent
	}
	return n
}

// Path returns the characters from the root down to this node, or nil when
// the node is no longer connected to a root.
func (n *Node) Path() []rune {
	path := make([]rune, n.depth)
	top := n
	n.ForEachStepUp(func(node *Node) {
		path[node.depth-1] = node.key
		top = node.parent
	}, nil)
	if !top.isRoot() {
		return nil
	}
	return path
}

// String rebuilds the stored word ending at this node. It returns an empty
// string when the node is not a complete word.
func (n *Node) String() string {
	if !n.isWord {
		return ""
	}
	path := n.Path()
	if path == nil {
		return ""
	}
	var sb strings.Builder
	for _, r := range path {
		sb.WriteRune(r)
	}
	return sb.String()
}
