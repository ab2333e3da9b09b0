package bst

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotANumber is returned when a NaN value reaches Add, Contains, Remove or Search.
var ErrNotANumber = errors.New("value is not a number")

// Number is the set of scalar kinds a Tree can hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Node is a single value in the tree.
type Node[T Number] struct {
	value T
	left  *Node[T]
	right *Node[T]
}

// Value returns the value held by the node.
func (n *Node[T]) Value() T {
	return n.value
}

// Left returns the left child or nil.
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right returns the right child or nil.
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// Tree is an unbalanced binary search tree. Values on the left of a node are
// smaller, values on the right are greater, and duplicates are never stored.
//
// A Tree is not safe for concurrent use.
type Tree[T Number] struct {
	root *Node[T]
	size int
}

// New creates an empty tree.
func New[T Number]() *Tree[T] {
	return &Tree[T]{}
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Len returns the number of values stored.
func (t *Tree[T]) Len() int {
	return t.size
}

// IsEmpty reports whether the tree holds no values.
func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Add inserts value unless it is already present.
// It returns the tree so calls can be chained once the error is checked.
func (t *Tree[T]) Add(value T) (*Tree[T], error) {
	if err := validate(value); err != nil {
		return t, err
	}
	if t.root == nil {
		t.root = &Node[T]{value: value}
		t.size++
		return t, nil
	}
	if t.root.contains(value) {
		return t, nil
	}
	t.root.add(value)
	t.size++
	return t, nil
}

// MustAdd is like Add but panics on an invalid value.
//
//	tree := bst.New[int]().MustAdd(5).MustAdd(1).MustAdd(8)
func (t *Tree[T]) MustAdd(value T) *Tree[T] {
	if _, err := t.Add(value); err != nil {
		panic(err)
	}
	return t
}

// Contains reports whether value is stored in the tree.
func (t *Tree[T]) Contains(value T) (bool, error) {
	if err := validate(value); err != nil {
		return false, err
	}
	if t.root == nil {
		return false, nil
	}
	return t.root.contains(value), nil
}

// Search returns the node holding value, or nil.
func (t *Tree[T]) Search(value T) (*Node[T], error) {
	if err := validate(value); err != nil {
		return nil, err
	}
	return t.root.search(value), nil
}

// Remove deletes value from the tree. Removing a missing value is a no-op.
//
// A node with two children takes the value of the smallest node in its right
// subtree, and that node is then removed from the right subtree.
func (t *Tree[T]) Remove(value T) (*Tree[T], error) {
	if err := validate(value); err != nil {
		return t, err
	}
	var removed bool
	t.root = remove(t.root, value, &removed)
	if removed {
		t.size--
	}
	return t, nil
}

// MustRemove is like Remove but panics on an invalid value.
func (t *Tree[T]) MustRemove(value T) *Tree[T] {
	if _, err := t.Remove(value); err != nil {
		panic(err)
	}
	return t
}

// Min returns the smallest value. The boolean is false when the tree is empty.
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return t.root.min().value, true
}

// InOrder returns the values as left, self, right. The result is sorted.
func (t *Tree[T]) InOrder() []T {
	values := make([]T, 0, t.size)
	inOrder(t.root, &values)
	return values
}

// PreOrder returns the values as self, left, right.
func (t *Tree[T]) PreOrder() []T {
	values := make([]T, 0, t.size)
	preOrder(t.root, &values)
	return values
}

// PostOrder returns the values as left, right, self.
func (t *Tree[T]) PostOrder() []T {
	values := make([]T, 0, t.size)
	postOrder(t.root, &values)
	return values
}

// validate rejects NaN. Integer kinds always pass.
func validate[T Number](value T) error {
	if math.IsNaN(float64(value)) {
		return fmt.Errorf("%w: <%T>%v", ErrNotANumber, value, value)
	}
	return nil
}

// add descends from n, ties go left.
func (n *Node[T]) add(value T) {
	current := n
	for {
		if value <= current.value {
			if current.left == nil {
				current.left = &Node[T]{value: value}
				return
			}
			current = current.left
		} else {
			if current.right == nil {
				current.right = &Node[T]{value: value}
				return
			}
			current = current.right
		}
	}
}

func (n *Node[T]) contains(value T) bool {
	return n.search(value) != nil
}

func (n *Node[T]) search(value T) *Node[T] {
	current := n
	for current != nil {
		switch {
		case value == current.value:
			return current
		case value < current.value:
			current = current.left
		default:
			current = current.right
		}
	}
	return nil
}

// min returns the leftmost node of the subtree rooted at n.
func (n *Node[T]) min() *Node[T] {
	current := n
	for current.left != nil {
		current = current.left
	}
	return current
}

// remove deletes value from the subtree rooted at n and returns the new subtree root.
func remove[T Number](n *Node[T], value T, removed *bool) *Node[T] {
	if n == nil {
		return nil
	}
	switch {
	case value < n.value:
		n.left = remove(n.left, value, removed)
		return n
	case value > n.value:
		n.right = remove(n.right, value, removed)
		return n
	}

	if n.left == nil {
		*removed = true
		return n.right
	}
	if n.right == nil {
		*removed = true
		return n.left
	}

	successor := n.right.min()
	n.value = successor.value
	n.right = remove(n.right, successor.value, removed)
	return n
}

func inOrder[T Number](n *Node[T], values *[]T) {
	if n == nil {
		return
	}
	inOrder(n.left, values)
	*values = append(*values, n.value)
	inOrder(n.right, values)
}

func preOrder[T Number](n *Node[T], values *[]T) {
	if n == nil {
		return
	}
	*values = append(*values, n.value)
	preOrder(n.left, values)
	preOrder(n.right, values)
}

func postOrder[T Number](n *Node[T], values *[]T) {
	if n == nil {
		return
	}
	postOrder(n.left, values)
	postOrder(n.right, values)
	*values = append(*values, n.value)
}
