// Package bst implements an unbalanced binary search tree over numeric values.
//
// Values are routed left when they are smaller than or equal to a node and
// right otherwise. Adding a value that is already stored does nothing, so a
// tree never holds duplicates. No rebalancing happens: inserting sorted input
// degrades the tree into a linked list.
//
// ## Example usage:
//
//	tree := bst.New[int]()
//	tree.MustAdd(5).MustAdd(1).MustAdd(8).MustAdd(6)
//
//	fmt.Println(tree.InOrder())  // [1 5 6 8]
//	fmt.Println(tree.PreOrder()) // [5 1 8 6]
//
//	tree.MustRemove(6)
//	min, _ := tree.Min() // 1
//
// Floating point trees reject NaN with an error wrapping ErrNotANumber:
//
//	_, err := bst.New[float64]().Add(math.NaN())
//	errors.Is(err, bst.ErrNotANumber) // true
package bst
