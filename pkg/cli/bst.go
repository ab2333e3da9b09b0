package cli

import (
	"fmt"

	"github.com/khalid-nowaf/ordtree/pkg/bst"
	log "github.com/sirupsen/logrus"
)

type BstCmd struct {
	Values []float64 `arg:"" help:"Values to insert, in order. Put negative values after a -- separator, e.g. bst -- 3 -1 2"`
	Remove []float64 `help:"Values to remove once everything is inserted"`
	Order  string    `help:"Traversal to print" enum:"in,pre,post,all" default:"all"`
}

// Run builds the tree, applies the removals and prints the traversals and the minimum.
func (cmd *BstCmd) Run(ctx *Context) error {
	tree := bst.New[float64]()

	for _, v := range cmd.Values {
		if _, err := tree.Add(v); err != nil {
			return fmt.Errorf("add %v: %w", v, err)
		}
		ctx.Log.WithField("value", v).Debug("added value")
	}

	for _, v := range cmd.Remove {
		found, err := tree.Contains(v)
		if err != nil {
			return fmt.Errorf("remove %v: %w", v, err)
		}
		if !found {
			ctx.Log.WithField("value", v).Warn("value not in tree, nothing to remove")
			continue
		}
		tree.MustRemove(v)
		ctx.Log.WithField("value", v).Debug("removed value")
	}

	ctx.Log.WithFields(log.Fields{"size": tree.Len()}).Debug("tree built")

	if cmd.Order == "in" || cmd.Order == "all" {
		fmt.Fprintf(ctx.Out, "in-order: %v\n", tree.InOrder())
	}
	if cmd.Order == "pre" || cmd.Order == "all" {
		fmt.Fprintf(ctx.Out, "pre-order: %v\n", tree.PreOrder())
	}
	if cmd.Order == "post" || cmd.Order == "all" {
		fmt.Fprintf(ctx.Out, "post-order: %v\n", tree.PostOrder())
	}

	if min, ok := tree.Min(); ok {
		fmt.Fprintf(ctx.Out, "min: %v\n", min)
	} else {
		fmt.Fprintln(ctx.Out, "min: none")
	}
	return nil
}
