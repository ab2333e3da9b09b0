package cli

import (
	"fmt"
	"strings"

	"github.com/khalid-nowaf/ordtree/pkg/trie"
)

type TrieCmd struct {
	Words  []string `arg:"" optional:"" help:"Words to store"`
	Prefix string   `help:"Prefix to search for, every word when empty"`
	Remove []string `help:"Words to remove once everything is added"`
}

// Run builds the trie, applies the removals, then prints the prefix search
// and the depth of every input word.
func (cmd *TrieCmd) Run(ctx *Context) error {
	t := trie.New()

	for _, w := range cmd.Words {
		t.Add(w)
		ctx.Log.WithField("word", w).Debug("added word")
	}

	for _, w := range cmd.Remove {
		if !t.Has(w) {
			ctx.Log.WithField("word", w).Warn("word not in trie, nothing to remove")
			continue
		}
		t.Remove(w)
		ctx.Log.WithField("word", w).Debug("removed word")
	}

	fmt.Fprintf(ctx.Out, "search %q: [%s]\n", cmd.Prefix, strings.Join(t.Search(cmd.Prefix), " "))
	for _, w := range cmd.Words {
		fmt.Fprintf(ctx.Out, "depth %q: %d\n", w, t.Depth(w))
	}
	return nil
}
