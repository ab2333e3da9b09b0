package cli

import (
	"io"

	"github.com/alecthomas/kong"
	log "github.com/sirupsen/logrus"
)

// Context is handed to every command's Run method.
type Context struct {
	Out io.Writer   // where results are printed
	Log *log.Logger // operation log, debug level with --verbose
}

// CLI is the root of the ordtree command tree.
type CLI struct {
	Verbose bool    `short:"v" help:"Log every insert and removal"`
	Bst     BstCmd  `cmd:"" help:"Build a binary search tree and print its traversals"`
	Trie    TrieCmd `cmd:"" help:"Build a trie and search it by prefix"`
}

// NewLogger creates the logger used by the commands.
func NewLogger(out io.Writer, verbose bool) *log.Logger {
	logger := log.New()
	logger.SetOutput(out)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(log.InfoLevel)
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// Execute parses args and runs the selected command. Results go to stdout,
// logs and usage errors go to stderr.
func Execute(args []string, stdout io.Writer, stderr io.Writer) error {
	var root CLI
	parser, err := kong.New(&root,
		kong.Name("ordtree"),
		kong.Description("Play with a binary search tree and a trie."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	return ctx.Run(&Context{
		Out: stdout,
		Log: NewLogger(stderr, root.Verbose),
	})
}
