package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordladder/pkg/errors"
	"github.com/matzehuels/wordladder/pkg/pipeline"
	"github.com/matzehuels/wordladder/pkg/render/nodelink"
)

// ladderOpts holds the flag values of the ladder command.
type ladderOpts struct {
	dict               string
	index              string
	foldCase           bool
	maxDepth           int
	allowUnknownTarget bool
	jsonOut            bool
	diagram            diagramOpts
	noCache            bool
	refresh            bool
}

// ladderJSON is the --json output of the ladder command.
type ladderJSON struct {
	Origin string   `json:"origin"`
	Target string   `json:"target"`
	Found  bool     `json:"found"`
	Path   []string `json:"path"`
}

// ladderCommand creates the ladder command.
func (c *CLI) ladderCommand() *cobra.Command {
	var o ladderOpts

	cmd := &cobra.Command{
		Use:   "ladder <origin> <target>",
		Short: "Find a shortest word ladder between two words",
		Long: `Find a shortest word ladder between two words.

Each step changes exactly one letter, and every word after the origin must be
in the dictionary. The origin itself may be any word. Ties between ladders of
equal length are broken the same way on every run.

Exits with status 2 when the words are not connected.

Results are cached per dictionary content, so repeated queries are instant.`,
		Example: `  wordladder ladder cold warm --dict /usr/share/dict/words --fold-case
  wordladder ladder DOG CAT --dict words.txt --json
  wordladder ladder DOG CAT --dict words.txt --svg ladder.svg --detailed`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.ladderOptions(cmd, &o, args[0], args[1])
			if err != nil {
				return err
			}
			return c.runLadder(cmd.Context(), cmd.OutOrStdout(), opts, &o)
		},
	}

	cmd.Flags().StringVarP(&o.dict, "dict", "d", "", "dictionary file or http(s) URL, one word per line")
	cmd.Flags().StringVar(&o.index, "index", pipeline.DefaultIndex, "neighbor lookup: bucket (default), scan")
	cmd.Flags().BoolVarP(&o.foldCase, "fold-case", "i", false, "ignore case (words are upper-cased)")
	cmd.Flags().IntVar(&o.maxDepth, "max-depth", 0, "maximum ladder steps (0 = unlimited)")
	cmd.Flags().BoolVar(&o.allowUnknownTarget, "allow-unknown-target", false, "allow a target missing from the dictionary")
	cmd.Flags().BoolVar(&o.jsonOut, "json", false, "print the result as JSON")
	o.diagram.register(cmd.Flags(), "ladder")
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&o.refresh, "refresh", false, "ignore cached results")

	return cmd
}

// ladderOptions merges flags over the config file.
func (c *CLI) ladderOptions(cmd *cobra.Command, o *ladderOpts, origin, target string) (pipeline.Options, error) {
	dict, err := c.dictionaryPath(cmd, o.dict)
	if err != nil {
		return pipeline.Options{}, err
	}

	opts := pipeline.Options{
		Dictionary:         dict,
		Origin:             origin,
		Target:             target,
		FoldCase:           c.foldCase(cmd, o.foldCase),
		Index:              o.index,
		MaxDepth:           o.maxDepth,
		AllowUnknownTarget: o.allowUnknownTarget,
		Refresh:            o.refresh,
		CacheTTL:           c.Config.Cache.TTL.Duration,
	}
	if !cmd.Flags().Changed("index") {
		opts.Index = c.Config.Index
	}
	if !cmd.Flags().Changed("max-depth") {
		opts.MaxDepth = c.Config.MaxDepth
	}
	return opts, nil
}

// runLadder solves the query, prints it and writes any requested diagrams.
func (c *CLI) runLadder(ctx context.Context, out io.Writer, opts pipeline.Options, o *ladderOpts) error {
	runner, err := c.newRunner(ctx, o.noCache)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	prog := newProgress(c.Logger)
	var spin *Spinner
	if !o.jsonOut {
		spin = newSpinner(ctx, os.Stderr, "Searching...")
		spin.Start()
	}
	res, err := runner.Solve(ctx, opts)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return err
	}
	prog.done("Search finished", "words", res.Stats.Words, "cached", res.Cached)

	if o.jsonOut {
		if err := writeLadderJSON(out, res); err != nil {
			return err
		}
	} else {
		printLadder(out, res)
	}

	if !res.Found {
		if o.diagram.requested() {
			c.Logger.Warn("No ladder, skipping diagram output")
		}
		return ErrNoLadder
	}
	if !o.diagram.requested() {
		return nil
	}
	return c.writeDiagrams(ctx, nodelink.LadderDOT(res.Path, o.diagram.options()), &o.diagram)
}

func writeLadderJSON(w io.Writer, res *pipeline.Result) error {
	path := res.Path
	if path == nil {
		path = []string{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ladderJSON{
		Origin: res.Origin,
		Target: res.Target,
		Found:  res.Found,
		Path:   path,
	})
}

// writeOutput writes data to path, overwriting an existing file.
func writeOutput(path string, data []byte) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}
