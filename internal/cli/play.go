package cli

import (
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordladder/pkg/dictionary"
	"github.com/matzehuels/wordladder/pkg/pipeline"
	"github.com/matzehuels/wordladder/pkg/wordgraph"
)

// playCommand creates the interactive play command.
func (c *CLI) playCommand() *cobra.Command {
	var (
		dict     string
		foldCase bool
	)

	cmd := &cobra.Command{
		Use:   "play <origin> <target>",
		Short: "Build a word ladder by hand",
		Long: `Build a word ladder by hand, one word per step.

The game checks each word against the dictionary, shows how many steps a
shortest ladder needs, and can suggest the next word (tab).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			path, err := c.dictionaryPath(cmd, dict)
			if err != nil {
				return err
			}
			fold := c.foldCase(cmd, foldCase)

			runner, err := c.newRunner(ctx, false)
			if err != nil {
				return err
			}
			defer runner.Cache.Close()

			res, err := runner.Solve(ctx, pipeline.Options{
				Dictionary: path,
				Origin:     args[0],
				Target:     args[1],
				FoldCase:   fold,
				Index:      c.Config.Index,
				CacheTTL:   c.Config.Cache.TTL.Duration,
			})
			if err != nil {
				return err
			}
			if !res.Found {
				printLadder(out, res)
				return ErrNoLadder
			}

			words, err := runner.Load(ctx, path, dictionary.Options{
				FoldCase: fold,
				Length:   utf8.RuneCountInString(res.Origin),
			})
			if err != nil {
				return err
			}

			m := NewPlayModel(wordgraph.NewIndex(words.Words), res.Origin, res.Target, res.Steps(), fold)
			final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
			if err != nil {
				return err
			}

			game := final.(PlayModel)
			if game.Won {
				printSuccess(out, "Solved in %d steps (shortest: %d, hints: %d)", game.Steps(), game.Best, game.Hints)
				printDetail(out, "%s", formatPath(game.Path))
				return nil
			}
			printInfo(out, "A shortest ladder:")
			printDetail(out, "%s", formatPath(res.Path))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dict, "dict", "d", "", "dictionary file or http(s) URL, one word per line")
	cmd.Flags().BoolVarP(&foldCase, "fold-case", "i", false, "ignore case (words are upper-cased)")

	return cmd
}
