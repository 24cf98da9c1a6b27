package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordladder/pkg/errors"
	"github.com/matzehuels/wordladder/pkg/render/nodelink"
)

// neighborsCommand creates the neighbors command.
func (c *CLI) neighborsCommand() *cobra.Command {
	var (
		dict     string
		foldCase bool
		jsonOut  bool
		diagram  diagramOpts
	)

	cmd := &cobra.Command{
		Use:   "neighbors <word>",
		Short: "List dictionary words one letter away from a word",
		Long: `List the dictionary words that differ from a word in exactly one position,
in ascending order. The word itself does not have to be in the dictionary.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]
			if err := errors.ValidateWord(word); err != nil {
				return err
			}
			path, err := c.dictionaryPath(cmd, dict)
			if err != nil {
				return err
			}
			fold := c.foldCase(cmd, foldCase)
			if fold {
				word = strings.ToUpper(word)
			}

			runner, err := c.newRunner(cmd.Context(), true)
			if err != nil {
				return err
			}
			neighbors, err := runner.Neighbors(cmd.Context(), path, word, fold)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				if neighbors == nil {
					neighbors = []string{}
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(neighbors); err != nil {
					return err
				}
			} else {
				printInfo(out, "%s has %s neighbors", StyleValue.Render(word), StyleNumber.Render(fmt.Sprint(len(neighbors))))
				for _, n := range neighbors {
					printDetail(out, "%s", formatStep(word, n))
				}
			}

			if !diagram.requested() {
				return nil
			}
			dot := nodelink.NeighborhoodDOT(word, neighbors, diagram.options())
			return c.writeDiagrams(cmd.Context(), dot, &diagram)
		},
	}

	cmd.Flags().StringVarP(&dict, "dict", "d", "", "dictionary file or http(s) URL, one word per line")
	cmd.Flags().BoolVarP(&foldCase, "fold-case", "i", false, "ignore case (words are upper-cased)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the neighbors as a JSON array")
	diagram.register(cmd.Flags(), "neighborhood")

	return cmd
}
