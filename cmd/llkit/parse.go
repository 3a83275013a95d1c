package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var parseFlags = struct {
	source *string
	tree   *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "parse <grammar file path> [input…]",
		Short: "Parse input with a predictive parser",
		Example: `  llkit parse expr.bnf "id + id * id"
  cat inputs | llkit parse expr.bnf`,
		Args: cobra.MinimumNArgs(1),
		RunE: runParse,
	}
	parseFlags.source = cmd.Flags().StringP("source", "s", "", "file with one input per line (default stdin)")
	parseFlags.tree = cmd.Flags().BoolP("tree", "t", false, "display the parse tree of accepted input")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	s, err := newSession(args[0])
	if err != nil {
		return err
	}
	s.tree = *parseFlags.tree
	inputs := args[1:]
	if len(inputs) == 0 {
		src := io.Reader(os.Stdin)
		if *parseFlags.source != "" {
			f, err := os.Open(*parseFlags.source)
			if err != nil {
				return fmt.Errorf("cannot open the source file %s: %w", *parseFlags.source, err)
			}
			defer f.Close()
			src = f
		}
		if inputs, err = readInputs(src); err != nil {
			return err
		}
	}
	failed := 0
	for _, input := range inputs {
		if _, err := s.parse(input); err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs rejected", failed, len(inputs))
	}
	return nil
}

// readInputs reads one input per non-empty line.
func readInputs(r io.Reader) ([]string, error) {
	var inputs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			inputs = append(inputs, line)
		}
	}
	return inputs, sc.Err()
}
