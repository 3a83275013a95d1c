package main

import (
	"errors"

	"github.com/npillmayer/llkit/ll"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "table <grammar file path>",
		Short:   "Build the LL(1) parsing table",
		Example: `  llkit table expr.bnf`,
		Args:    cobra.ExactArgs(1),
		RunE:    runTable,
	}
	rootCmd.AddCommand(cmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	ga, err := loadGrammar(args[0])
	if err != nil {
		return err
	}
	table, err := ll.BuildTable(ga)
	if err != nil {
		var cerr *ll.TableConflictError
		if errors.As(err, &cerr) {
			for _, c := range cerr.Conflicts {
				pterm.Error.Println(c.String())
			}
		}
		return err
	}
	renderTable(table)
	return nil
}
