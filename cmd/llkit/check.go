package main

import (
	"github.com/npillmayer/llkit/ll"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "check <grammar file path>",
		Short:   "Compute FIRST and FOLLOW sets and check the LL(1) conditions",
		Example: `  llkit check expr.bnf`,
		Args:    cobra.ExactArgs(1),
		RunE:    runCheck,
	}
	rootCmd.AddCommand(cmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	ga, err := loadGrammar(args[0])
	if err != nil {
		return err
	}
	renderGrammar(ga.Grammar())
	renderSets(ga)
	c := ll.Validate(ga)
	renderConformance(c)
	return c.Err()
}
