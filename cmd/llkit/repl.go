package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "repl <grammar file path>",
		Short:   "Parse input lines interactively",
		Example: `  llkit repl expr.bnf`,
		Args:    cobra.ExactArgs(1),
		RunE:    runREPL,
	}
	rootCmd.AddCommand(cmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	s, err := newSession(args[0])
	if err != nil {
		return err
	}
	repl, err := readline.New("llkit> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	pterm.Info.Println("Welcome to the LL(1) REPL for grammar " + s.ga.Grammar().Name)
	pterm.Info.Println("Enter input to parse, :grammar, :sets, :table, :tree or :quit. Quit with <ctrl>D")
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if s.command(line) {
			break
		}
	}
	println("Good bye!")
	return nil
}

// command executes a REPL command or parses a line of input. It returns
// true if the user wants to quit.
func (s *session) command(line string) bool {
	switch line {
	case ":quit", ":q":
		return true
	case ":grammar":
		renderGrammar(s.ga.Grammar())
	case ":sets":
		renderSets(s.ga)
	case ":table":
		renderTable(s.table)
	case ":tree":
		s.tree = !s.tree
		pterm.Info.Println(fmt.Sprintf("display of parse trees is %v", onOff(s.tree)))
	default:
		s.parse(line)
	}
	return false
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
