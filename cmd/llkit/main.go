/*
Command llkit analyses LL(1) grammars and parses input with them.

	llkit check   <grammar>            FIRST/FOLLOW sets and LL(1) verdict
	llkit table   <grammar>            LL(1) parsing table
	llkit parse   <grammar> [input…]   parse inputs (one per argument, or lines from stdin)
	llkit repl    <grammar>            interactive parsing

Grammars are read with package bnf, from text files or YAML documents.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llkit.cli'
func tracer() tracing.Trace {
	return tracing.Select("llkit.cli")
}

func main() {
	err := Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
