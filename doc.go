/*
Package llkit is a toolbox for LL(1) grammars and predictive parsing.

LLKit analyses context-free grammars, decides whether they are LL(1),
builds predictive parsing tables and drives a table-driven top-down parser
with panic-mode error recovery. Package structure is as follows:

■ ll: Package ll implements the grammar model, FIRST/FOLLOW analysis, the
LL(1) conformance check and the construction of parsing tables.

■ ll/predictive: Package predictive implements a stack-driven predictive parser
on top of an LL(1) parsing table.

■ ll/scanner: Package scanner splits input text into terminal symbols of a grammar.

■ ll/bnf: Package bnf reads grammars from a line-oriented BNF notation.

■ cmd/llkit: Command llkit checks grammars, prints parsing tables and parses
input, interactively or in batch.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package llkit
