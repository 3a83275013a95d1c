package main

import (
	"github.com/npillmayer/llkit/ll/predictive"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	trace     *string
	config    *string
	maxErrors *int
	split     *bool
}{}

// conf is the effective configuration, set up before any sub-command runs.
var conf = defaultConfig()

var rootCmd = &cobra.Command{
	Use:   "llkit",
	Short: "Analyse LL(1) grammars and parse input with them",
	Long: `llkit provides tools for LL(1) grammars:
- Computes FIRST and FOLLOW sets and checks the LL(1) conditions.
- Builds the LL(1) parsing table.
- Parses input with a predictive parser, recovering from syntax errors.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	rootFlags.trace = pf.String("trace", "Error", "trace level [Debug|Info|Error]")
	rootFlags.config = pf.StringP("config", "c", "", "configuration file (TOML)")
	rootFlags.maxErrors = pf.Int("max-errors", predictive.DefaultMaxErrors, "number of syntax errors a parse may recover from")
	rootFlags.split = pf.Bool("split", false, "split input at whitespace or into characters instead of scanning it")
}

// Execute runs the llkit command line.
func Execute() error {
	return rootCmd.Execute()
}

// setup reads the configuration file, if any, and lets command line flags
// override its values.
func setup(cmd *cobra.Command, args []string) error {
	initDisplay()
	c, err := loadConfig(*rootFlags.config)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("trace") {
		c.Trace = *rootFlags.trace
	}
	if flags.Changed("max-errors") {
		c.MaxErrors = *rootFlags.maxErrors
	}
	if flags.Changed("split") {
		c.Split = *rootFlags.split
	}
	if err = c.validate(); err != nil {
		return err
	}
	conf = c
	initTracing(conf.Trace)
	return nil
}

func initTracing(level string) {
	gtrace.SyntaxTracer = gologadapter.New()
	l := tracing.TraceLevelFromString(level)
	for _, key := range []string{"llkit.ll", "llkit.scanner", "llkit.cli"} {
		tracing.Select(key).SetTraceLevel(l)
	}
	tracer().Infof("trace level is %s", level)
}
