package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"github.com/th3l1ghtd3m0n/noq/session"
)

// Version is the tool version, settable at build time.
var Version = "0.1.0"

var (
	cfgFile     string
	interactive bool
	cfg         *Config
)

// newRootCmd creates and returns the root command.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "noq [file ...]",
		Short: "noq - a term rewriting sandbox",
		Long: `noq is an expression transformer based on named rewrite rules.

Statements define rules, place a term on the workbench ("shape") and apply
rules to it one step at a time, watching every intermediate form. Files
given on the command line are executed in order; without files, or with
--interactive, noq enters a REPL.`,
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cfg, err = loadConfig(cfgFile, cmd.Root().PersistentFlags())
			return err
		},
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./noq.yaml)")
	rootCmd.PersistentFlags().String("trace", "", "trace level [Debug|Info|Error]")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress rule and shape echo")
	rootCmd.PersistentFlags().BoolVarP(&interactive, "interactive", "i", false, "enter the REPL after processing files")
	return rootCmd
}

// run executes preload and argument files, then drops into the REPL when
// interactive mode is requested or no files were given.
func run(_ *cobra.Command, args []string) error {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	setTraceLevel(cfg.Trace)
	intp := newIntp(session.New(), cfg.Quiet)
	files := append(append([]string{}, cfg.Preload...), args...)
	for _, path := range files {
		if err := intp.ExecFile(path); err != nil {
			return err
		}
	}
	if len(args) == 0 || interactive {
		return repl(intp, cfg)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
