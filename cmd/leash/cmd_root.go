package main

import (
	"github.com/spf13/cobra"

	"leash/internal/config"
	"leash/internal/interpreter"
)

var flagDebug bool

var rootCmd = &cobra.Command{
	Use:   "leash [script]",
	Short: "A restricted shell that only runs pre-approved command pipelines",
	Long: "leash reads lines of pipeline text, resolves them against an\n" +
		"allow-list loaded from $LEASH_CONF (or ~/.leashrc), and runs only\n" +
		"what the allow-list permits. With a script argument it reads that\n" +
		"file; with none it reads an interactive prompt from stdin.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pol, err := config.Load()
		if err != nil {
			return err
		}

		log := newDebugLogger(flagDebug)
		log.policy(pol)

		in := interpreter.New(pol)

		if len(args) == 1 {
			return runBatch(in, log, args[0])
		}
		return runInteractive(in, log)
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&flagDebug, "debug", "d", false, "print resolved pipelines and rejected lines to stderr")
}
