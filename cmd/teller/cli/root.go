// Package cli implements the teller command-line interface using Cobra.
// Running teller with no arguments starts an interactive session on the
// terminal.
package cli

import (
	"bufio"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/majorcontext/teller/internal/config"
	"github.com/majorcontext/teller/internal/log"
	"github.com/majorcontext/teller/internal/prompt"
	"github.com/majorcontext/teller/internal/teller"
	"github.com/majorcontext/teller/internal/term"
	"github.com/majorcontext/teller/internal/ui"
)

var (
	verbose  bool
	settings = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "teller",
	Short: "Teller - a console automated teller machine",
	Long: `Teller simulates an automated teller machine on the console.
A session starts with a fixed balance and offers withdrawals, deposits and
balance checks from a single-key menu until you end it.

Settings are read from ~/.teller/config.yaml when present.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			ui.Warnf("using default settings: %v", err)
		}
		settings = cfg

		stdin := inputFile(cmd.InOrStdin())
		if err := log.Init(log.Options{
			Verbose:       verbose,
			Interactive:   stdin != nil && term.IsTerminal(stdin),
			DebugDir:      config.DebugDir(),
			RetentionDays: settings.Debug.RetentionDays,
		}); err != nil {
			// Not fatal; records still reach stderr.
			cmd.PrintErrf("Warning: failed to initialize debug logging: %v\n", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		log.Close()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func runSession(cmd *cobra.Command) error {
	balance, err := settings.InitialBalance()
	if err != nil {
		return err
	}

	src := cmd.InOrStdin()
	out := cmd.OutOrStdout()
	in := bufio.NewReader(src)

	s, err := teller.New(teller.Options{
		Balance: balance,
		Locale:  settings.Locale(),
		Keys:    term.NewKeyReader(in, inputFile(src)),
		Amounts: prompt.NewReader(in, out),
		Out:     out,
	})
	if err != nil {
		return err
	}
	return s.Run(cmd.Context())
}

// inputFile returns r as a file when it is one, so the key reader can put a
// terminal into raw mode.
func inputFile(r io.Reader) *os.File {
	f, _ := r.(*os.File)
	return f
}
