// fraccalc is a calculator for exact fractions.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aatomu/frac/internal/calc"
	"github.com/aatomu/frac/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := newRootCmd(&cfg, os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config, stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var logger log.Logger

	root := &cobra.Command{
		Use:          "fraccalc",
		Short:        "Exact fraction calculator.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			logger, err = cfg.Logger(stderr)
			return err
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	registerFlags(root.PersistentFlags(), cfg)

	session := func() *calc.Session {
		s := calc.NewSession(logger, cfg.Color)
		s.Simplify = cfg.Simplify
		s.Mixed = cfg.Mixed
		return s
	}

	root.AddCommand(&cobra.Command{
		Use:     "eval <expr>...",
		Short:   "Evaluate an expression such as '3 1/2 + 0.25'.",
		Example: "  fraccalc eval 1/2 + 1/3\n  fraccalc eval '2.6 > 2 1/2'",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return session().Line(strings.Join(args, " "), cmd.OutOrStdout())
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "repl",
		Short: "Evaluate one expression per line of standard input; 'ans' is the last result.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			failed, err := session().Run(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			level.Info(logger).Log("msg", "session finished", "failed", failed)
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "sum",
		Short: "Add one fraction per line of standard input.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			total, skipped, err := calc.Sum(cmd.InOrStdin(), logger)
			if err != nil {
				return err
			}
			out, err := session().Format(total)
			if err != nil {
				return err
			}
			level.Info(logger).Log("msg", "sum finished", "skipped", skipped)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "demo",
		Short: "Print a tour of fraction construction, arithmetic and comparison.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return calc.Demo(cmd.OutOrStdout())
		},
	})

	return root
}

// registerFlags binds cfg to fs; environment values become the defaults.
func registerFlags(fs *pflag.FlagSet, cfg *config.Config) {
	fs.BoolVar(&cfg.Simplify, "simplify", cfg.Simplify, "reduce results to lowest terms (FRAC_SIMPLIFY)")
	fs.BoolVar(&cfg.Mixed, "mixed", cfg.Mixed, "print results as mixed numbers (FRAC_MIXED)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error (FRAC_LOG_LEVEL)")
	fs.BoolVar(&cfg.Color, "color", cfg.Color, "colorize results and errors (FRAC_COLOR)")
}
