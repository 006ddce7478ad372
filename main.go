package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/goccy/go-json"
	"github.com/larynjahor/lifo/internal/config"
	"github.com/larynjahor/lifo/logging"
	"github.com/larynjahor/lifo/pkg/expr"
	"github.com/larynjahor/lifo/pkg/script"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalln(err)
	}
}

type app struct {
	configPath string
	debug      bool
	format     string

	cfg    config.Config
	closer io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "lifo",
		Short:         "Replay stack scripts and evaluate tag expressions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			slog.Debug("exited lifo")

			if a.closer == nil {
				return nil
			}

			return a.closer.Close()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath, "path to the YAML config")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	root.AddCommand(a.runCmd(), a.evalCmd())

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("debug") {
		cfg.Debug = a.debug
	}

	if a.format != "" {
		cfg.Format = a.format
	}

	a.cfg = cfg

	a.closer, err = logging.Auto(cfg.Debug, cfg.LogFile)
	if err != nil {
		return err
	}

	slog.Debug("started lifo", slog.String("config", a.configPath), slog.String("format", cfg.Format))

	return nil
}

func (a *app) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Replay a stack script, reading stdin when no file is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()

			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()

				in = f
			}

			cmds, err := script.Parse(in)
			if err != nil {
				return err
			}

			results, err := script.NewRunner().Run(cmd.Context(), cmds)
			if err != nil {
				slog.Error("failed to run script", slog.Any("err", err))
				return err
			}

			return a.writeResults(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().StringVar(&a.format, "format", "", "output format: json or text")

	return cmd
}

func (a *app) writeResults(w io.Writer, results []script.Result) error {
	switch a.cfg.Format {
	case config.FormatText:
		for _, r := range results {
			line := fmt.Sprintf("%s\tlen=%d", r.Op, r.Len)

			if v, ok := r.Value.Get(); ok {
				line += "\t" + v
			}

			for _, item := range r.Items {
				line += "\t" + item
			}

			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}

		return nil
	case config.FormatJSON:
		enc := json.NewEncoder(w)

		for _, r := range results {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}

		return nil
	default:
		return fmt.Errorf("invalid format [%s]", a.cfg.Format)
	}
}

func (a *app) evalCmd() *cobra.Command {
	var tags []string

	cmd := &cobra.Command{
		Use:   "eval <expr>",
		Short: "Evaluate a boolean tag expression such as 'linux && !cgo'",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("tag") {
				tags = a.cfg.Tags
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), expr.New().Eval(args[0], tags))

			return err
		},
	}

	cmd.Flags().StringSliceVar(&tags, "tag", nil, "tags that evaluate to true")

	return cmd
}
