package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/theapemachine/errnie"
	"github.com/theapemachine/qoracle"
)

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// newRootCmd wires flags and QORACLE_* environment variables into a Config
// and runs the demonstration against stdout.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("QORACLE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	logger := log.NewWithOptions(stderr, log.Options{
		Prefix: "qoracle",
		Level:  log.WarnLevel,
	})

	cmd := &cobra.Command{
		Use:           "qoracle",
		Short:         "Deutsch-Jozsa oracle step on a two-qubit state vector",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd.Context(), v, logger, stdout)
			if err != nil {
				logger.Error("run failed", "err", err)
			}
			return err
		},
	}

	flags := cmd.Flags()
	flags.Int("precision", qoracle.NewConfig().Precision, "digits after the decimal point")
	flags.Bool("pad-labels", false, "zero-pad basis labels to the qubit count")
	flags.String("chart", "", "write an HTML amplitude chart to this path")
	flags.Bool("verbose", false, "debug logging on stderr")

	if err := v.BindPFlags(flags); err != nil {
		logger.Fatal("bind flags", "err", err)
	}

	return cmd
}

func run(ctx context.Context, v *viper.Viper, logger *log.Logger, stdout io.Writer) error {
	config, err := qoracle.LoadConfig(v)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if config.Verbose {
		logger.SetLevel(log.DebugLevel)
		errnie.Info(
			"qoracle - precision %d, pad labels %v, chart %q",
			config.Precision,
			config.PadLabels,
			config.ChartPath,
		)
	}

	demo := qoracle.NewDemo(
		qoracle.NewPrinter(stdout, config),
		qoracle.WithLogger(logger),
	)
	if err := demo.Run(ctx); err != nil {
		return err
	}

	if config.ChartPath == "" {
		return nil
	}
	return writeChart(config.ChartPath, demo.Snapshots())
}

func writeChart(path string, snapshots []qoracle.Snapshot) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close chart: %w", cerr)
		}
	}()

	return qoracle.WriteChart(f, snapshots)
}
