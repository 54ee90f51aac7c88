// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/avdva/fastlog/internal/table"
)

type options struct {
	values    []string
	format    string
	precision int32
	logLevel  string
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "fnl",
		Short: "Compare fast natural logarithms with math.Log",
		Long: `fnl computes ln(x) with the float32 and float64 fast approximations
and prints them next to math.Log (for float32 and float64 inputs) and algo-approx's FastLog.
Without --values a fixed list including infinities, NaNs, negative numbers and zero is used.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log.SetOutput(cmd.ErrOrStderr())
			return run(cmd.OutOrStdout(), opts)
		},
	}
	addFlags(cmd.Flags(), &opts)
	return cmd
}

func addFlags(fs *pflag.FlagSet, opts *options) {
	fs.StringSliceVar(&opts.values, "values", nil, "comma-separated values to compute ln for (inf, -inf, nan and -nan are accepted)")
	fs.StringVar(&opts.format, "format", "float", "number format: float, decimal or fixed (values out of fixed-point range are printed as float)")
	fs.Int32Var(&opts.precision, "precision", 8, "digits after the point for decimal, significant digits for float; not used for fixed")
	fs.StringVar(&opts.logLevel, "log-level", "warning", "log level")
}

func run(w io.Writer, opts options) error {
	level, err := log.ParseLevel(opts.logLevel)
	if err != nil {
		return fmt.Errorf("bad log level: %w", err)
	}
	log.SetLevel(level)

	format, err := table.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	if opts.precision < 0 {
		return fmt.Errorf("negative precision %d", opts.precision)
	}

	values := table.DefaultValues()
	if len(opts.values) > 0 {
		if values, err = table.ParseValues(opts.values); err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
	}
	log.Debugf("Computing %d values with format %s.", len(values), format)

	rows := table.Build(values)
	for _, r := range rows {
		log.WithFields(log.Fields{
			"x":    r.X,
			"fp32": r.F32,
			"fp64": r.F64,
			"ref":  r.Ref,
		}).Debug("Computed row.")
	}
	return table.Write(w, rows, format, opts.precision)
}
