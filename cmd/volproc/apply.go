package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-volume/processor"
	"github.com/cwbudde/algo-volume/volume"
)

type applyFlags struct {
	config  string
	kind    string
	sets    []string
	in      string
	phantom string
	shape   string
	seed    int64
	out     string
}

func newApplyCmd(a *app) *cobra.Command {
	f := &applyFlags{}

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply one processor to a volume",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApply(cmd.OutOrStdout(), a.logger, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.config, "config", "", "YAML file with processor kind and options")
	fl.StringVar(&f.kind, "kind", "", "processor kind (overrides the config file)")
	fl.StringArrayVar(&f.sets, "set", nil, "processor option as key=value (repeatable)")
	fl.StringVar(&f.in, "in", "", "raw little-endian float32 input volume")
	fl.StringVar(&f.phantom, "phantom", "sphere", "synthetic input when --in is empty: sphere, delta, ramp, noise")
	fl.StringVar(&f.shape, "shape", "32,32,32", "volume shape as Z,Y,X")
	fl.Int64Var(&f.seed, "seed", 1, "seed for the noise phantom")
	fl.StringVar(&f.out, "out", "", "write the result as raw little-endian float32")
	return cmd
}

func runApply(w io.Writer, log *logrus.Logger, f *applyFlags) error {
	cfg, err := resolveConfig(f)
	if err != nil {
		return err
	}
	p, err := cfg.build()
	if err != nil {
		return err
	}
	if lr, ok := p.(*processor.LucyRichardson); ok {
		lr.SetPSFResetHook(func(shape volume.Shape, rad float64) {
			log.WithFields(logrus.Fields{
				"shape": shape.String(),
				"rad":   rad,
			}).Debug("PSF cache refreshed")
		})
	}

	shape, err := parseShape(f.shape)
	if err != nil {
		return err
	}
	var in *volume.Volume
	if f.in != "" {
		in, err = readVolume(f.in, shape)
	} else {
		in, err = makePhantom(f.phantom, shape, f.seed)
	}
	if err != nil {
		return fmt.Errorf("load input: %w", err)
	}

	log.WithFields(logrus.Fields{
		"processor": p.Name(),
		"options":   p.Options(),
		"shape":     shape.String(),
	}).Info("Applying processor")

	start := time.Now()
	out, err := p.Apply(in)
	if err != nil {
		return fmt.Errorf("apply %s: %w", p.Name(), err)
	}
	log.WithField("elapsed", time.Since(start).String()).Debug("Processor finished")

	if err := printStats(w, in, out); err != nil {
		return err
	}

	if f.out != "" {
		if err := writeVolume(f.out, out); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		log.WithField("path", f.out).Info("Wrote output volume")
	}
	return nil
}

func resolveConfig(f *applyFlags) (*processorConfig, error) {
	cfg := &processorConfig{}
	if f.config != "" {
		loaded, err := loadConfig(f.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if f.kind != "" {
		cfg.Kind = f.kind
	}
	if cfg.Kind == "" {
		return nil, errors.New("no processor given: use --config or --kind")
	}
	if err := cfg.applySets(f.sets); err != nil {
		return nil, err
	}
	return cfg, nil
}

func printStats(w io.Writer, in, out *volume.Volume) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "VOLUME\tSHAPE\tMIN\tMAX\tMEAN")
	for _, row := range []struct {
		label string
		v     *volume.Volume
	}{
		{"input", in},
		{"output", out},
	} {
		st := row.v.Stats()
		fmt.Fprintf(tw, "%s\t%s\t%.6g\t%.6g\t%.6g\n", row.label, row.v.Shape(), st.Min, st.Max, st.Mean)
	}
	return tw.Flush()
}
