// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"

	"cogentcore.org/valgen/base/logx"
	"cogentcore.org/valgen/base/randx"
	"cogentcore.org/valgen/math32/minmax"
	"cogentcore.org/valgen/preset"
	"cogentcore.org/valgen/provider"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// app holds the state shared by the valgen commands.
type app struct {
	cfg        Config
	configFile string
	vv, v, q   bool
	presets    *preset.Set[Emitter]
}

func newRootCmd() *cobra.Command {
	a := &app{presets: Presets()}
	a.cfg.Defaults()

	root := &cobra.Command{
		Use:           "valgen",
		Short:         "Inspect procedural value presets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logx.SetLevel(logx.LevelFromFlags(a.vv, a.v, a.q))
			logx.SetDefault(cmd.ErrOrStderr())
			if err := a.cfg.Open(a.configFile, cmd.Flags()); err != nil {
				return fmt.Errorf("opening config: %w", err)
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return a.selectPreset()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default "+DefaultConfigFile+")")
	pf.BoolVar(&a.vv, "vv", false, "very verbose (debug) logging")
	pf.BoolVarP(&a.v, "verbose", "v", false, "verbose (info) logging")
	pf.BoolVarP(&a.q, "quiet", "q", false, "only log errors")
	a.cfg.AddFlags(pf)

	root.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List the presets, marking the selected one",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.list(cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "sample",
			Short: "Evaluate the parameters of the selected preset and report their statistics",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.sample(cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "cycle",
			Short: "Step through the presets, evaluating each parameter once",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.cycle(cmd.OutOrStdout())
			},
		},
	)
	return root
}

// selectPreset moves the preset cursor according to the config.
func (a *app) selectPreset() error {
	if a.cfg.Preset != "" {
		if !a.presets.SetCurrentByName(a.cfg.Preset) {
			return fmt.Errorf("unknown preset %q", a.cfg.Preset)
		}
		return nil
	}
	if got := a.presets.SetCurrentIndex(a.cfg.Index); got != a.cfg.Index {
		slog.Info("preset index clamped", "index", a.cfg.Index, "clamped", got)
	}
	return nil
}

func (a *app) list(w io.Writer) error {
	out := termenv.NewOutput(w)
	for i, nm := range a.presets.Names {
		line := fmt.Sprintf("%d %s", i, nm)
		if i == a.presets.CurrentIndex() {
			fmt.Fprintln(w, out.String("> "+line).Bold())
			continue
		}
		fmt.Fprintln(w, "  "+line)
	}
	return nil
}

// stats accumulates the statistics of sampled values.
type stats struct {
	rng minmax.F64
	sum float64
	n   int
}

func newStats() *stats {
	st := &stats{}
	st.rng.SetInfinity()
	return st
}

func (st *stats) add(v float32) {
	st.rng.FitValInRange(float64(v))
	st.sum += float64(v)
	st.n++
}

func (st *stats) mean() float64 {
	if st.n == 0 {
		return 0
	}
	return st.sum / float64(st.n)
}

func (a *app) sample(w io.Writer) error {
	em, err := a.presets.Current()
	if err != nil {
		return err
	}
	name, _ := a.presets.CurrentName()
	params := em.Clone().Params()
	for _, p := range params {
		if err := provider.Validate(p.Provider); err != nil {
			return fmt.Errorf("preset %q parameter %s: %w", name, p.Name, err)
		}
	}

	var seeds randx.Seeds
	seeds.Init(a.cfg.Runs, a.cfg.Seed)
	rnd := randx.NewSysRand(a.cfg.Seed)
	for _, p := range params {
		provider.SetRand(p.Provider, rnd)
	}
	fmt.Fprintf(w, "preset %s\n", name)
	for run := range seeds {
		seeds.Set(run, rnd)
		all := make([]*stats, len(params))
		for i := range all {
			all[i] = newStats()
		}
		for s, n := 0, a.cfg.Samples; s < n; s++ {
			for i, p := range params {
				v, err := p.Provider.Evaluate()
				if err != nil {
					return fmt.Errorf("preset %q parameter %s: %w", name, p.Name, err)
				}
				all[i].add(v)
			}
		}
		for i, p := range params {
			b, _ := provider.Bounds(p.Provider)
			st := all[i]
			fmt.Fprintf(w, "run %d %-6s min %9.3f  mean %9.3f  max %9.3f  bounds %v\n",
				run, p.Name, st.rng.Min, st.mean(), st.rng.Max, b)
		}
		slog.Debug("sampled run", "run", run, "seed", seeds[run], "samples", a.cfg.Samples)
	}
	return nil
}

func (a *app) cycle(w io.Writer) error {
	if a.presets.Len() == 0 {
		return preset.ErrEmpty
	}
	rnd := randx.NewSysRand(a.cfg.Seed)
	for i := 0; i < a.cfg.Steps; i++ {
		a.presets.Next()
		em, err := a.presets.Current()
		if err != nil {
			return err
		}
		name, _ := a.presets.CurrentName()
		fmt.Fprintf(w, "%d %s:", a.presets.CurrentIndex(), name)
		params := em.Clone().Params()
		for _, p := range params {
			provider.SetRand(p.Provider, rnd)
		}
		for _, p := range params {
			v, err := p.Provider.Evaluate()
			if err != nil {
				return fmt.Errorf("preset %q parameter %s: %w", name, p.Name, err)
			}
			fmt.Fprintf(w, " %s=%.3f", p.Name, v)
		}
		fmt.Fprintln(w)
	}
	return nil
}
