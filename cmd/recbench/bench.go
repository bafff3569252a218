/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/records/pkg/records"
)

const defaultIterations = 100_000

// how often interrupt is checked
const checkCtxEvery = 1024

func newBenchCmd() *cobra.Command {
	var iterations int
	var mode string

	cmd := &cobra.Command{
		Use:   "bench [type...]",
		Short: "Measures field access time for each access mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			if iterations <= 0 {
				return fmt.Errorf("iterations must be positive, got %d", iterations)
			}
			modes := records.Modes()
			if mode != "" {
				m, err := records.ParseMode(mode)
				if err != nil {
					return err
				}
				modes = []records.Mode{m}
			}

			c := newCatalog()
			names := args
			if len(names) == 0 {
				names = c.names()
			}
			for _, n := range names {
				e, ok := c[n]
				if !ok {
					return fmt.Errorf("unknown record type «%s», expected one of %v", n, c.names())
				}
				for _, m := range modes {
					if err := bench(cmd, e, m, iterations); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&iterations, "iterations", defaultIterations, "Iterations per type and mode")
	cmd.Flags().StringVar(&mode, "mode", "", "Access mode: Generated, Direct, BoundFunction or Reflective. All modes if omitted")
	return cmd
}

func bench(cmd *cobra.Command, e entry, m records.Mode, iterations int) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	r, err := e.rt.Wrap(e.rt.NewInstance().Instance(), m)
	if errors.Is(err, records.ErrUnsupportedShape) {
		out(cmd, "%-16s %-14s %s\n", e.rt.Name(), m.TrimString(), yellow("unsupported"))
		logger.Verbose(err)
		return nil
	}
	if err != nil {
		return err
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		if i%checkCtxEvery == 0 && ctx.Err() != nil {
			return ctx.Err()
		}
		if err := e.exercise(r, i); err != nil {
			out(cmd, "%-16s %-14s %s\n", e.rt.Name(), m.TrimString(), red("failed"))
			return err
		}
	}
	elapsed := time.Since(start)

	out(cmd, "%-16s %-14s %s\n", e.rt.Name(), m.TrimString(), green(fmt.Sprintf("%8.1f ns/op", float64(elapsed.Nanoseconds())/float64(iterations))))
	logger.Verbose(r)
	return nil
}
