/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/records/pkg/records"
)

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe [type...]",
		Short: "Prints record types, their fields and default access modes",
		RunE: func(cmd *cobra.Command, args []string) error {
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
				describe(cmd, e.rt)
			}
			return nil
		},
	}
}

func describe(cmd *cobra.Command, rt *records.RecordType) {
	logger.Verbose("describing", rt)

	out(cmd, "%s", green(rt.Name()))
	if p := rt.Parent(); p != nil {
		out(cmd, " extends %s", p.Name())
	}
	r := rt.NewInstance()
	out(cmd, ", default mode %s\n", r.Mode().TrimString())

	for _, f := range rt.Fields() {
		kind := f.Kind().TrimString()
		if f.Kind().IsArray() {
			kind = fmt.Sprintf("%s[%d]", kind, f.Len())
		}
		flags := []string{}
		if f.IsReadOnly() {
			flags = append(flags, "readonly")
		}
		if f.IsTransient() {
			flags = append(flags, "transient")
		}
		if f.Owner() != rt {
			flags = append(flags, "from "+f.Owner().Name())
		}
		out(cmd, "  %-10s %-16s %s\n", f.Name(), kind, yellow(strings.Join(flags, ", ")))
	}
	out(cmd, "  %s\n", r)
}
