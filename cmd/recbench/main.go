/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/cobrau"
	"github.com/untillpro/goutils/logger"
)

//go:embed version
var version string

var red func(a ...interface{}) string
var green func(a ...interface{}) string
var yellow func(a ...interface{}) string

func main() {
	red = color.New(color.FgRed).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	logger.PrintLine = printLogLine

	if err := execRootCmd(os.Args, version); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	rootCmd := cobrau.PrepareRootCmd(
		"recbench",
		"Record types inspection and access modes benchmark",
		args,
		ver,
		newVersionCmd(ver),
		newDescribeCmd(),
		newBenchCmd(),
	)
	return cobrau.ExecCommandAndCatchInterrupt(rootCmd)
}

func newVersionCmd(ver string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the version of the recbench utility",
		Run: func(cmd *cobra.Command, args []string) {
			out(cmd, "recbench version %s\n", ver)
		},
	}
}

func printLogLine(level logger.TLogLevel, line string) {
	switch level {
	case logger.LogLevelError:
		line = red(line)
	case logger.LogLevelWarning:
		line = yellow(line)
	}
	if level == logger.LogLevelError {
		fmt.Fprintln(os.Stderr, line)
		return
	}
	fmt.Fprintln(os.Stdout, line)
}

func out(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
