// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command schubfach converts numeric literals on the command line (or,
// with --stdin, one per line of standard input) to the shortest decimal
// string that round-trips to the same binary64 or binary32 value.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/rsc-tmp/schubfach"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var float32Mode bool
	var useStdin bool

	klogFlags := flag.NewFlagSet("klog", flag.ExitOnError)
	klog.InitFlags(klogFlags)
	defer klog.Flush()

	cmd := &cobra.Command{
		Use:   "schubfach [value ...]",
		Short: "Print the shortest round-tripping decimal for one or more float literals",
		Long: `schubfach parses each argument as a floating-point literal and prints the
shortest decimal string that, parsed back, yields the exact same binary64
(or, with --f32, binary32) value.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if useStdin {
				return formatStream(out, os.Stdin, float32Mode)
			}
			if len(args) == 0 {
				return errors.New("schubfach: no values given (pass literals as arguments or use -stdin)")
			}
			for _, arg := range args {
				s, err := formatLiteral(arg, float32Mode)
				if err != nil {
					return errors.Wrapf(err, "parsing %q", arg)
				}
				fmt.Fprintln(out, s)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&float32Mode, "f32", false, "treat input as binary32 instead of binary64")
	cmd.Flags().BoolVar(&useStdin, "stdin", false, "read one literal per line from standard input")
	cmd.Flags().AddGoFlagSet(klogFlags)
	return cmd
}

func formatLiteral(arg string, float32Mode bool) (string, error) {
	if float32Mode {
		v, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			return "", err
		}
		s := schubfach.FormatFloat(float32(v))
		klog.V(1).InfoS("formatted binary32 literal", "input", arg, "value", v, "result", s)
		return s, nil
	}
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return "", err
	}
	s := schubfach.FormatDouble(v)
	klog.V(1).InfoS("formatted binary64 literal", "input", arg, "value", v, "result", s)
	return s, nil
}

func formatStream(out interface{ Write([]byte) (int, error) }, in *os.File, float32Mode bool) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		s, err := formatLiteral(line, float32Mode)
		if err != nil {
			return errors.Wrapf(err, "parsing %q", line)
		}
		fmt.Fprintln(out, s)
	}
	return scanner.Err()
}
