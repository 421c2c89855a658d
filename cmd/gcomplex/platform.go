package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/lukaszgryglicki/gcomplex/oracle"
	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"
)

func newPlatformCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platform",
		Short: "Report what the oracle computes with on this machine",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printPlatform(cmd.OutOrStdout())
		},
	}
}

func longDoubleClass(bits int) string {
	switch bits {
	case 53:
		return "same as double"
	case 64:
		return "x87 80-bit extended"
	case 106:
		return "double-double"
	case 113:
		return "IEEE binary128"
	}
	return "unknown"
}

func printPlatform(w io.Writer) {
	fmt.Fprintf(w, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(w, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "NumCPU: %d\n", runtime.NumCPU())
	fmt.Fprintf(w, "Go: %s\n", runtime.Version())
	fmt.Fprintln(w)

	bits := oracle.LongDoubleBits()
	fmt.Fprintf(w, "long double: %d-bit significand (%s)\n", bits, longDoubleClass(bits))
	fmt.Fprintf(w, "GNU MPC: %v\n", haveMPC)
	fmt.Fprintln(w)

	switch runtime.GOARCH {
	case "arm64":
		fmt.Fprintln(w, "=== golang.org/x/sys/cpu.ARM64 ===")
		fmt.Fprintf(w, "  HasFP:      %v (Floating point)\n", cpu.ARM64.HasFP)
		fmt.Fprintf(w, "  HasASIMD:   %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
		fmt.Fprintf(w, "  HasFPHP:    %v (FP16 scalar)\n", cpu.ARM64.HasFPHP)
		fmt.Fprintf(w, "  HasSVE:     %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
	case "amd64":
		fmt.Fprintln(w, "=== golang.org/x/sys/cpu.X86 ===")
		fmt.Fprintf(w, "  HasFMA:     %v (fused multiply-add, may change libm rounding)\n", cpu.X86.HasFMA)
		fmt.Fprintf(w, "  HasSSE2:    %v\n", cpu.X86.HasSSE2)
		fmt.Fprintf(w, "  HasSSE41:   %v\n", cpu.X86.HasSSE41)
		fmt.Fprintf(w, "  HasAVX:     %v\n", cpu.X86.HasAVX)
		fmt.Fprintf(w, "  HasAVX2:    %v\n", cpu.X86.HasAVX2)
		fmt.Fprintf(w, "  HasAVX512F: %v\n", cpu.X86.HasAVX512F)
	default:
		fmt.Fprintln(w, "no CPU feature report for this architecture")
	}
}
