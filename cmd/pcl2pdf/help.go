package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pcl2pdf [flags] <PCL_FILE>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert PCL formatted payslip exports to PDF documents.")
	fmt.Fprintln(w, "Each input produces <input>.pdf with one page per payslip.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  PCL_FILE    One or more exports to convert (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <dir>    Output directory (default: beside each input)")
	fmt.Fprintln(w, "  -c, --config <name>   Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet           Only show errors")
	fmt.Fprintln(w, "  -v, --verbose         Show record counts and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  help       Show this message")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "example: pcl2pdf PSEAL075.001")
}

// printVersion prints version information.
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "pcl2pdf %s\n", Version)
	fmt.Fprintln(w, "PCL to PDF payslip converter")
}
