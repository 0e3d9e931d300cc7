// Package cmd implements the areapocket CLI's subcommands, grounded on
// arl-go-detour's cmd/recast/cmd package: a cobra RootCmd with one
// subcommand per verb, YAML-file job settings, and a confirm-before-
// overwrite prompt for generated files.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd is the base command when areapocket is called without args.
var RootCmd = &cobra.Command{
	Use:   "areapocket",
	Short: "plan zig-zag and spiral pocketing toolpaths from DXF boundaries",
	Long: `areapocket reads closed boundary curves from a DXF file, offsets them
by a tool radius, and emits a pocketing toolpath (zig-zag, recursive
spiral, or a single finishing offset), written back out as DXF with an
optional PNG preview, PDF report and XLSX contour manifest.`,
}

// Execute adds all child commands and runs the root command.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
