// areapocket — plan zig-zag and spiral pocketing toolpaths from DXF
// boundary files.
//
// Build:
//   go build -o areapocket ./cmd/areapocket
package main

import "github.com/piwi3910/areapocket/cmd/areapocket/cmd"

func main() {
	cmd.Execute()
}
