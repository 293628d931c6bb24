// Command mazer solves maze files in the legacy "intID intID" edge-list
// format, where vertex 0 is the start and vertex 1 is the end.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
