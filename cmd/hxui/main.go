// Command hxui lists, renders and hydrates the library's components, and
// serves a directory of pages with their placeholders hydrated.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
