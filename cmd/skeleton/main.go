// Command skeleton renders skeleton loaders for scene files.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/skeleton/cmd/skeleton/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
