// Command algo-rewind tracks solved coding problems and tells you which ones
// are due for review. The list lives in a single JSON file (see --file).
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"os"
	"time"
)

func main() {
	if err := newRootCmd(time.Now).Execute(); err != nil {
		os.Exit(1)
	}
}
