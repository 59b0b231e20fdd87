// Package main starts the DeskRect server.
package main

import (
	"flag"
	"fmt"
)

// main is the entrypoint for the DeskRect server.
func main() {
	expr := flag.String("calc", "", `Evaluate a rectangle expression and exit, e.g. "union 0,0,10,10 5,5,10,10"`)
	flag.Parse()

	if *expr != "" {
		out, err := calc(*expr)
		if err != nil {
			logFatal(err)
		}
		fmt.Println(out)
		return
	}

	if err := run(); err != nil {
		logFatal(err)
	}
}
