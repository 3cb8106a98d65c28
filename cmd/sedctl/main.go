// Package main provides the sedctl CLI, an administration tool for
// self-encrypting drives.
package main

import (
	"fmt"
	"os"

	"github.com/dukaforge/sedctl/internal/device"
	"github.com/dukaforge/sedctl/internal/printer"
)

func main() {
	os.Exit(run(os.Args))
}

func run(argv []string) int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	eng, err := newEngine(cfg, printer.New(), device.Unbound{}, device.Unbound{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return eng.Run(argv)
}
