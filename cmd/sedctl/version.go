// Version command for the sedctl CLI.
package main

import (
	"github.com/dukaforge/sedctl/internal/cli"
	"github.com/dukaforge/sedctl/internal/printer"
)

func versionCommand(p *printer.Printer) *cli.Command {
	return &cli.Command{
		Name:      "version",
		ShortName: 'V',
		Desc:      "Print the sedctl version",
		Handle: func() int {
			p.Infof("%s %s\n", appName, appVersion)
			return 0
		},
	}
}
