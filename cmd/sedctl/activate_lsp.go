// Activate-LSP command for the sedctl CLI.
package main

import (
	"github.com/dukaforge/sedctl/internal/cli"
	"github.com/dukaforge/sedctl/internal/device"
)

func activateLSPCommand(dev device.Client) *cli.Command {
	var deviceNode string
	return &cli.Command{
		Name:       "activate-lsp",
		Desc:       "Activate the Locking SP of a device",
		SURequired: true,
		Options: []cli.Option{
			{LongName: "device", ShortName: 'd', Desc: "Device node", ValueLabel: "DEVICE", Required: true, MaxCount: 1},
		},
		OptionsParse: func(option string, values []string) int {
			if option == "device" {
				deviceNode = values[0]
			}
			return 0
		},
		Handle: func() int { return dev.ActivateLSP(deviceNode) },
	}
}
