// Discover command for the sedctl CLI.
package main

import (
	"github.com/dukaforge/sedctl/internal/cli"
	"github.com/dukaforge/sedctl/internal/device"
)

func discoverCommand(dev device.Client) *cli.Command {
	var deviceNode string
	return &cli.Command{
		Name: "discover",
		Desc: "Print the SED capabilities of a device",
		Options: []cli.Option{
			{LongName: "device", ShortName: 'd', Desc: "Device node to query", ValueLabel: "DEVICE", Required: true, MaxCount: 1},
		},
		OptionsParse: func(option string, values []string) int {
			if option == "device" {
				deviceNode = values[0]
			}
			return 0
		},
		Handle: func() int { return dev.Discover(deviceNode) },
	}
}
