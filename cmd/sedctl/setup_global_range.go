// Setup-global-range command for the sedctl CLI.
package main

import (
	"github.com/dukaforge/sedctl/internal/cli"
	"github.com/dukaforge/sedctl/internal/device"
)

func setupGlobalRangeCommand(dev device.Client) *cli.Command {
	var deviceNode string
	return &cli.Command{
		Name:       "setup-global-range",
		Desc:       "Set up the global locking range of a device",
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
		Handle: func() int { return dev.SetupGlobalRange(deviceNode) },
	}
}
