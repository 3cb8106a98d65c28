// Ownership command for the sedctl CLI.
package main

import (
	"github.com/dukaforge/sedctl/internal/cli"
	"github.com/dukaforge/sedctl/internal/device"
)

func ownershipCommand(dev device.Client) *cli.Command {
	var deviceNode string
	return &cli.Command{
		Name:       "ownership",
		Desc:       "Take ownership of a device",
		LongDesc:   "Take ownership of a device by setting the SID authority credential.",
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
		Handle: func() int { return dev.TakeOwnership(deviceNode) },
	}
}
