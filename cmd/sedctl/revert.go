// Revert command for the sedctl CLI.
package main

import (
	"golang.org/x/sys/unix"

	"github.com/dukaforge/sedctl/internal/cli"
	"github.com/dukaforge/sedctl/internal/device"
)

func revertCommand(dev device.Client) *cli.Command {
	var deviceNode string
	confirmed := false
	return &cli.Command{
		Name:       "revert",
		Desc:       "Revert a device to factory state",
		LongDesc:   "Revert a device to factory state. All data on the device is lost.",
		SURequired: true,
		Options: []cli.Option{
			{LongName: "device", ShortName: 'd', Desc: "Device node", ValueLabel: "DEVICE", Required: true, MaxCount: 1},
			// Guard rail for scripted use; not advertised.
			{LongName: "yes-i-know-what-i-am-doing", Desc: "Skip the destructive-operation check", Hidden: true},
		},
		OptionsParse: func(option string, values []string) int {
			switch option {
			case "device":
				deviceNode = values[0]
			case "yes-i-know-what-i-am-doing":
				confirmed = true
			}
			return 0
		},
		Handle: func() int {
			if !confirmed {
				return -int(unix.EINVAL)
			}
			return dev.Revert(deviceNode)
		},
	}
}
