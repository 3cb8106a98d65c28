// Lock-unlock command for the sedctl CLI.
package main

import (
	"github.com/dukaforge/sedctl/internal/cli"
	"github.com/dukaforge/sedctl/internal/device"
)

// Access types accepted by --accesstype.
var accessTypes = map[string]bool{
	"RO": true,
	"RW": true,
	"LK": true,
}

func lockUnlockCommand(dev device.Client) *cli.Command {
	var deviceNode, accessType string
	return &cli.Command{
		Name:       "lock-unlock",
		ShortName:  'L',
		Desc:       "Lock or unlock the global locking range",
		SURequired: true,
		Options: []cli.Option{
			{LongName: "device", ShortName: 'd', Desc: "Device node", ValueLabel: "DEVICE", Required: true, MaxCount: 1},
			{LongName: "accesstype", ShortName: 't', Desc: "Access type (RO, RW or LK)", ValueLabel: "TYPE", Required: true, MaxCount: 1},
		},
		OptionsParse: func(option string, values []string) int {
			switch option {
			case "device":
				deviceNode = values[0]
			case "accesstype":
				if !accessTypes[values[0]] {
					return 1
				}
				accessType = values[0]
			}
			return 0
		},
		Handle: func() int { return dev.LockUnlock(deviceNode, accessType) },
	}
}
