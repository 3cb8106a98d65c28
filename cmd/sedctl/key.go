// Key-management commands for the sedctl CLI. These operate against the
// configured KMIP server and hide themselves in standard mode.
package main

import (
	"github.com/dukaforge/sedctl/internal/cli"
	"github.com/dukaforge/sedctl/internal/device"
	"github.com/dukaforge/sedctl/internal/status"
)

// kmipOnly hides a command unless the client runs in KMIP mode.
func kmipOnly(mode status.Mode) func() int {
	return func() int {
		if mode != status.ModeKMIP {
			return -1
		}
		return 0
	}
}

func keyCommand(keys device.KeyServer, mode status.Mode) *cli.Command {
	var object, keyID string
	backup := false
	return &cli.Command{
		Name: "key",
		Desc: "Manage keys held by the KMIP server",
		Namespace: &cli.Namespace{
			LongName:  "object",
			ShortName: 'o',
			Entries: []cli.NamespaceEntry{
				{
					Name: "mek",
					Desc: "media encryption key",
					Options: []cli.Option{
						{LongName: "key-id", ShortName: 'k', Desc: "Key identifier", ValueLabel: "ID", Required: true, MaxCount: 1},
						{LongName: "backup", ShortName: 'b', Desc: "Back up instead of assigning"},
					},
				},
				{
					Name: "kek",
					Desc: "key encryption key",
					Options: []cli.Option{
						{LongName: "key-id", ShortName: 'k', Desc: "Key identifier", ValueLabel: "ID", Required: true, MaxCount: 1},
					},
				},
			},
		},
		NamespaceOptsParse: func(entry, option string, values []string) int {
			object = entry
			switch option {
			case "key-id":
				keyID = values[0]
			case "backup":
				backup = true
			}
			return 0
		},
		Handle: func() int {
			if backup {
				return keys.BackupKey(object, keyID)
			}
			return keys.AssignKey(object, keyID)
		},
		Configure: kmipOnly(mode),
	}
}

func connectionTestCommand(keys device.KeyServer, mode status.Mode) *cli.Command {
	return &cli.Command{
		Name:      "connection-test",
		Desc:      "Verify connectivity to the KMIP server",
		Handle:    keys.ConnectionTest,
		Configure: kmipOnly(mode),
	}
}
