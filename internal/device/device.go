// Package device declares the boundary to the SED device library and
// the KMIP key-management client. Command handlers call through these
// interfaces; the engine never inspects them beyond the integer result
// and the completion word of the most recent operation.
package device

import (
	"golang.org/x/sys/unix"

	"github.com/dukaforge/sedctl/pkg/sed"
)

// Client is the local device surface used by the standard commands.
// Every operation returns the raw protocol or errno status.
type Client interface {
	Discover(path string) int
	TakeOwnership(path string) int
	ActivateLSP(path string) int
	SetupGlobalRange(path string) int
	LockUnlock(path, accessType string) int
	Revert(path string) int

	// Completion returns the NVMe completion word reported by the
	// driver for the most recent operation, or zero when none is
	// available.
	Completion() sed.CompletionWord
}

// KeyServer is the KMIP surface used by the key-management commands.
type KeyServer interface {
	ConnectionTest() int
	AssignKey(object, keyID string) int
	BackupKey(object, keyID string) int
}

// Unbound is the placeholder transport compiled in until the NVMe
// security-send/receive binding is wired. Every device operation
// reports that the device state could not be determined.
type Unbound struct{}

func (Unbound) Discover(string) int             { return -int(unix.ENODEV) }
func (Unbound) TakeOwnership(string) int        { return -int(unix.ENODEV) }
func (Unbound) ActivateLSP(string) int          { return -int(unix.ENODEV) }
func (Unbound) SetupGlobalRange(string) int     { return -int(unix.ENODEV) }
func (Unbound) LockUnlock(string, string) int   { return -int(unix.ENODEV) }
func (Unbound) Revert(string) int               { return -int(unix.ENODEV) }
func (Unbound) Completion() sed.CompletionWord  { return 0 }
func (Unbound) ConnectionTest() int             { return sed.KMIPFailure }
func (Unbound) AssignKey(string, string) int    { return sed.KMIPFailure }
func (Unbound) BackupKey(string, string) int    { return sed.KMIPFailure }
