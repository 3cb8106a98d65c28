// Package sed defines the status vocabularies of the SED management
// protocol: the TCG method status codes returned by a drive's security
// subsystem, the result sentinels of the key-management (KMIP) client,
// and the 16-bit NVMe completion status word.
//
// The package is data only; interpretation and rendering of these
// values lives in internal/status.
package sed

// TCG method status codes (protocol-level, distinct from OS errno
// values). The vocabulary spans 0x00-0x12 plus the terminal 0x3F.
const (
	StatusSuccess             = 0x00
	StatusNotAuthorized       = 0x01
	StatusObsolete            = 0x02
	StatusSPBusy              = 0x03
	StatusSPFailed            = 0x04
	StatusSPDisabled          = 0x05
	StatusSPFrozen            = 0x06
	StatusNoSessionsAvailable = 0x07
	StatusUniquenessConflict  = 0x08
	StatusInsufficientSpace   = 0x09
	StatusInsufficientRows    = 0x0A
	StatusInvalidFunction     = 0x0B
	StatusInvalidParameter    = 0x0C
	StatusInvalidReference    = 0x0D
	StatusUnknownError        = 0x0E
	StatusTPerMalfunction     = 0x0F
	StatusTransactionFailure  = 0x10
	StatusResponseOverflow    = 0x11
	StatusAuthorityLockedOut  = 0x12
	StatusFail                = 0x3F
)

// Result sentinels of the KMIP client.
const (
	KMIPSuccess          = 0
	KMIPSuccessConnected = 1
	KMIPFailure          = -1
)
