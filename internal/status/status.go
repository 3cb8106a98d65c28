// Package status renders the numeric result of a command handler as a
// human-readable diagnostic. Two vocabularies overlap: negative values
// are OS/driver errno results, non-negative values are protocol status
// codes, and protocol codes without a textual mapping may carry a
// packed 16-bit NVMe completion word instead.
package status

import (
	"github.com/dukaforge/sedctl/internal/printer"
	"github.com/dukaforge/sedctl/pkg/sed"
	"golang.org/x/sys/unix"
)

// Mode selects the status vocabulary of the active client.
type Mode int

const (
	// ModeStandard decodes results from the local device library.
	ModeStandard Mode = iota
	// ModeKMIP decodes results from the key-management client.
	ModeKMIP
)

// statusText maps protocol status codes to their names. Codes marked
// OBSOLETE are reserved-but-retired values in the governing protocol
// specification. Codes absent from the map have no textual mapping.
var statusText = map[int]string{
	sed.StatusSuccess:             "SUCCESS",
	sed.StatusNotAuthorized:       "NOT_AUTHORIZED",
	sed.StatusObsolete:            "OBSOLETE",
	sed.StatusSPBusy:              "SP_BUSY",
	sed.StatusSPFailed:            "SP_FAILED",
	sed.StatusSPDisabled:          "SP_DISABLED",
	sed.StatusSPFrozen:            "SP_FROZEN",
	sed.StatusNoSessionsAvailable: "NO_SESSIONS_AVAILABLE",
	sed.StatusUniquenessConflict:  "UNIQUENESS_CONFLICT",
	sed.StatusInsufficientSpace:   "INSUFFICIENT_SPACE",
	sed.StatusInsufficientRows:    "INSUFFICIENT_ROWS",
	sed.StatusInvalidFunction:     "OBSOLETE",
	sed.StatusInvalidParameter:    "INVALID PARAMETER",
	sed.StatusInvalidReference:    "OBSOLETE",
	sed.StatusUnknownError:        "OBSOLETE",
	sed.StatusTPerMalfunction:     "TPER_MALFUNCTION",
	sed.StatusTransactionFailure:  "TRANSACTION_FAILURE",
	sed.StatusResponseOverflow:    "RESPONSE_OVERFLOW",
	sed.StatusAuthorityLockedOut:  "AUTHORITY_LOCKED_OUT",
	sed.StatusFail:                "FAIL",
}

// Text returns the textual mapping for a protocol status code, or ""
// when the code lies outside the table or has no mapping.
func Text(code int) string {
	if code < sed.StatusSuccess || code > sed.StatusFail {
		return ""
	}
	return statusText[code]
}

// Decoder turns handler results into diagnostics on a Printer. The
// vocabulary mode is fixed at construction.
type Decoder struct {
	mode Mode
	p    *printer.Printer
}

// NewDecoder returns a Decoder for the given mode printing to p.
func NewDecoder(mode Mode, p *printer.Printer) *Decoder {
	return &Decoder{mode: mode, p: p}
}

// Print renders the diagnostic for one handler result. hw is the NVMe
// completion word of the most recent driver operation; zero means no
// hardware status is available.
func (d *Decoder) Print(code int, hw sed.CompletionWord) {
	switch {
	case code < 0:
		d.printNegative(code)
	case d.mode == ModeKMIP:
		if code == sed.KMIPSuccessConnected {
			d.p.Errorf("sedctl-kmip: Successful connection to the KMIP server.\n")
		}
	default:
		d.printProtocol(code, hw)
	}
}

// printNegative maps OS/driver-level errno results to canned messages.
func (d *Decoder) printNegative(code int) {
	if d.mode == ModeKMIP {
		if code == sed.KMIPFailure {
			d.p.Errorf("sedctl-kmip: Failure.\n")
		} else {
			d.p.Errorf("sedctl-kmip: Unknown error.\n")
		}
		return
	}
	switch code {
	case -int(unix.EINVAL):
		d.p.Errorf("sedctl: Invalid parameter.\n")
	case -int(unix.ENODEV):
		d.p.Errorf("sedctl: Couldn't determine device state.\n")
	case -int(unix.ENOMEM):
		d.p.Errorf("sedctl: No memory.\n")
	default:
		d.p.Errorf("sedctl: Unknown error.\n")
	}
}

// printProtocol renders a non-negative result in standard mode.
func (d *Decoder) printProtocol(code int, hw sed.CompletionWord) {
	// Two low-valued driver errors bypass the protocol table.
	switch hw {
	case 4:
		d.p.Errorf("sedctl: IOCTL error: 0x04 Interrupted system call.\n")
		return
	case 5:
		d.p.Errorf("sedctl: IOCTL error: 0x05 I/O error.\n")
		return
	}

	text := Text(code)
	if text == "" {
		if code > 0 && code <= 0xFFFF && hw != 0 {
			w := sed.CompletionWord(code)
			d.p.Errorf("sedctl: NVMe error: %d\nSC: %d | SCT: %d | CRD: %d | M: %d | DNR: %d\n",
				code, w.SC(), w.SCT(), w.CRD(), w.More(), w.DNR())
			return
		}
		d.p.Errorf("status: Unknown status: %d\n", code)
		return
	}

	level := printer.LevelError
	if code == sed.StatusSuccess {
		level = printer.LevelInfo
	}
	d.p.Printf(level, "status: 0x%02x %s\n", code, text)
}
