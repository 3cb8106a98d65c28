package sed

// CompletionWord is the 16-bit NVMe completion status word reported by
// the driver alongside a failed security command. Sub-fields are
// extracted with explicit shifts and masks; the layout is:
//
//	bits [0:8)   SC   status code
//	bits [8:11)  SCT  status code type
//	bits [11:13) CRD  command retry delay
//	bit  13      M    more information available
//	bit  14     DNR   do not retry
//	bit  15      reserved
type CompletionWord uint16

// SC returns the status code field.
func (w CompletionWord) SC() uint8 { return uint8(w & 0xFF) }

// SCT returns the status code type field.
func (w CompletionWord) SCT() uint8 { return uint8((w >> 8) & 0x07) }

// CRD returns the command retry delay field.
func (w CompletionWord) CRD() uint8 { return uint8((w >> 11) & 0x03) }

// More returns the more-information bit.
func (w CompletionWord) More() uint8 { return uint8((w >> 13) & 0x01) }

// DNR returns the do-not-retry bit.
func (w CompletionWord) DNR() uint8 { return uint8((w >> 14) & 0x01) }

// Reserved returns the reserved top bit.
func (w CompletionWord) Reserved() uint8 { return uint8((w >> 15) & 0x01) }
