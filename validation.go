package qris

import (
	"fmt"
	"strings"
)

// Structural requirements every QRIS payload must meet before it is
// worth parsing. The length floor is a practical one: no real merchant
// payload fits in fewer than 50 characters.
const (
	minPayloadLength = 50
	payloadPrefix    = "000201"
	crcHeader        = "6304"
)

// Validate runs the structural sanity checks over a raw payload and
// returns whether it passed together with a reason string. Checks run
// in order and short-circuit on the first failure; on success the
// reason is "valid".
//
// The checks are deliberately lenient where the original standard
// tooling is lenient. In particular the merchant name check is a plain
// substring scan for "59", not a structural field lookup; tightening it
// would reject payloads the rest of the ecosystem accepts.
func Validate(raw string) (bool, string) {
	if len(raw) < minPayloadLength {
		return false, "too short"
	}

	if !strings.HasPrefix(raw, payloadPrefix) {
		return false, "not QRIS format"
	}

	// The checksum field is the last one in a well-formed payload, so
	// the last occurrence of its header marks the checksum boundary.
	crcPos := strings.LastIndex(raw, crcHeader)
	if crcPos == -1 {
		return false, "checksum tag missing"
	}
	if len(raw) < crcPos+len(crcHeader)+4 {
		return false, "invalid checksum format"
	}

	covered := raw[:crcPos+len(crcHeader)]
	got := strings.ToUpper(raw[crcPos+len(crcHeader) : crcPos+len(crcHeader)+4])
	want := Checksum(covered)
	if got != want {
		return false, fmt.Sprintf("checksum mismatch (expected: %s, got: %s)", want, got)
	}

	if !strings.Contains(raw, TagMerchantName) {
		return false, "merchant name tag missing"
	}

	return true, "valid"
}
