package qris

import (
	"fmt"

	"github.com/sigurn/crc16"
)

// QRIS integrity checksums use CRC-16/CCITT-FALSE: polynomial 0x1021,
// initial value 0xFFFF, no input/output reflection, no final xor.
// Conformance vector: "123456789" -> 0x29B1.
var crcTable = crc16.MakeTable(crc16.Params{
	Poly:   0x1021,
	Init:   0xFFFF,
	RefIn:  false,
	RefOut: false,
	XorOut: 0x0000,
	Check:  0x29B1,
	Name:   "CRC-16/CCITT-FALSE",
})

// Checksum computes the payload checksum over the bytes of data and
// renders it as four uppercase hex digits, zero padded.
func Checksum(data string) string {
	return fmt.Sprintf("%04X", crc16.Checksum([]byte(data), crcTable))
}
