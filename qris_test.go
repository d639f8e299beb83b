package qris

// Shared fixtures for the package tests. samplePayload assembles a
// realistic merchant payload and seals it with a freshly computed
// checksum, so fixtures stay valid without hard-coding CRC values.

const sampleBody = "000201" +
	"010212" +
	"26560014ID.CO.QRIS.WWW0115ID10200176123450215ID1234567890123" +
	"51440014ID.CO.QRIS.WWW0215ID12345678901230303UMI" +
	"52045812" +
	"5303360" +
	"5802ID" +
	"5910TOKO SEJUK" +
	"6007JAKARTA" +
	"610510110" +
	"62070703A01"

func samplePayload() string {
	unsealed := sampleBody + "6304"
	return unsealed + Checksum(unsealed)
}
