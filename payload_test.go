package qris

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPayloadAccessors(t *testing.T) {
	p := NewPayload(samplePayload())

	require.Equal(t, "TOKO SEJUK", p.MerchantName())
	require.Equal(t, "JAKARTA", p.MerchantCity())
	require.Equal(t, "10110", p.PostalCode())
	require.Equal(t, "ID", p.CountryCode())
	require.Equal(t, "5812", p.MerchantCategory())
	require.Equal(t, "360", p.Currency())
	require.Len(t, p.Checksum(), 4)

	// Template 51 carries the NMID, template 26 the acquirer.
	require.Equal(t, "ID1234567890123", p.NMID())
	require.Equal(t, "ID102001", p.AcquiringID(), "acquiring id is cut to eight characters")
	require.Equal(t, "A01", p.TerminalID())
}

func TestPayloadMissingTags(t *testing.T) {
	p := NewPayload("000201")

	require.Equal(t, "", p.MerchantName())
	require.Equal(t, "", p.MerchantCity())
	require.Equal(t, "", p.PostalCode())
	require.Equal(t, "", p.Checksum())
	require.Equal(t, "", p.NMID())
	require.Equal(t, "", p.AcquiringID())
	require.Equal(t, "", p.TerminalID())
}

func TestNMIDFallsBackToTag26(t *testing.T) {
	// No template 51 at all: NMID comes out of template 26.
	raw := "000201" + "26190215ID9988776655443"
	p := NewPayload(raw)
	require.Equal(t, "ID9988776655443", p.NMID())
}

func TestAcquiringIDFallsBackToTag51(t *testing.T) {
	raw := "000201" + "51190115ID1020017612345"
	p := NewPayload(raw)
	require.Equal(t, "ID102001", p.AcquiringID())
}

func TestAcquiringIDShortValueNotPadded(t *testing.T) {
	raw := "000201" + "26080104ID10"
	p := NewPayload(raw)
	require.Equal(t, "ID10", p.AcquiringID())
}

func TestPayloadTrimsWhitespace(t *testing.T) {
	p := NewPayload("  " + samplePayload() + "\n")
	require.Equal(t, samplePayload(), p.Raw())
	require.Equal(t, "TOKO SEJUK", p.MerchantName())
}

func TestInfoOmitsEmptyEntries(t *testing.T) {
	p := NewPayload(samplePayload())

	info := p.Info()
	labels := make([]string, 0, len(info))
	for _, e := range info {
		require.NotEmpty(t, e.Value, "empty values must be dropped")
		labels = append(labels, e.Label)
	}

	require.Equal(t, []string{
		"Merchant Name",
		"Merchant City",
		"NMID",
		"Terminal ID",
		"Acquiring ID",
		"Country Code",
		"Postal Code",
		"Merchant Category",
		"Currency",
		"Checksum",
	}, labels)

	// A payload with no additional-data template has no terminal entry.
	bare := NewPayload("000201" + "5904TOKO")
	for _, e := range bare.Info() {
		require.NotEqual(t, "Terminal ID", e.Label)
	}
}
