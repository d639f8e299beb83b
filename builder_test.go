package qris

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildRoundTrip(t *testing.T) {
	original := samplePayload()

	built, err := NewEditor(original).Build()
	require.NoError(t, err)
	require.Equal(t, original, built, "no overrides on a valid payload must reproduce it byte for byte")
}

func TestBuildRepairsStaleChecksum(t *testing.T) {
	// Corrupt the checksum value only; the fields stay intact.
	original := samplePayload()
	stale := original[:len(original)-4] + "0000"

	built, err := NewEditor(stale).Build()
	require.NoError(t, err)
	require.Equal(t, original, built, "rebuild regenerates the checksum")
}

func TestBuildAppliesOverrides(t *testing.T) {
	e := NewEditor(samplePayload())
	e.SetMerchantName("WARUNG BARU")
	e.SetMerchantCity("BANDUNG")
	e.SetPostalCode("40111")

	built, err := e.Build()
	require.NoError(t, err)

	ok, reason := Validate(built)
	require.True(t, ok, reason)

	p := NewPayload(built)
	require.Equal(t, "WARUNG BARU", p.MerchantName())
	require.Equal(t, "BANDUNG", p.MerchantCity())
	require.Equal(t, "40111", p.PostalCode())

	// Untouched fields survive, in their original positions.
	require.Equal(t, "ID1234567890123", p.NMID())
	require.Equal(t, Parse(samplePayload()).Tags(), p.Document().Tags())
}

func TestBuildEmptyOverrideIsNoOp(t *testing.T) {
	e := NewEditor(samplePayload())
	e.SetMerchantName("")
	e.SetMerchantCity("")
	e.SetPostalCode("")

	built, err := e.Build()
	require.NoError(t, err)
	require.Equal(t, samplePayload(), built)
}

func TestBuildLengthViolation(t *testing.T) {
	testcases := []struct {
		name  string
		apply func(*Editor)
		tag   string
		size  int
		max   int
	}{
		{
			name:  "merchant name over 25",
			apply: func(e *Editor) { e.SetMerchantName("ABCDEFGHIJKLMNOPQRSTUVWXYZ") },
			tag:   "59",
			size:  26,
			max:   25,
		},
		{
			name:  "merchant city over 15",
			apply: func(e *Editor) { e.SetMerchantCity("KOTA ADMINISTRASI JAKARTA") },
			tag:   "60",
			size:  25,
			max:   15,
		},
		{
			name:  "postal code over 5",
			apply: func(e *Editor) { e.SetPostalCode("401112") },
			tag:   "61",
			size:  6,
			max:   5,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEditor(samplePayload())
			tc.apply(e)

			built, err := e.Build()
			require.Empty(t, built, "a failed build must produce no output")

			var le *LengthError
			require.ErrorAs(t, err, &le)
			require.Equal(t, tc.tag, le.Tag)
			require.Equal(t, tc.size, le.Length)
			require.Equal(t, tc.max, le.Max)
			require.ErrorIs(t, err, ErrValueTooLong)
		})
	}
}

func TestBuildIsSingleUse(t *testing.T) {
	e := NewEditor(samplePayload())

	_, err := e.Build()
	require.NoError(t, err)

	_, err = e.Build()
	require.ErrorIs(t, err, ErrAlreadyBuilt)
}

func TestBuildIdempotentView(t *testing.T) {
	// Re-parsing a built payload yields the override values back.
	e := NewEditor(samplePayload())
	e.SetMerchantName("KIOS KOPI")

	built, err := e.Build()
	require.NoError(t, err)

	again, err := NewEditor(built).Build()
	require.NoError(t, err)
	require.Equal(t, built, again)
	require.Equal(t, "KIOS KOPI", NewPayload(again).MerchantName())
}
