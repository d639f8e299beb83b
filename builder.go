package qris

import (
	"fmt"
	"strconv"
	"strings"
)

// Editor accumulates top-level field overrides for one payload and
// rebuilds it with a fresh checksum. An Editor is single-use: Build
// consumes the override set and freezes the instance. The zero value is
// not usable; construct with NewEditor.
//
// An Editor must not have setters called concurrently with Build.
type Editor struct {
	raw       string
	overrides map[string]string
	built     bool
}

// NewEditor creates an editor over the given payload text.
func NewEditor(raw string) *Editor {
	return &Editor{
		raw:       strings.TrimSpace(raw),
		overrides: make(map[string]string, 3),
	}
}

// SetMerchantName overrides tag 59. An empty name is a no-op, so
// "leave unchanged" callers can pass through blank input directly.
func (e *Editor) SetMerchantName(name string) {
	if name != "" {
		e.overrides[TagMerchantName] = name
	}
}

// SetMerchantCity overrides tag 60. Empty city is a no-op.
func (e *Editor) SetMerchantCity(city string) {
	if city != "" {
		e.overrides[TagMerchantCity] = city
	}
}

// SetPostalCode overrides tag 61. Empty code is a no-op.
func (e *Editor) SetPostalCode(postalCode string) {
	if postalCode != "" {
		e.overrides[TagPostalCode] = postalCode
	}
}

// Build re-serializes the payload and returns the final text.
//
// It walks the original raw stream rather than a parsed document so
// that field order is preserved exactly. The old checksum field (tag
// 63) is dropped, overrides are substituted with their length
// recomputed, every field is checked against its maximum length, and a
// fresh checksum is appended after the fixed "6304" header.
//
// The only failure mode is a length violation, reported as a
// *LengthError; no output is produced in that case. Calling Build a
// second time fails with ErrAlreadyBuilt.
func (e *Editor) Build() (string, error) {
	if e.built {
		return "", ErrAlreadyBuilt
	}

	var out strings.Builder
	out.Grow(len(e.raw) + 8)

	pos := 0
	for pos < len(e.raw) {
		if pos+headerWidth > len(e.raw) {
			break
		}

		tag := e.raw[pos : pos+tagWidth]
		length, err := strconv.Atoi(e.raw[pos+tagWidth : pos+headerWidth])
		if err != nil || length < 0 {
			break
		}
		advance := headerWidth + length

		end := pos + headerWidth + length
		if end > len(e.raw) {
			end = len(e.raw)
		}
		value := e.raw[pos+headerWidth : end]

		if tag == TagCRC {
			pos += advance
			continue
		}

		if override, ok := e.overrides[tag]; ok {
			value = override
			length = len(override)
		}

		if max := maxLength(tag); length > max {
			return "", &LengthError{Tag: tag, Length: length, Max: max}
		}

		fmt.Fprintf(&out, "%s%02d%s", tag, length, value)
		pos += advance
	}

	// The standard fixes the checksum value at four characters, so the
	// header is always the literal "6304". The checksum covers
	// everything up to and including that header.
	out.WriteString(TagCRC + "04")
	body := out.String()

	e.built = true
	e.overrides = nil

	return body + Checksum(body), nil
}
