package qris

import "strings"

// Payload is a read-only semantic view over one decoded QRIS string.
// Every accessor returns "" when the backing tag is absent; none of
// them mutate the document, so a Payload is safe to share.
type Payload struct {
	raw string
	doc *Document
}

// NewPayload parses raw and wraps it in a semantic view. Leading and
// trailing whitespace is stripped before parsing, matching what QR
// scanners tend to hand over.
func NewPayload(raw string) *Payload {
	raw = strings.TrimSpace(raw)
	return &Payload{
		raw: raw,
		doc: Parse(raw),
	}
}

// Raw returns the payload text this view was built from.
func (p *Payload) Raw() string {
	return p.raw
}

// Document exposes the underlying parsed document.
func (p *Payload) Document() *Document {
	return p.doc
}

// MerchantName returns the value of tag 59.
func (p *Payload) MerchantName() string {
	return p.doc.Value(TagMerchantName)
}

// MerchantCity returns the value of tag 60.
func (p *Payload) MerchantCity() string {
	return p.doc.Value(TagMerchantCity)
}

// PostalCode returns the value of tag 61.
func (p *Payload) PostalCode() string {
	return p.doc.Value(TagPostalCode)
}

// Checksum returns the value of tag 63 as present in the payload.
// Use Validate to check whether it is actually correct.
func (p *Payload) Checksum() string {
	return p.doc.Value(TagCRC)
}

// CountryCode returns the value of tag 58.
func (p *Payload) CountryCode() string {
	return p.doc.Value(TagCountryCode)
}

// MerchantCategory returns the value of tag 52.
func (p *Payload) MerchantCategory() string {
	return p.doc.Value(TagMerchantCategory)
}

// Currency returns the value of tag 53.
func (p *Payload) Currency() string {
	return p.doc.Value(TagCurrency)
}

// NMID returns the national merchant id: sub-tag 02 inside template 51,
// falling back to template 26 when 51 is absent or empty.
func (p *Payload) NMID() string {
	container := p.doc.Value(TagMerchantAccountQR)
	if container == "" {
		container = p.doc.Value(TagMerchantAccount)
	}
	value, _ := SubField(container, SubTagNMID)
	return value
}

// AcquiringID returns the acquiring institution id: sub-tag 01 inside
// template 26, falling back to template 51. The standard allots eight
// characters to the institution; longer values are truncated to eight.
func (p *Payload) AcquiringID() string {
	container := p.doc.Value(TagMerchantAccount)
	if container == "" {
		container = p.doc.Value(TagMerchantAccountQR)
	}
	value, _ := SubField(container, SubTagAcquirer)
	if len(value) > 8 {
		value = value[:8]
	}
	return value
}

// TerminalID returns the terminal label: sub-tag 07 inside template 62.
func (p *Payload) TerminalID() string {
	value, _ := SubField(p.doc.Value(TagAdditionalData), SubTagTerminal)
	return value
}

// InfoEntry is one labelled value in a payload summary.
type InfoEntry struct {
	Label string
	Value string
}

// Info returns the merchant summary in presentation order, omitting
// entries whose value is empty. The caller owns the rendering.
func (p *Payload) Info() []InfoEntry {
	all := []InfoEntry{
		{"Merchant Name", p.MerchantName()},
		{"Merchant City", p.MerchantCity()},
		{"NMID", p.NMID()},
		{"Terminal ID", p.TerminalID()},
		{"Acquiring ID", p.AcquiringID()},
		{"Country Code", p.CountryCode()},
		{"Postal Code", p.PostalCode()},
		{"Merchant Category", p.MerchantCategory()},
		{"Currency", p.Currency()},
		{"Checksum", p.Checksum()},
	}

	entries := make([]InfoEntry, 0, len(all))
	for _, e := range all {
		if e.Value != "" {
			entries = append(entries, e)
		}
	}
	return entries
}
