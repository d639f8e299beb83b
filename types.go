package qris

// Field is a single decoded Tag-Length-Value entry.
// Tag is two ASCII decimal digits, Length is the declared value length
// (0-99) and Value is the raw text between this field and the next one.
// Value may itself be a nested TLV stream (a template); it is kept opaque
// at this level and re-parsed on demand via SubField.
type Field struct {
	Tag    string
	Length int
	Value  string
}

// Document is an ordered, key-unique mapping of tag to Field produced by
// one parse pass. Iteration order is insertion order. A repeated tag
// overwrites the earlier occurrence in place (last-write-wins) without
// changing its position.
type Document struct {
	order  []string
	fields map[string]Field
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{
		order:  make([]string, 0, 16),
		fields: make(map[string]Field, 16),
	}
}

// Set inserts or overwrites the field for its tag.
func (d *Document) Set(f Field) {
	if _, ok := d.fields[f.Tag]; !ok {
		d.order = append(d.order, f.Tag)
	}
	d.fields[f.Tag] = f
}

// Get returns the field for tag and whether it is present.
func (d *Document) Get(tag string) (Field, bool) {
	f, ok := d.fields[tag]
	return f, ok
}

// Value returns the value for tag, or "" when the tag is absent.
func (d *Document) Value(tag string) string {
	return d.fields[tag].Value
}

// Has reports whether tag was decoded.
func (d *Document) Has(tag string) bool {
	_, ok := d.fields[tag]
	return ok
}

// Len returns the number of distinct tags.
func (d *Document) Len() int {
	return len(d.order)
}

// Tags returns the decoded tags in insertion order.
func (d *Document) Tags() []string {
	tags := make([]string, len(d.order))
	copy(tags, d.order)
	return tags
}
