package qris

import "strconv"

// TLV geometry of the QRIS payload format: fixed-width ASCII decimal
// tag and length, two characters each.
const (
	tagWidth    = 2
	lenWidth    = 2
	headerWidth = tagWidth + lenWidth
)

// Parse decodes a flat QRIS TLV stream into a Document.
//
// The decoder is deliberately fault tolerant, matching the behaviour
// real payment apps rely on for payloads captured from the wild:
//   - fewer than 4 characters left: stop, trailing bytes are ignored
//   - non-numeric length field: stop and return the fields decoded so
//     far (partial parse, not an error)
//   - declared length runs past the end of input: take what remains
//
// Nested templates are not recursed into; their values stay opaque
// strings until SubField is called on them.
func Parse(raw string) *Document {
	doc := NewDocument()

	pos := 0
	for pos < len(raw) {
		if pos+headerWidth > len(raw) {
			break
		}

		tag := raw[pos : pos+tagWidth]
		length, err := strconv.Atoi(raw[pos+tagWidth : pos+headerWidth])
		if err != nil || length < 0 {
			break
		}

		end := pos + headerWidth + length
		if end > len(raw) {
			end = len(raw)
		}
		value := raw[pos+headerWidth : end]

		doc.Set(Field{Tag: tag, Length: length, Value: value})
		pos += headerWidth + length
	}

	return doc
}

// SubField runs the same decode loop over the value of a template field
// and returns the value of the first entry whose tag equals subTag. The
// second return is false when the container is empty, malformed before
// the tag is reached, or the tag never occurs.
func SubField(container, subTag string) (string, bool) {
	pos := 0
	for pos < len(container) {
		if pos+headerWidth > len(container) {
			break
		}

		tag := container[pos : pos+tagWidth]
		length, err := strconv.Atoi(container[pos+tagWidth : pos+headerWidth])
		if err != nil || length < 0 {
			break
		}

		end := pos + headerWidth + length
		if end > len(container) {
			end = len(container)
		}

		if tag == subTag {
			return container[pos+headerWidth : end], true
		}
		pos += headerWidth + length
	}

	return "", false
}
