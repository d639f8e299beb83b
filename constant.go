package qris

// Top-level QRIS tags referenced by name elsewhere in the package.
const (
	TagPayloadFormat      = "00"
	TagPointOfInitiation  = "01"
	TagMerchantAccount    = "26"
	TagMerchantAccountQR  = "51"
	TagMerchantCategory   = "52"
	TagCurrency           = "53"
	TagAmount             = "54"
	TagCountryCode        = "58"
	TagMerchantName       = "59"
	TagMerchantCity       = "60"
	TagPostalCode         = "61"
	TagAdditionalData     = "62"
	TagCRC                = "63"
)

// Sub-tags inside the composite templates.
const (
	SubTagAcquirer = "01" // inside 26/51: acquiring institution id
	SubTagNMID     = "02" // inside 51/26: national merchant id
	SubTagTerminal = "07" // inside 62: terminal label
)

// TagConfig describes a top-level tag: its human-readable name and the
// maximum value length the builder enforces for it.
type TagConfig struct {
	Name      string
	MaxLength int
}

// maxLengthDefault applies to every tag without an explicit entry below.
// The two-digit length field caps any value at 99 characters anyway.
const maxLengthDefault = 99

var DefaultConfigTag = map[string]TagConfig{
	"00": {Name: "Payload Format Indicator", MaxLength: 99},
	"01": {Name: "Point of Initiation Method", MaxLength: 99},
	"26": {Name: "Merchant Account Information", MaxLength: 99},
	"51": {Name: "Merchant Account Information (QRIS)", MaxLength: 99},
	"52": {Name: "Merchant Category Code", MaxLength: 99},
	"53": {Name: "Transaction Currency", MaxLength: 99},
	"54": {Name: "Transaction Amount", MaxLength: 99},
	"55": {Name: "Tip or Convenience Indicator", MaxLength: 99},
	"56": {Name: "Value of Convenience Fee Fixed", MaxLength: 99},
	"57": {Name: "Value of Convenience Fee Percentage", MaxLength: 99},
	"58": {Name: "Country Code", MaxLength: 99},
	"59": {Name: "Merchant Name", MaxLength: 25},
	"60": {Name: "Merchant City", MaxLength: 15},
	"61": {Name: "Postal Code", MaxLength: 5},
	"62": {Name: "Additional Data Field Template", MaxLength: 99},
	"63": {Name: "CRC (Checksum)", MaxLength: 4},
}

// TagName returns the standard name for a tag, or a placeholder for
// tags outside the documented set.
func TagName(tag string) string {
	if cfg, ok := DefaultConfigTag[tag]; ok {
		return cfg.Name
	}
	return "Unknown Tag " + tag
}

// maxLength returns the builder's length ceiling for a tag.
func maxLength(tag string) int {
	if cfg, ok := DefaultConfigTag[tag]; ok && cfg.MaxLength > 0 {
		return cfg.MaxLength
	}
	return maxLengthDefault
}
