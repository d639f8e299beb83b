// Package render prepares the textual hand-off for an external QR
// renderer. It decides what goes on the printed voucher (captions,
// footer, optional watermark) but never touches pixels, fonts or the
// QR matrix itself.
package render

import (
	"strings"
	"time"

	"github.com/mkadit/qris"
	"github.com/mkadit/qris/internal/config"
)

// Fallback printed in the footer when the payload has no acquirer id.
const acquirerFallback = "00000000"

const footerVersion = "1.0"

// Watermark is an explicit overlay request for the renderer. Earlier
// versions of this tool smuggled a hard-coded, rotated "EDITED" overlay
// into the output; this struct is its documented replacement and is
// only emitted when configuration asks for it.
type Watermark struct {
	Text    string `json:"text"`
	Opacity int    `json:"opacity"`
	Angle   int    `json:"angle"`
}

// Caption is everything the renderer needs to label one payload:
// the payload text for the QR matrix plus the merchant strings placed
// around it.
type Caption struct {
	Payload      string     `json:"payload"`
	MerchantName string     `json:"merchant_name"`
	NMID         string     `json:"nmid,omitempty"`
	TerminalID   string     `json:"terminal_id,omitempty"`
	PrintedBy    string     `json:"printed_by"`
	Footer       string     `json:"footer"`
	Watermark    *Watermark `json:"watermark,omitempty"`
}

// BuildCaption assembles the renderer hand-off for a payload. The
// merchant name is upper-cased for display, the footer carries the
// acquirer id (or its fallback) and a versioned print date.
func BuildCaption(p *qris.Payload, cfg config.RenderConfig, now time.Time) Caption {
	printedBy := p.AcquiringID()
	if printedBy == "" {
		printedBy = acquirerFallback
	}

	c := Caption{
		Payload:      p.Raw(),
		MerchantName: strings.ToUpper(p.MerchantName()),
		NMID:         p.NMID(),
		TerminalID:   p.TerminalID(),
		PrintedBy:    printedBy,
		Footer:       footerVersion + "-" + now.Format("2006.01.02"),
	}

	if cfg.Watermark.Enabled {
		c.Watermark = &Watermark{
			Text:    cfg.Watermark.Text,
			Opacity: cfg.Watermark.Opacity,
			Angle:   cfg.Watermark.Angle,
		}
	}

	return c
}
