package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mkadit/qris"
)

// readPayload resolves the payload text for a command: the --payload
// flag wins, otherwise the single positional argument names a file
// ("-" for stdin).
func readPayload(payloadFlag string, args []string) (string, error) {
	if payloadFlag != "" {
		return strings.TrimSpace(payloadFlag), nil
	}

	if len(args) != 1 {
		return "", fmt.Errorf("expected a payload file argument or --payload")
	}

	var data []byte
	var err error
	if args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return "", fmt.Errorf("failed to read payload: %w", err)
	}

	raw := strings.TrimSpace(string(data))
	if raw == "" {
		return "", qris.ErrEmptyPayload
	}
	return raw, nil
}

// printInfo writes the merchant summary the way the tool always has:
// a boxed, labelled table followed by the raw payload.
func printInfo(w io.Writer, p *qris.Payload) {
	line := strings.Repeat("=", 50)
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, "          QRIS MERCHANT INFORMATION")
	fmt.Fprintln(w, line)

	for _, e := range p.Info() {
		fmt.Fprintf(w, "  %-20s: %s\n", e.Label, e.Value)
	}

	fmt.Fprintln(w, strings.Repeat("-", 50))
	fmt.Fprintln(w, "  QRIS Raw Value:")
	fmt.Fprintf(w, "  %s\n", p.Raw())
	fmt.Fprintln(w, line)
}
