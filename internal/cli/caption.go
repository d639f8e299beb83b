package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkadit/qris"
	"github.com/mkadit/qris/internal/render"
)

var captionPayload string

var captionCmd = &cobra.Command{
	Use:   "caption [payload-file]",
	Short: "Emit the renderer hand-off for a payload as JSON",
	Long: `Caption prints the JSON document an external QR renderer consumes:
the payload text plus the merchant strings to place around the code.
The watermark block appears only when enabled in configuration.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readPayload(captionPayload, args)
		if err != nil {
			return err
		}

		if ok, reason := qris.Validate(raw); !ok {
			return fmt.Errorf("invalid QRIS payload: %s", reason)
		}

		c := render.BuildCaption(qris.NewPayload(raw), cfg.Render, time.Now())

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	},
}

func init() {
	captionCmd.Flags().StringVar(&captionPayload, "payload", "", "payload text (instead of a file)")
	rootCmd.AddCommand(captionCmd)
}
