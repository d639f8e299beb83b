package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkadit/qris"
)

var validatePayload string

var validateCmd = &cobra.Command{
	Use:   "validate [payload-file]",
	Short: "Check a payload's structure and checksum",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readPayload(validatePayload, args)
		if err != nil {
			return err
		}

		ok, reason := qris.Validate(raw)
		if !ok {
			return fmt.Errorf("invalid: %s", reason)
		}

		fmt.Println(reason)
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validatePayload, "payload", "", "payload text (instead of a file)")
	rootCmd.AddCommand(validateCmd)
}
