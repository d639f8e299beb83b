package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkadit/qris"
	"github.com/mkadit/qris/internal/store"
)

var (
	editPayload string
	editName    string
	editCity    string
	editPostal  string
	editOut     string
)

var editCmd = &cobra.Command{
	Use:   "edit [payload-file]",
	Short: "Override merchant fields and rebuild the payload",
	Long: `Edit applies the given merchant overrides to a payload, recomputes
the checksum and emits the rebuilt payload. Flags left empty leave the
corresponding field unchanged; clearing a field is not supported.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readPayload(editPayload, args)
		if err != nil {
			return err
		}

		if ok, reason := qris.Validate(raw); !ok {
			return fmt.Errorf("invalid QRIS payload: %s", reason)
		}

		if editName == "" && editCity == "" && editPostal == "" {
			return fmt.Errorf("nothing to change: pass --name, --city or --postal")
		}

		e := qris.NewEditor(raw)
		e.SetMerchantName(editName)
		e.SetMerchantCity(editCity)
		e.SetPostalCode(editPostal)

		built, err := e.Build()
		if err != nil {
			return err
		}

		logger.Debug().Str("component", "edit").
			Int("payload_len", len(built)).
			Msg("payload rebuilt")

		printInfo(os.Stdout, qris.NewPayload(built))

		if editOut != "" {
			if err := os.WriteFile(editOut, []byte(built+"\n"), 0o644); err != nil {
				return fmt.Errorf("failed to write payload: %w", err)
			}
			logger.Info().Str("path", editOut).Msg("payload written")
		} else {
			fmt.Println(built)
		}

		saveHistory(built, store.SourceBuilt)
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editPayload, "payload", "", "payload text (instead of a file)")
	editCmd.Flags().StringVar(&editName, "name", "", "new merchant name (tag 59, max 25)")
	editCmd.Flags().StringVar(&editCity, "city", "", "new merchant city (tag 60, max 15)")
	editCmd.Flags().StringVar(&editPostal, "postal", "", "new postal code (tag 61, max 5)")
	editCmd.Flags().StringVarP(&editOut, "out", "o", "", "write the rebuilt payload to a file")
	rootCmd.AddCommand(editCmd)
}
