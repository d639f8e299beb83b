package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkadit/qris/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List locally recorded payloads",
	Long: `History lists the payloads this tool has decoded or rebuilt.
Recording is off unless history.enabled is set in configuration.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cfg.History.Enabled {
			return fmt.Errorf("history is disabled; set history.enabled in the config")
		}

		s, err := store.Open(cfg.History.Path)
		if err != nil {
			return err
		}
		defer s.Close()

		records, err := s.List()
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("no recorded payloads")
			return nil
		}

		for _, rec := range records {
			fmt.Printf("%s  %-8s  %-25s  %s\n",
				rec.SavedAt.Format("2006-01-02 15:04:05"),
				rec.Source,
				rec.MerchantName,
				rec.Checksum,
			)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
