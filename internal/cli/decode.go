package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkadit/qris"
	"github.com/mkadit/qris/internal/store"
)

var (
	decodePayload  string
	decodeNoVerify bool
)

var decodeCmd = &cobra.Command{
	Use:   "decode [payload-file]",
	Short: "Decode a payload and show its merchant fields",
	Long: `Decode reads a QRIS payload (from a file, stdin via "-", or the
--payload flag), verifies its structure and checksum, and prints the
merchant summary.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readPayload(decodePayload, args)
		if err != nil {
			return err
		}

		if !decodeNoVerify {
			if ok, reason := qris.Validate(raw); !ok {
				return fmt.Errorf("invalid QRIS payload: %s", reason)
			}
		}

		p := qris.NewPayload(raw)
		logger.Debug().Str("component", "decode").
			Int("tags", p.Document().Len()).
			Msg("payload parsed")

		printInfo(os.Stdout, p)
		saveHistory(raw, store.SourceDecoded)
		return nil
	},
}

func init() {
	decodeCmd.Flags().StringVar(&decodePayload, "payload", "", "payload text (instead of a file)")
	decodeCmd.Flags().BoolVar(&decodeNoVerify, "no-verify", false, "skip structural and checksum validation")
	rootCmd.AddCommand(decodeCmd)
}

// saveHistory records a payload when history is enabled. History
// failures are logged, never fatal: the decode or edit already
// succeeded.
func saveHistory(raw, source string) {
	if cfg == nil || !cfg.History.Enabled {
		return
	}

	s, err := store.Open(cfg.History.Path)
	if err != nil {
		logger.Warn().Err(err).Msg("history disabled for this run")
		return
	}
	defer s.Close()

	if err := s.Put(store.NewRecord(raw, source, time.Now())); err != nil {
		logger.Warn().Err(err).Msg("failed to record payload")
	}
}
