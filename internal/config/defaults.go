package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// setDefaults seeds every known key so a bare environment still yields
// a complete, valid configuration.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")

	v.SetDefault("history.enabled", false)
	v.SetDefault("history.path", defaultHistoryPath())

	// The watermark ships disabled. The text, opacity and angle mirror
	// the overlay earlier versions of this tool applied implicitly, so
	// enabling it reproduces the old output.
	v.SetDefault("render.watermark.enabled", false)
	v.SetDefault("render.watermark.text", "EDITED")
	v.SetDefault("render.watermark.opacity", 50)
	v.SetDefault("render.watermark.angle", 25)
}

func defaultHistoryPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "qris-history"
	}
	return filepath.Join(dir, "qris", "history")
}
