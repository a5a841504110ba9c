package cmd

import (
	"fmt"
	"time"

	"github.com/eslsoft/blinkvocab/internal/infrastructure/config"
	"github.com/eslsoft/blinkvocab/internal/infrastructure/database"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func bindFlagToViper(key string, flag *pflag.Flag) {
	if flag == nil {
		return
	}
	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// openStore loads configuration and opens the KV store for backup commands.
func openStore() (*database.Store, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	return database.NewStore(cfg)
}

func defaultBackupFilename(gzipEnabled bool) string {
	name := fmt.Sprintf("blinkvocab-backup-%s.ndjson", time.Now().Format("20060102-150405"))
	if gzipEnabled {
		name += ".gz"
	}
	return name
}
