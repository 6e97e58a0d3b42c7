package config

import (
	"path/filepath"

	gconfig "github.com/Laisky/go-config/v2"
	"github.com/Laisky/zap"

	"github.com/chandemahtab/blog-api/library/log"
)

func LoadFromFile(cfgPath string) {
	gconfig.Shared.Set("cfg_dir", filepath.Dir(cfgPath))
	if err := gconfig.Shared.LoadFromFile(cfgPath); err != nil {
		log.Logger.Panic("load configuration",
			zap.Error(err),
			zap.String("config", cfgPath))
	}

	log.Logger.Info("load configuration",
		zap.String("config", cfgPath))
}

// MustGetSecret returns the named setting and panics when it is empty.
// Secrets never fall back to a default value.
func MustGetSecret(key string) string {
	val := gconfig.Shared.GetString(key)
	if val == "" {
		log.Logger.Panic("required secret is not configured", zap.String("key", key))
	}

	return val
}
