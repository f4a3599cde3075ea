package update

import (
	"os"
	"strconv"
	"strings"
)

type RuntimeConfig struct {
	InitialView   string
	ExportDir     string
	UpcomingLimit int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		InitialView:   string(ViewDashboard),
		ExportDir:     ".",
		UpcomingLimit: 5,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("COMPLYMATE_INITIAL_VIEW"); ok {
		cfg.InitialView = v
	}
	if v, ok := getEnvString("COMPLYMATE_EXPORT_DIR"); ok {
		cfg.ExportDir = v
	}
	if v, ok := getEnvInt("COMPLYMATE_UPCOMING_LIMIT"); ok && v > 0 {
		cfg.UpcomingLimit = v
	}
	return cfg
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
