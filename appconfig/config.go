package appconfig

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// maxTracesHardCeiling mirrors bitops.SatVec's 128-bit width: no
// subproblem may reach the Boolean engine with more traces than that,
// so DefaultMaxTraces is clamped to it rather than trusted as a free
// policy knob.
const maxTracesHardCeiling = 128

// Config holds the values loaded at startup: logging preferences and
// default search budgets. cmd/ltlsynth reads only LogLevel and LogFormat;
// its subcommands take their budgets from positional arguments and do not
// read the Default* fields.
type Config struct {
	LogLevel  string
	LogFormat string

	DefaultMaxSizeLTL int
	DefaultDominNb    int
	DefaultMaxTraces  int
}

// Load reads configuration from environment variables and an optional
// .env file in the working directory.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:          getEnv("LTLSYNTH_LOG_LEVEL", "info"),
		LogFormat:         getEnv("LTLSYNTH_LOG_FORMAT", "console"),
		DefaultMaxSizeLTL: getEnvInt("LTLSYNTH_MAX_SIZE_LTL", 4),
		DefaultDominNb:    getEnvInt("LTLSYNTH_DOMIN_NB", 10),
		DefaultMaxTraces:  getEnvInt("LTLSYNTH_MAX_TRACES", maxTracesHardCeiling),
	}
	if cfg.DefaultMaxTraces > maxTracesHardCeiling {
		cfg.DefaultMaxTraces = maxTracesHardCeiling
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
