package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"rutstats/diversity"
)

type Output string

const (
	OutputTable Output = "table"
	OutputJSON  Output = "json"
)

type Config struct {
	Diversity     diversity.Config
	Metrics       []string
	Output        Output
	Workers       int
	SkipUndefined bool
	LogLevel      string
}

// Load reads an optional .env file and overlays RUTS_* environment variables on the
// default diversity configuration.
func Load(files ...string) (*Config, error) {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return nil, fmt.Errorf("load env %v: %w", files, err)
		}
	} else {
		_ = godotenv.Load()
	}

	d := diversity.DefaultConfig()
	d.MATTRWindow = getEnvInt("RUTS_MATTR_WINDOW", d.MATTRWindow)
	d.MSTTRSegment = getEnvInt("RUTS_MSTTR_SEGMENT", d.MSTTRSegment)
	d.MTLDThreshold = getEnvFloat("RUTS_MTLD_THRESHOLD", d.MTLDThreshold)
	d.MTLDMinLength = getEnvInt("RUTS_MTLD_MIN_LENGTH", d.MTLDMinLength)
	d.MTLDFactorMinLength = getEnvInt("RUTS_MTLD_FACTOR_MIN_LENGTH", d.MTLDFactorMinLength)
	d.MAMTLDTrials = getEnvInt("RUTS_MAMTLD_TRIALS", d.MAMTLDTrials)
	d.MAMTLDWindow = getEnvInt("RUTS_MAMTLD_WINDOW", d.MAMTLDWindow)
	d.MAMTLDSeed = getEnvUint64("RUTS_MAMTLD_SEED", d.MAMTLDSeed)
	d.HDDSampleSize = getEnvInt("RUTS_HDD_SAMPLE_SIZE", d.HDDSampleSize)
	d.LogBase = parseLogBase(getEnv("RUTS_LOG_BASE", ""), d.LogBase)

	cfg := &Config{
		Diversity:     d,
		Metrics:       splitList(getEnv("RUTS_METRICS", "")),
		Output:        parseOutput(getEnv("RUTS_OUTPUT", string(OutputTable))),
		Workers:       getEnvInt("RUTS_WORKERS", 1),
		SkipUndefined: getEnvBool("RUTS_SKIP_UNDEFINED", false),
		LogLevel:      strings.ToLower(getEnv("RUTS_LOG_LEVEL", "info")),
	}
	if err := cfg.Diversity.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Options(logger diversity.Logger) diversity.Options {
	policy := diversity.FailFast
	if c.SkipUndefined {
		policy = diversity.SkipUndefined
	}
	return diversity.Options{
		Metrics: c.Metrics,
		Policy:  policy,
		Workers: c.Workers,
		Logger:  logger,
	}
}

func parseOutput(raw string) Output {
	switch Output(strings.ToLower(strings.TrimSpace(raw))) {
	case OutputJSON:
		return OutputJSON
	default:
		return OutputTable
	}
}

// parseLogBase accepts a number or "e".
func parseLogBase(raw string, fallback float64) float64 {
	raw = strings.TrimSpace(strings.ToLower(raw))
	switch raw {
	case "":
		return fallback
	case "e":
		return math.E
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvUint64(key string, defaultValue uint64) uint64 {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if v, err := strconv.ParseUint(value, 10, 64); err == nil {
			return v
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	if raw == "" {
		return defaultValue
	}
	return raw == "1" || raw == "true" || raw == "yes" || raw == "on"
}
