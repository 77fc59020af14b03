package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rutstats/diversity"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Diversity != diversity.DefaultConfig() {
		t.Fatalf("expected default diversity config, got %+v", cfg.Diversity)
	}
	if cfg.Output != OutputTable || cfg.Workers != 1 || cfg.SkipUndefined || len(cfg.Metrics) != 0 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadEnvOverlay(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("RUTS_MATTR_WINDOW", "25")
	t.Setenv("RUTS_MTLD_THRESHOLD", "0.7")
	t.Setenv("RUTS_MAMTLD_TRIALS", "8")
	t.Setenv("RUTS_MAMTLD_SEED", "7")
	t.Setenv("RUTS_LOG_BASE", "10")
	t.Setenv("RUTS_METRICS", "ttr, mtld,,hdd")
	t.Setenv("RUTS_OUTPUT", "JSON")
	t.Setenv("RUTS_SKIP_UNDEFINED", "yes")
	t.Setenv("RUTS_WORKERS", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	d := cfg.Diversity
	if d.MATTRWindow != 25 || d.MTLDThreshold != 0.7 || d.MAMTLDTrials != 8 || d.MAMTLDSeed != 7 || d.LogBase != 10 {
		t.Fatalf("env not applied: %+v", d)
	}
	if len(cfg.Metrics) != 3 || cfg.Metrics[1] != "mtld" {
		t.Fatalf("unexpected metrics: %v", cfg.Metrics)
	}
	if cfg.Output != OutputJSON || cfg.Workers != 1 {
		t.Fatalf("unexpected output settings: %+v", cfg)
	}
	opts := cfg.Options(nil)
	if opts.Policy != diversity.SkipUndefined || len(opts.Metrics) != 3 {
		t.Fatalf("unexpected options: %+v", opts)
	}
}

func TestLoadDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ruts.env")
	if err := os.WriteFile(path, []byte("RUTS_HDD_SAMPLE_SIZE=30\nRUTS_LOG_BASE=e\n"), 0o644); err != nil {
		t.Fatalf("write env: %v", err)
	}
	t.Cleanup(func() {
		os.Unsetenv("RUTS_HDD_SAMPLE_SIZE")
		os.Unsetenv("RUTS_LOG_BASE")
	})

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Diversity.HDDSampleSize != 30 {
		t.Fatalf("expected hdd sample size from file, got %d", cfg.Diversity.HDDSampleSize)
	}
}

func TestLoadMissingEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.env")
	cfg, err := Load(path)
	if err == nil || cfg != nil {
		t.Fatalf("expected error for missing env file, got cfg=%+v err=%v", cfg, err)
	}
	if !strings.Contains(err.Error(), "missing.env") {
		t.Fatalf("expected error to name the file, got %v", err)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("RUTS_MTLD_THRESHOLD", "1.5")
	if _, err := Load(); !errors.Is(err, diversity.ErrInvalidConfig) {
		t.Fatalf("expected invalid config, got %v", err)
	}
}
