package main

import (
	"testing"

	"aqiform/config"

	"github.com/spf13/pflag"
)

// parseServeFlags parses args as the serve command would and restores every
// flag to its default when the test ends.
func parseServeFlags(t *testing.T, args ...string) {
	t.Helper()

	reset := func() {
		for _, fs := range []*pflag.FlagSet{serveCmd.Flags(), rootCmd.PersistentFlags()} {
			fs.VisitAll(func(f *pflag.Flag) {
				_ = f.Value.Set(f.DefValue)
				f.Changed = false
			})
		}
	}
	reset()
	t.Cleanup(reset)

	if err := serveCmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v) error: %v", args, err)
	}
}

// clearEnv blanks every AQIFORM_* variable so the host environment cannot leak in
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		config.EnvAddr, config.EnvLogLevel, config.EnvMinAge, config.EnvLoginErrors,
		config.EnvSessionSecret, config.EnvSessionTTL, config.EnvTrustProxy,
	} {
		t.Setenv(k, "")
	}
}

// TestLoadConfigFlagsWin verifies explicitly set flags override the environment.
func TestLoadConfigFlagsWin(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvMinAge, "16")
	t.Setenv(config.EnvLoginErrors, "inline")
	t.Setenv(config.EnvAddr, ":9100")

	parseServeFlags(t, "--min-age", "18", "--login-errors", "alert")

	cfg, err := loadConfig(serveCmd)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.MinAge != 18 {
		t.Errorf("min age = %d, want 18 from the flag", cfg.MinAge)
	}
	if cfg.LoginErrors != "alert" {
		t.Errorf("login errors = %q, want alert from the flag", cfg.LoginErrors)
	}
	if cfg.Addr != ":9100" {
		t.Errorf("addr = %q, want the environment value when no flag is set", cfg.Addr)
	}
}

// TestLoadConfigUnsetFlagsKeepEnv verifies flag defaults do not mask the environment.
func TestLoadConfigUnsetFlagsKeepEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvMinAge, "16")
	t.Setenv(config.EnvLoginErrors, "alert")

	parseServeFlags(t)

	cfg, err := loadConfig(serveCmd)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.MinAge != 16 || cfg.LoginErrors != "alert" {
		t.Errorf("cfg = %+v, want environment values", cfg)
	}
}

// TestLoadConfigFlagRepairsEnv verifies validation runs after the flags are applied.
func TestLoadConfigFlagRepairsEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvLoginErrors, "popup")

	parseServeFlags(t, "--login-errors", "alert")

	if _, err := loadConfig(serveCmd); err != nil {
		t.Errorf("a valid flag should replace the bad environment value, got %v", err)
	}
}

// TestLoadConfigRejectsBadFlags verifies flag values are validated.
func TestLoadConfigRejectsBadFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown login error mode", []string{"--login-errors", "alertx"}},
		{"negative min age", []string{"--min-age=-1"}},
		{"empty addr", []string{"--addr="}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			parseServeFlags(t, tt.args...)
			if _, err := loadConfig(serveCmd); err == nil {
				t.Errorf("loadConfig() with %v should fail", tt.args)
			}
		})
	}
}
