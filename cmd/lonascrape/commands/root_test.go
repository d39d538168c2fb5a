package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestInitConfig_ConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("environment: staging\n"), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	if err := rootCmd.PersistentFlags().Set("config", path); err != nil {
		t.Fatalf("set config flag: %v", err)
	}

	initConfig()

	if used := viper.ConfigFileUsed(); used != path {
		t.Errorf("config file used = %q, want %q", used, path)
	}
	if got := viper.GetString("environment"); got != "staging" {
		t.Errorf("environment = %q, want %q", got, "staging")
	}
}
