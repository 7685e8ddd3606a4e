package config

import (
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
	if cfg.Format != FormatText || cfg.Preview != PreviewAuto || cfg.Level() != hclog.Info || cfg.NoColor {
		t.Errorf("Default() = %+v", cfg)
	}
}

func TestBuilderWithEnvConfig(t *testing.T) {
	tests := []struct {
		name    string
		vars    map[string]string
		want    Config
		wantErr string
	}{
		{
			name: "no variables",
			vars: map[string]string{},
			want: Default(),
		},
		{
			name: "all variables",
			vars: map[string]string{
				EnvFormat:   "JSON",
				EnvPreview:  " never ",
				EnvLogLevel: "debug",
				EnvNoColor:  "1",
			},
			want: Config{Format: FormatJSON, Preview: PreviewNever, LogLevel: "debug", NoColor: true},
		},
		{
			name: "empty values ignored",
			vars: map[string]string{EnvFormat: "", EnvNoColor: ""},
			want: Default(),
		},
		{
			name:    "invalid format",
			vars:    map[string]string{EnvFormat: "xml"},
			wantErr: "invalid format",
		},
		{
			name:    "invalid preview",
			vars:    map[string]string{EnvPreview: "sometimes"},
			wantErr: "invalid preview mode",
		},
		{
			name:    "invalid log level",
			vars:    map[string]string{EnvLogLevel: "loud"},
			wantErr: "invalid log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewBuilder().WithEnvConfig().WithLookup(env(tt.vars)).Build()
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("Build() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Build() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Build() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBuilderIgnoresEnvUnlessRequested(t *testing.T) {
	got, err := NewBuilder().WithLookup(env(map[string]string{EnvFormat: "yaml"})).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got.Format != FormatText {
		t.Errorf("Format = %s, want %s", got.Format, FormatText)
	}
}

func TestConfigLevel(t *testing.T) {
	cfg := Config{Format: FormatYAML, Preview: PreviewAlways, LogLevel: "warn"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Level() != hclog.Warn {
		t.Errorf("Level() = %v, want warn", cfg.Level())
	}
}
