package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rpcctl.conf")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields empty config", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.conf"))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.MountTable != "" || cfg.Verbose {
			t.Errorf("Load() = %+v, want zero config", cfg)
		}
	})

	t.Run("reads toml fields", func(t *testing.T) {
		path := writeConfig(t, "mount_table = \"/tmp/mounts\"\nverbose = true\n")

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.MountTable != "/tmp/mounts" {
			t.Errorf("MountTable = %q, want %q", cfg.MountTable, "/tmp/mounts")
		}
		if !cfg.Verbose {
			t.Error("Verbose should be true")
		}
	})

	t.Run("malformed toml fails", func(t *testing.T) {
		path := writeConfig(t, "mount_table = [broken\n")
		if _, err := Load(path); err == nil {
			t.Fatal("Load() should fail for malformed toml")
		}
	})
}

func TestMergeAndDefaults(t *testing.T) {
	tests := []struct {
		name           string
		cfg            Config
		flagMountTable string
		flagVerbose    bool
		want           Config
	}{
		{
			name: "flags take precedence over file values",
			cfg:  Config{MountTable: "/from/file", Verbose: false},

			flagMountTable: "/from/flag",
			flagVerbose:    true,
			want:           Config{MountTable: "/from/flag", Verbose: true},
		},
		{
			name: "empty flags keep file values",
			cfg:  Config{MountTable: "/from/file", Verbose: true},
			want: Config{MountTable: "/from/file", Verbose: true},
		},
		{
			name: "defaults fill unset fields",
			want: Config{MountTable: DefaultMountTable},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			cfg.Merge(tt.flagMountTable, tt.flagVerbose)
			cfg.ApplyDefaults()
			if cfg != tt.want {
				t.Errorf("after Merge+ApplyDefaults = %+v, want %+v", cfg, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"default config is valid", Config{MountTable: DefaultMountTable}, ""},
		{"custom absolute path is valid", Config{MountTable: "/tmp/mounts"}, ""},
		{"relative path is rejected", Config{MountTable: "proc/mounts"}, "absolute path"},
		{"empty path is rejected", Config{}, "mount_table"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}
