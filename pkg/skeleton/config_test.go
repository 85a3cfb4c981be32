package skeleton

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	skerrors "github.com/go-drift/skeleton/pkg/errors"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "defaults", cfg: DefaultConfig()},
		{name: "zero width", cfg: Config{Duration: time.Second}},
		{name: "full width", cfg: Config{SweepWidth: 1, FirstStopOffset: 1, Duration: time.Second}},
		{name: "negative width", cfg: Config{SweepWidth: -0.1, Duration: time.Second}, wantErr: true},
		{name: "width above one", cfg: Config{SweepWidth: 1.5, Duration: time.Second}, wantErr: true},
		{name: "negative offset", cfg: Config{SweepWidth: 0.2, FirstStopOffset: -0.1, Duration: time.Second}, wantErr: true},
		{name: "offset above width", cfg: Config{SweepWidth: 0.1, FirstStopOffset: 0.2, Duration: time.Second}, wantErr: true},
		{name: "zero duration", cfg: Config{SweepWidth: 0.1}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var le *skerrors.LoaderError
			if !errors.As(err, &le) || le.Kind != skerrors.KindConfig {
				t.Errorf("error = %#v, want config LoaderError", err)
			}
		})
	}
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte("sweep:\n  width: 0.3\n  duration: 1.2s\n"), "skeleton.yaml")
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	want := Config{SweepWidth: 0.3, FirstStopOffset: DefaultFirstStopOffset, Duration: 1200 * time.Millisecond}
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		kind skerrors.ErrorKind
	}{
		{name: "bad yaml", data: "sweep: [", kind: skerrors.KindParsing},
		{name: "bad duration", data: "sweep:\n  duration: soon\n", kind: skerrors.KindParsing},
		{name: "invalid values", data: "sweep:\n  width: 0.05\n  first_stop: 0.1\n", kind: skerrors.KindConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data), "cfg.yaml")
			var le *skerrors.LoaderError
			if !errors.As(err, &le) {
				t.Fatalf("err = %v, want LoaderError", err)
			}
			if le.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", le.Kind, tt.kind)
			}
			if le.Path != "cfg.yaml" {
				t.Errorf("path = %q", le.Path)
			}
		})
	}
}

func TestLoadConfigOptional(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadConfigOptional(dir)
	if err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}

	data := []byte("sweep:\n  first_stop: 0.05\n")
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), data, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadConfigOptional(dir)
	if err != nil {
		t.Fatalf("LoadConfigOptional: %v", err)
	}
	if cfg.FirstStopOffset != 0.05 || cfg.SweepWidth != DefaultSweepWidth {
		t.Errorf("cfg = %+v", cfg)
	}
}
