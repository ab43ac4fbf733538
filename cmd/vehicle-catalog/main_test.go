package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRun(t *testing.T) {
	shipped := filepath.Join("..", "..", "cars.csv")

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  []string
		wantErr  string
	}{
		{
			name:     "shipped catalog",
			args:     []string{shipped},
			wantCode: 0,
			wantOut: []string{
				"car: Nissan xTtrail 2.5 4",
				"truck: Man 20.0 8.0x3.0x2.5",
				"truck: Man 20.0 0.0x0.0x0.0",
				"car: Mazda 6 2.5 4",
				"spec_machine: Hitachi 1.2 Легкая техника для уборки снега",
			},
		},
		{
			name:     "kind filter",
			args:     []string{"-kind", "truck", shipped},
			wantCode: 0,
			wantOut: []string{
				"truck: Man 20.0 8.0x3.0x2.5",
				"truck: Man 20.0 0.0x0.0x0.0",
			},
		},
		{
			name:     "missing file",
			args:     []string{filepath.Join(t.TempDir(), "missing.csv")},
			wantCode: 1,
			wantErr:  "missing.csv",
		},
		{
			name:     "unknown kind",
			args:     []string{"-kind", "motorbike", shipped},
			wantCode: 1,
			wantErr:  "motorbike",
		},
		{
			name:     "bad flag",
			args:     []string{"-nope"},
			wantCode: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)

			if code != tt.wantCode {
				t.Fatalf("run() = %d, want %d (stderr: %s)", code, tt.wantCode, stderr.String())
			}
			if diff := cmp.Diff(tt.wantOut, lines(stdout.String())); diff != "" {
				t.Errorf("stdout mismatch (-want +got):\n%s", diff)
			}
			if tt.wantErr != "" && !strings.Contains(stderr.String(), tt.wantErr) {
				t.Errorf("stderr = %q, want it to mention %q", stderr.String(), tt.wantErr)
			}
		})
	}
}

func TestRun_DefaultCatalog(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(filepath.Join("..", "..")); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, want 0 (stderr: %s)", code, stderr.String())
	}

	got := lines(stdout.String())
	if len(got) != 5 || got[0] != "car: Nissan xTtrail 2.5 4" {
		t.Errorf("default catalog output = %q", got)
	}
}

func lines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
