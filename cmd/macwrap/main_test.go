package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/j-veylop/macwrap/internal/export"
	"github.com/j-veylop/macwrap/internal/models"
)

func TestVersionCmd(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), "macwrap ") {
		t.Errorf("version output = %q", out.String())
	}
}

func TestExportCmd_UnknownFormat(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"export", "--format", "xml"})

	if err := root.Execute(); !errors.Is(err, export.ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestRootCmd_Flags(t *testing.T) {
	root := newRootCmd()
	if root.PersistentFlags().Lookup("year") == nil {
		t.Error("root should define --year")
	}

	exportCmd, _, err := root.Find([]string{"export"})
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	for _, name := range []string{"format", "output"} {
		if exportCmd.Flags().Lookup(name) == nil {
			t.Errorf("export should define --%s", name)
		}
	}
}

func TestWriteExport(t *testing.T) {
	report := models.AnnualReport{Year: 2025, TotalLaunches: 7}
	dir := t.TempDir()

	tests := []struct {
		name    string
		output  string
		toFile  bool
		wantErr bool
	}{
		{"stdout dash", "-", false, false},
		{"stdout empty", "", false, false},
		{"file", filepath.Join(dir, "recap.yaml"), true, false},
		{"missing dir", filepath.Join(dir, "nope", "recap.yaml"), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			err := writeExport(&stdout, tt.output, report, export.FormatYAML)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("writeExport failed: %v", err)
			}

			got := stdout.String()
			if tt.toFile {
				if got != "" {
					t.Errorf("stdout should stay empty, got %q", got)
				}
				data, err := os.ReadFile(tt.output)
				if err != nil {
					t.Fatalf("ReadFile failed: %v", err)
				}
				got = string(data)
			}
			if !strings.Contains(got, "total_launches: 7") {
				t.Errorf("output = %q", got)
			}
		})
	}
}
