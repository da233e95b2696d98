package persistence

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestNew(t *testing.T) {
	if got := New().Path(); got != DefaultOutputPath {
		t.Errorf("expected default path %s, got %s", DefaultOutputPath, got)
	}
	if got := New("").Path(); got != DefaultOutputPath {
		t.Errorf("expected default path for empty argument, got %s", got)
	}
	if got := New("out/report.html").Path(); got != "out/report.html" {
		t.Errorf("expected custom path, got %s", got)
	}
}

func TestFilePersister_Execute(t *testing.T) {
	logger := zaptest.NewLogger(t)

	tests := []struct {
		name      string
		path      func(dir string) string
		input     interface{}
		expectErr bool
	}{
		{
			name:  "writes document",
			path:  func(dir string) string { return filepath.Join(dir, "email_body.html") },
			input: "<h3>report</h3>",
		},
		{
			name:  "creates parent directories",
			path:  func(dir string) string { return filepath.Join(dir, "nested", "deeper", "email_body.html") },
			input: "<h3>report</h3>",
		},
		{
			name:      "invalid input type",
			path:      func(dir string) string { return filepath.Join(dir, "email_body.html") },
			input:     42,
			expectErr: true,
		},
		{
			name: "unwritable path",
			path: func(dir string) string {
				blocker := filepath.Join(dir, "blocker")
				os.WriteFile(blocker, []byte("file"), 0644)
				return filepath.Join(blocker, "email_body.html")
			},
			input:     "<h3>report</h3>",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.path(t.TempDir())
			fp := New(path)

			out, err := fp.Execute(context.Background(), tt.input, logger)

			if tt.expectErr {
				if err == nil {
					t.Errorf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != path {
				t.Errorf("expected output %s, got %v", path, out)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read output: %v", err)
			}
			if string(data) != tt.input {
				t.Errorf("expected %q, got %q", tt.input, data)
			}
		})
	}
}

func TestFilePersister_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "email_body.html")
	fp := New(path)

	if err := fp.Write("first run, a much longer document"); err != nil {
		t.Fatal(err)
	}
	if err := fp.Write("second"); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "second" {
		t.Errorf("expected file to be replaced, got %q", data)
	}
}

func TestFilePersister_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "email_body.html")
	if _, err := New(path).Execute(ctx, "doc", zaptest.NewLogger(t)); err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected no file after cancellation")
	}
}
