package listfile

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestWriteRead_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	names := []string{"item1.txt", "sub/nested.txt", "item10.txt"}

	if err := Write(path, names); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !reflect.DeepEqual(got, names) {
		t.Errorf("Read() = %v, want %v", got, names)
	}
}

func TestWrite(t *testing.T) {
	t.Run("lines end with newline", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		if err := Write(path, []string{"a", "b"}); err != nil {
			t.Fatalf("Write() error = %v", err)
		}

		data, _ := os.ReadFile(path)
		if string(data) != "a\nb\n" {
			t.Errorf("file content = %q, want %q", data, "a\nb\n")
		}
	})

	t.Run("empty list writes empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		if err := Write(path, nil); err != nil {
			t.Fatalf("Write() error = %v", err)
		}

		data, _ := os.ReadFile(path)
		if len(data) != 0 {
			t.Errorf("file content = %q, want empty", data)
		}
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		os.WriteFile(path, []byte("stale content\n"), 0o644)

		if err := Write(path, []string{"fresh"}); err != nil {
			t.Fatalf("Write() error = %v", err)
		}

		data, _ := os.ReadFile(path)
		if string(data) != "fresh\n" {
			t.Errorf("file content = %q, want %q", data, "fresh\n")
		}
	})

	t.Run("invalid target reports WriteError", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing-dir", "out.txt")

		err := Write(path, []string{"a"})
		var writeErr *WriteError
		if !errors.As(err, &writeErr) {
			t.Fatalf("Write() error = %v, want *WriteError", err)
		}
		if writeErr.Path != path {
			t.Errorf("WriteError.Path = %q, want %q", writeErr.Path, path)
		}
	})
}

func TestRead(t *testing.T) {
	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.txt")
		os.WriteFile(path, nil, 0o644)

		got, err := Read(path)
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if len(got) != 0 {
			t.Errorf("Read() = %v, want empty", got)
		}
	})

	t.Run("crlf line endings", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "crlf.txt")
		os.WriteFile(path, []byte("a\r\nb\r\n"), 0o644)

		got, err := Read(path)
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if want := []string{"a", "b"}; !reflect.DeepEqual(got, want) {
			t.Errorf("Read() = %v, want %v", got, want)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Read(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
			t.Error("Read() error = nil, want error")
		}
	})
}
