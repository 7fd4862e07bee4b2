package compare

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/novafiles/lister/internal/types"
)

func TestNormalize(t *testing.T) {
	t.Run("trims blanks and dedupes", func(t *testing.T) {
		raw := "b.txt\n\n  a.txt  \nb.txt\n"
		got := Normalize(raw, false)
		want := []string{"a.txt", "b.txt"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Normalize() = %v, want %v", got, want)
		}
	})

	t.Run("case folding merges duplicates", func(t *testing.T) {
		raw := "File.txt\nfile.txt\nOther.txt"
		got := Normalize(raw, true)
		want := []string{"file.txt", "other.txt"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Normalize() = %v, want %v", got, want)
		}
	})

	t.Run("natural sort order", func(t *testing.T) {
		raw := "item10.txt\nitem2.txt\nitem1.txt"
		got := Normalize(raw, false)
		want := []string{"item1.txt", "item2.txt", "item10.txt"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Normalize() = %v, want %v", got, want)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := Normalize("", false); len(got) != 0 {
			t.Errorf("Normalize(\"\") = %v, want empty", got)
		}
	})
}

func TestDiff(t *testing.T) {
	a := []string{"common.txt", "only-a.txt", "shared2.txt"}
	b := []string{"common.txt", "only-b.txt", "shared2.txt"}

	got := Diff(a, b)

	if want := []string{"only-a.txt"}; !reflect.DeepEqual(got.OnlyA, want) {
		t.Errorf("OnlyA = %v, want %v", got.OnlyA, want)
	}
	if want := []string{"only-b.txt"}; !reflect.DeepEqual(got.OnlyB, want) {
		t.Errorf("OnlyB = %v, want %v", got.OnlyB, want)
	}
	if want := []string{"common.txt", "shared2.txt"}; !reflect.DeepEqual(got.Both, want) {
		t.Errorf("Both = %v, want %v", got.Both, want)
	}
}

func TestLists(t *testing.T) {
	got := Lists("File.txt\nextra.txt", "file.txt", types.CompareOptions{IgnoreCase: true})

	if want := []string{"extra.txt"}; !reflect.DeepEqual(got.OnlyA, want) {
		t.Errorf("OnlyA = %v, want %v", got.OnlyA, want)
	}
	if len(got.OnlyB) != 0 {
		t.Errorf("OnlyB = %v, want empty", got.OnlyB)
	}
	if want := []string{"file.txt"}; !reflect.DeepEqual(got.Both, want) {
		t.Errorf("Both = %v, want %v", got.Both, want)
	}
}

func TestRender(t *testing.T) {
	r := types.CompareResult{
		OnlyA: []string{"a1.txt"},
		OnlyB: []string{},
		Both:  []string{"c1.txt", "c2.txt"},
	}

	got := Render(r)

	if !strings.Contains(got, "Only in A (1)\na1.txt\n") {
		t.Errorf("Render() missing OnlyA block:\n%s", got)
	}
	if !strings.Contains(got, "Only in B (0)\n") {
		t.Errorf("Render() missing OnlyB block:\n%s", got)
	}
	if !strings.Contains(got, "In both (2)\nc1.txt\nc2.txt\n") {
		t.Errorf("Render() missing Both block:\n%s", got)
	}
}

func TestWriteResults(t *testing.T) {
	dir := t.TempDir()
	r := types.CompareResult{
		OnlyA: []string{"a.txt"},
		OnlyB: []string{"b.txt"},
		Both:  []string{"c.txt"},
	}

	if err := WriteResults(dir, r); err != nil {
		t.Fatalf("WriteResults() error = %v", err)
	}

	checks := map[string]string{
		OnlyAFile: "a.txt\n",
		OnlyBFile: "b.txt\n",
		BothFile:  "c.txt\n",
	}
	for file, want := range checks {
		data, err := os.ReadFile(filepath.Join(dir, file))
		if err != nil {
			t.Fatalf("ReadFile(%s) error = %v", file, err)
		}
		if string(data) != want {
			t.Errorf("%s content = %q, want %q", file, data, want)
		}
	}

	combined, err := os.ReadFile(filepath.Join(dir, CombinedFile))
	if err != nil {
		t.Fatalf("ReadFile(%s) error = %v", CombinedFile, err)
	}
	if !strings.Contains(string(combined), "Only in A (1)") {
		t.Errorf("combined report missing header:\n%s", combined)
	}

	t.Run("missing directory", func(t *testing.T) {
		err := WriteResults(filepath.Join(dir, "nope"), r)
		if err == nil {
			t.Error("WriteResults() error = nil, want error")
		}
	})
}
