package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReal_WriteFileAtomicCreatesWithPerm(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "activities.json")
	r := NewReal()

	if err := r.WriteFileAtomic(path, []byte("[]"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}

	if got, want := info.Mode().Perm(), os.FileMode(0o600); got != want {
		t.Errorf("perm=%v, want=%v", got, want)
	}

	got, err := r.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if string(got) != "[]" {
		t.Errorf("content=%q, want=%q", got, "[]")
	}
}

func TestReal_WriteFileAtomicReplaces(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "activities.json")
	r := NewReal()

	for _, content := range []string{"first", "second, longer content", "x"} {
		if err := r.WriteFileAtomic(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write %q: %v", content, err)
		}

		got, err := r.ReadFile(path)
		if err != nil {
			t.Fatalf("read: %v", err)
		}

		if string(got) != content {
			t.Errorf("content=%q, want=%q", got, content)
		}
	}
}

func TestReal_Exists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	r := NewReal()

	ok, err := r.Exists(filepath.Join(dir, "missing"))
	if err != nil || ok {
		t.Errorf("Exists(missing)=(%v, %v), want (false, nil)", ok, err)
	}

	nested := filepath.Join(dir, "a", "b")
	if err := r.MkdirAll(nested, 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	ok, err = r.Exists(nested)
	if err != nil || !ok {
		t.Errorf("Exists(nested)=(%v, %v), want (true, nil)", ok, err)
	}
}
