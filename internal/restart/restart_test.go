package restart

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRecompileNoSourceIsNoOp(t *testing.T) {
	dir := t.TempDir()
	p := Paths{
		Dir:      dir,
		Source:   filepath.Join(dir, "tilewm.go"),
		Binary:   filepath.Join(dir, "tilewm-bin"),
		ErrorLog: filepath.Join(dir, "build.err"),
	}

	rebuilt, err := Recompile(p, false)
	if err != nil || rebuilt {
		t.Fatalf("Recompile with no source = rebuilt=%v err=%v, want false, nil", rebuilt, err)
	}
}

func TestRecompileSkipsWhenBinaryIsNewer(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "tilewm.go")
	binary := filepath.Join(dir, "tilewm-bin")
	if err := os.WriteFile(source, []byte("package main\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	older := mustTime(t, source)
	if err := os.WriteFile(binary, []byte("stale binary"), 0o755); err != nil {
		t.Fatal(err)
	}
	// Force the binary to look strictly newer than the source.
	newer := older.Add(time.Hour)
	if err := os.Chtimes(binary, newer, newer); err != nil {
		t.Fatal(err)
	}

	p := Paths{Dir: dir, Source: source, Binary: binary, ErrorLog: filepath.Join(dir, "build.err")}
	rebuilt, err := Recompile(p, false)
	if err != nil || rebuilt {
		t.Fatalf("Recompile with newer binary = rebuilt=%v err=%v, want false, nil", rebuilt, err)
	}
}

func mustTime(t *testing.T, path string) time.Time {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	return info.ModTime()
}
