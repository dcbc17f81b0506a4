package common

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string, compress bool) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if !compress {
		if _, err := f.WriteString(content); err != nil {
			t.Fatal(err)
		}
		return path
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSequenceRaw(t *testing.T) {
	content := "  MDKK\nysig >x\n"
	path := writeFile(t, "seq.txt", content, false)
	loaded, err := LoadSequence(path, false)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Raw != content {
		t.Fatalf("raw = %q, want %q", loaded.Raw, content)
	}
	if loaded.Records != 0 || loaded.ID != "" {
		t.Fatalf("raw mode reported FASTA metadata: %+v", loaded)
	}
}

func TestLoadSequenceGzip(t *testing.T) {
	path := writeFile(t, "seq.txt.gz", "ACDEFG", true)
	loaded, err := LoadSequence(path, false)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Raw != "ACDEFG" {
		t.Fatalf("raw = %q", loaded.Raw)
	}
}

func TestLoadSequenceFASTA(t *testing.T) {
	content := ">sp|Q99ZW2|CAS9 Cas9 protein\nMDKKYSIGLD\n\n  IGTNSVGWAV  \n>second\nWWWW\n"
	path := writeFile(t, "seq.fasta", content, false)
	loaded, err := LoadSequence(path, true)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Raw != "MDKKYSIGLDIGTNSVGWAV" {
		t.Fatalf("raw = %q", loaded.Raw)
	}
	if loaded.ID != "sp|Q99ZW2|CAS9 Cas9 protein" {
		t.Fatalf("id = %q", loaded.ID)
	}
	if loaded.Records != 2 {
		t.Fatalf("records = %d, want 2", loaded.Records)
	}
}

func TestLoadSequenceFASTAKeepsCase(t *testing.T) {
	path := writeFile(t, "lower.fasta", ">p\nmdkk\n", true)
	loaded, err := LoadSequence(path, true)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Raw != "mdkk" {
		t.Fatalf("raw = %q, want lowercase kept", loaded.Raw)
	}
}

func TestLoadSequenceMissing(t *testing.T) {
	if _, err := LoadSequence(filepath.Join(t.TempDir(), "missing.txt"), false); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestOpenFileOrGzipShortFile(t *testing.T) {
	path := writeFile(t, "one.txt", "A", false)
	r, err := OpenFileOrGzip(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	buf := make([]byte, 4)
	n, _ := r.Read(buf)
	if string(buf[:n]) != "A" {
		t.Fatalf("read %q", buf[:n])
	}
}
