// Common package holds the input helpers shared by the tools.
// Every tool reads its sequence through here, so gzip and FASTA
// handling only live in one place.
package common

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Loaded is the raw text of one protein sequence as read from disk.
type Loaded struct {
	ID      string // FASTA header of the record used, empty in raw mode
	Raw     string
	Records int // FASTA records seen; only the first is kept
}

type gzipFile struct {
	*gzip.Reader
	file *os.File
}

func (g gzipFile) Close() error {
	g.Reader.Close()
	return g.file.Close()
}

// OpenFileOrGzip opens a plain or gzip-compressed file.
// Compression is detected from the magic bytes, not the extension.
func OpenFileOrGzip(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	buf := make([]byte, 2)
	n, _ := io.ReadFull(f, buf)
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rewind %s: %w", path, err)
	}
	if n == 2 && buf[0] == 0x1F && buf[1] == 0x8B {
		gr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to open gzip reader: %w", err)
		}
		return gzipFile{Reader: gr, file: f}, nil
	}
	return f, nil
}

// LoadSequence reads a protein sequence from path.
//
// In raw mode the whole file is returned untouched; newlines and any other
// stray characters are left for the classifier to discard. In FASTA mode
// header lines are skipped and the sequence lines of the first record are
// joined. Case is never changed here.
func LoadSequence(path string, fasta bool) (Loaded, error) {
	r, err := OpenFileOrGzip(path)
	if err != nil {
		return Loaded{}, err
	}
	defer r.Close()

	if !fasta {
		data, err := io.ReadAll(r)
		if err != nil {
			return Loaded{}, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return Loaded{Raw: string(data)}, nil
	}
	return readFirstRecord(r)
}

func readFirstRecord(r io.Reader) (Loaded, error) {
	var loaded Loaded
	var seq strings.Builder

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			loaded.Records++
			if loaded.Records == 1 {
				loaded.ID = strings.TrimSpace(line[1:])
			}
			continue
		}
		// Lines before the first header still belong to the sequence
		if loaded.Records <= 1 {
			seq.WriteString(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return Loaded{}, fmt.Errorf("scanner error: %w", err)
	}
	loaded.Raw = seq.String()
	return loaded, nil
}
