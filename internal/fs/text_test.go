package fs

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadLines(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    []string
	}{
		{"empty", nil, nil},
		{"single line without newline", []byte("foo"), []string{"foo"}},
		{"trailing newline", []byte("foo\nbar\n"), []string{"foo", "bar"}},
		{"crlf", []byte("foo\r\nbar\r\n"), []string{"foo", "bar"}},
		{"blank lines kept", []byte("a\n\nb"), []string{"a", "", "b"}},
		{"utf8 bom", []byte("\xEF\xBB\xBFzażółć\n"), []string{"zażółć"}},
		{"utf16le", []byte{0xFF, 0xFE, 0x41, 0x00, 0x0D, 0x00, 0x0A, 0x00, 0x42, 0x00}, []string{"A", "B"}},
		{"utf16be", []byte{0xFE, 0xFF, 0x00, 0x41, 0x00, 0x0A, 0x00, 0x42}, []string{"A", "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadLines(bytes.NewReader(tt.content))
			if err != nil {
				t.Fatalf("ReadLines: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ReadLines = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadLinesRejectsBinary(t *testing.T) {
	_, err := ReadLines(bytes.NewReader([]byte{0x7F, 'E', 'L', 'F', 0x00, 0x01}))
	if !errors.Is(err, ErrBinaryContent) {
		t.Fatalf("expected ErrBinaryContent, got %v", err)
	}
}

func TestIsTextDetectsUTF16LE(t *testing.T) {
	content := []byte{0xFF, 0xFE, 0x41, 0x00, 0x0D, 0x00, 0x0A, 0x00}
	if !IsText(content) {
		t.Fatalf("expected UTF-16 LE content to be treated as text")
	}
}

func TestIsTextLatin1(t *testing.T) {
	content := []byte("caf\xe9 au lait\n")
	if !IsText(content) {
		t.Fatalf("expected mostly printable content to be text")
	}
}

func TestLoadLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("first\nsecond\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	lines, err := LoadLines(path)
	if err != nil {
		t.Fatalf("LoadLines: %v", err)
	}
	if !reflect.DeepEqual(lines, []string{"first", "second"}) {
		t.Fatalf("LoadLines = %q", lines)
	}
}

func TestLoadLinesErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadLines(filepath.Join(dir, "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}

	png := filepath.Join(dir, "image.PNG")
	if err := os.WriteFile(png, []byte("not really"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := LoadLines(png)
	if !errors.Is(err, ErrBinaryContent) {
		t.Fatalf("expected ErrBinaryContent, got %v", err)
	}
	if !strings.Contains(err.Error(), "image.PNG") {
		t.Fatalf("error should name the file: %v", err)
	}
}
