package fs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

const (
	sniffSampleSize              = 4096
	nonPrintableThresholdPercent = 30

	// MaxBufferBytes caps how much input a single jump session loads.
	MaxBufferBytes int64 = 64 << 20
)

var (
	// ErrBinaryContent is returned when the input does not look like text.
	ErrBinaryContent = errors.New("binary content")
	// ErrBufferTooLarge is returned when the input exceeds MaxBufferBytes.
	ErrBufferTooLarge = errors.New("buffer too large")
)

type bufferEncoding int

const (
	encodingPlain bufferEncoding = iota
	encodingUTF8BOM
	encodingUTF16LE
	encodingUTF16BE
)

var binaryExtensions = map[string]struct{}{
	".7z": {}, ".bin": {}, ".class": {}, ".dll": {}, ".dylib": {},
	".exe": {}, ".gif": {}, ".gz": {}, ".ico": {}, ".jar": {},
	".jpeg": {}, ".jpg": {}, ".mp3": {}, ".mp4": {}, ".o": {},
	".pdf": {}, ".png": {}, ".so": {}, ".tar": {}, ".wasm": {},
	".xz": {}, ".zip": {},
}

// LoadLines reads path into a line buffer.
func LoadLines(path string) ([]string, error) {
	if looksBinaryByExtension(path) {
		return nil, fmt.Errorf("load %s: %w", path, ErrBinaryContent)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return lines, nil
}

// ReadLines reads r to the end and splits it into lines. BOM-marked UTF-8
// and UTF-16 input is decoded; line endings (\n or \r\n) are stripped. A
// trailing newline does not produce an empty last line.
func ReadLines(r io.Reader) ([]string, error) {
	content, err := io.ReadAll(io.LimitReader(r, MaxBufferBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(content)) > MaxBufferBytes {
		return nil, ErrBufferTooLarge
	}
	if !IsText(content) {
		return nil, ErrBinaryContent
	}
	return SplitLines(NormalizeText(content)), nil
}

// SplitLines splits text on \n, dropping a \r before it.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// IsText reports whether content looks like text. Only a leading sample
// is inspected.
func IsText(content []byte) bool {
	if len(content) == 0 {
		return true
	}

	sample := content
	if len(sample) > sniffSampleSize {
		sample = sample[:sniffSampleSize]
	}

	if detectEncoding(sample) != encodingPlain {
		return true
	}
	if bytes.IndexByte(sample, 0x00) != -1 {
		return false
	}
	if utf8.Valid(sample) {
		return true
	}

	nonPrintable := 0
	for _, b := range sample {
		if !isTextByte(b) {
			nonPrintable++
		}
	}
	return nonPrintable*100/len(sample) < nonPrintableThresholdPercent
}

// NormalizeText converts BOM-marked input to a UTF-8 string.
func NormalizeText(content []byte) string {
	switch detectEncoding(content) {
	case encodingUTF8BOM:
		return string(content[3:])
	case encodingUTF16LE:
		return decodeUTF16(content, unicode.LittleEndian)
	case encodingUTF16BE:
		return decodeUTF16(content, unicode.BigEndian)
	default:
		return string(content)
	}
}

func looksBinaryByExtension(path string) bool {
	if path == "" {
		return false
	}
	_, ok := binaryExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

func isTextByte(b byte) bool {
	switch {
	case b == '\t' || b == '\n' || b == '\r' || b == 0x1B:
		return true
	case b >= 0x20 && b <= 0x7E:
		return true
	default:
		return b >= 0x80
	}
}

func detectEncoding(sample []byte) bufferEncoding {
	if len(sample) >= 3 && sample[0] == 0xEF && sample[1] == 0xBB && sample[2] == 0xBF {
		return encodingUTF8BOM
	}
	if len(sample) >= 2 {
		switch {
		case sample[0] == 0xFF && sample[1] == 0xFE:
			return encodingUTF16LE
		case sample[0] == 0xFE && sample[1] == 0xFF:
			return encodingUTF16BE
		}
	}
	return encodingPlain
}

func decodeUTF16(content []byte, endian unicode.Endianness) string {
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, err := decoder.Bytes(content)
	if err != nil {
		return string(content)
	}
	return string(out)
}
