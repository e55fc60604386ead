// Package compress inflates and deflates save payloads. Saves are raw
// DEFLATE streams with no zlib or gzip framing.
package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/klauspost/compress/flate"
)

// DefaultLevel is the compression level used by Compress.
const DefaultLevel = flate.DefaultCompression

var (
	// ErrCorruptStream is returned when the input is not a valid DEFLATE stream.
	ErrCorruptStream = errors.New("corrupt deflate stream")
	// ErrInvalidEncoding is returned when the inflated payload is not UTF-8 text.
	ErrInvalidEncoding = errors.New("inflated payload is not valid UTF-8")
	// ErrInvalidLevel is returned for a compression level flate does not accept.
	ErrInvalidLevel = errors.New("invalid compression level")
)

// Decompress inflates a raw DEFLATE stream and returns it as text.
func Decompress(data []byte) (string, error) {
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCorruptStream, err)
	}
	if !utf8.Valid(out) {
		return "", ErrInvalidEncoding
	}

	return string(out), nil
}

// Compress deflates text at DefaultLevel.
func Compress(text string) ([]byte, error) {
	return CompressLevel(text, DefaultLevel)
}

// CompressLevel deflates text at the given flate level
// (flate.HuffmanOnly through flate.BestCompression).
func CompressLevel(text string, level int) ([]byte, error) {
	if !ValidLevel(level) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}

	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLevel, err)
	}
	if _, err := io.WriteString(w, text); err != nil {
		return nil, fmt.Errorf("failed to deflate payload: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to flush deflate stream: %w", err)
	}

	return buf.Bytes(), nil
}

// ValidLevel reports whether level is accepted by CompressLevel.
func ValidLevel(level int) bool {
	return level >= flate.HuffmanOnly && level <= flate.BestCompression
}
