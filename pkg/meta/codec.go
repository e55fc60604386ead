package meta

import (
	"errors"
	"fmt"

	"github.com/jwebster45206/balatro-meta/pkg/compress"
	"github.com/jwebster45206/balatro-meta/pkg/luatable"
)

// Load decodes the raw bytes of a meta.jkr file. Failures are *Error
// values of one of the four kinds.
func Load(data []byte) (*Meta, error) {
	text, err := compress.Decompress(data)
	if err != nil {
		kind := KindCorruptStream
		if errors.Is(err, compress.ErrInvalidEncoding) {
			kind = KindInvalidEncoding
		}
		return nil, &Error{Kind: kind, Err: err}
	}
	return LoadText(text)
}

// LoadText decodes an already inflated document.
func LoadText(text string) (*Meta, error) {
	root, err := luatable.Parse(text)
	if err != nil {
		return nil, &Error{Kind: KindParse, Err: err}
	}
	alerted, discovered, unlocked, err := Decode(root)
	if err != nil {
		return nil, err
	}
	return Reconcile(alerted, discovered, unlocked), nil
}

// Text renders m as the inflated document text.
func Text(m *Meta) string {
	return luatable.SerializeDocument(ToTable(m))
}

// Save encodes m at the default compression level. It does not fail.
func Save(m *Meta) ([]byte, error) {
	return SaveLevel(m, compress.DefaultLevel)
}

// SaveLevel encodes m at the given flate level. The only possible error
// is an invalid level.
func SaveLevel(m *Meta, level int) ([]byte, error) {
	data, err := compress.CompressLevel(Text(m), level)
	if err != nil {
		return nil, fmt.Errorf("meta: %w", err)
	}
	return data, nil
}
