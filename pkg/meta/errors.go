package meta

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a load failure.
type ErrorKind int

const (
	KindCorruptStream ErrorKind = iota + 1
	KindInvalidEncoding
	KindParse
	KindMissingSubtable
)

var (
	ErrCorruptStream   = errors.New("corrupt stream")
	ErrInvalidEncoding = errors.New("invalid encoding")
	ErrParse           = errors.New("parse error")
	ErrMissingSubtable = errors.New("missing subtable")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case KindCorruptStream:
		return ErrCorruptStream
	case KindInvalidEncoding:
		return ErrInvalidEncoding
	case KindParse:
		return ErrParse
	case KindMissingSubtable:
		return ErrMissingSubtable
	default:
		return nil
	}
}

func (k ErrorKind) String() string {
	if s := k.sentinel(); s != nil {
		return s.Error()
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is returned by Load and Decode. Subtable is set only for
// KindMissingSubtable.
type Error struct {
	Kind     ErrorKind
	Subtable string
	Err      error
}

func (e *Error) Error() string {
	msg := "meta: " + e.Kind.String()
	if e.Subtable != "" {
		msg += fmt.Sprintf(" %q", e.Subtable)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// UserMessage is the text to show a player when a file cannot be loaded.
func (e *Error) UserMessage() string {
	switch e.Kind {
	case KindCorruptStream, KindInvalidEncoding:
		return "not a valid save file"
	case KindParse:
		return "could not parse save data"
	case KindMissingSubtable:
		return "not a recognized save kind"
	default:
		return "could not load save file"
	}
}

// UserMessage returns the player-facing text for err, falling back to the
// error string for anything that did not come from this package.
func UserMessage(err error) string {
	var me *Error
	if errors.As(err, &me) {
		return me.UserMessage()
	}
	return err.Error()
}
