package sample

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FieldSeparator separates payload values.
const FieldSeparator = ", "

// ErrFieldCount reports a payload that does not split into len(Columns) values.
var ErrFieldCount = errors.New("wrong field count")

// DecodeError describes a payload that could not be turned into a Record.
type DecodeError struct {
	Payload string
	Field   string // empty for count errors
	Count   int    // number of tokens found
	Err     error
}

func (e *DecodeError) Error() string {
	if errors.Is(e.Err, ErrFieldCount) {
		return fmt.Sprintf("decode record %q: expected %d fields, got %d", e.Payload, len(Columns), e.Count)
	}
	return fmt.Sprintf("decode record %q: field %s: %v", e.Payload, e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Locate finds tag in line and returns the payload that follows it. The
// delimiter between tag and values (": " in logcat output) is skipped.
func Locate(line, tag string) (string, bool) {
	if tag == "" {
		return "", false
	}
	pos := strings.Index(line, tag)
	if pos < 0 {
		return "", false
	}
	rest := line[pos+len(tag):]
	return strings.TrimLeft(rest, ": \t"), true
}

// Decode parses a comma-space separated payload into a Record.
func Decode(payload string) (Record, error) {
	tokens := strings.Split(payload, FieldSeparator)
	if len(tokens) != len(Columns) {
		return Record{}, &DecodeError{Payload: payload, Count: len(tokens), Err: ErrFieldCount}
	}

	var values [5]float64
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			var numErr *strconv.NumError
			if errors.As(err, &numErr) {
				err = numErr.Err
			}
			return Record{}, &DecodeError{
				Payload: payload,
				Field:   Columns[i],
				Count:   len(tokens),
				Err:     fmt.Errorf("parse %q: %w", tok, err),
			}
		}
		values[i] = v
	}
	return recordFromValues(values), nil
}

// ParseLine strips trailing whitespace from line, and when it carries tag,
// decodes the payload. ok is false for lines without the tag.
func ParseLine(line, tag string) (rec Record, ok bool, err error) {
	payload, found := Locate(strings.TrimRight(line, " \t\r\n"), tag)
	if !found {
		return Record{}, false, nil
	}
	rec, err = Decode(payload)
	if err != nil {
		return Record{}, true, err
	}
	return rec, true, nil
}
