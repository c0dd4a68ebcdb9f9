// Package prompt implements validated line reads for an interactive terminal
// dialogue.
//
// Every read re-prompts until the input is acceptable, printing one
// diagnostic line per rejected attempt. Malformed and out-of-range input are
// treated the same way and never reach the caller. The only errors returned
// are ErrInputClosed, when the input stream ends, and failures of the
// underlying reader.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/zjrosen/areacalc/internal/log"
)

// ErrInputClosed is returned when the input stream ends before a valid
// answer was read.
var ErrInputClosed = errors.New("input closed")

// errLineTooLong marks a line longer than MaxLineLength. It counts as a
// rejected attempt and never reaches the caller.
var errLineTooLong = errors.New("line too long")

// MaxLineLength is the longest answer accepted. Longer lines are drained
// and rejected with the read's diagnostic.
const MaxLineLength = 4096

// Diagnostic lines printed after a rejected attempt.
const (
	MsgPositiveNumber = "Invalid value. Please enter a positive number."
	MsgYesNo          = "Please answer with 'yes' or 'no'."
)

// MsgIntAtLeast returns the diagnostic for integer-with-minimum reads.
func MsgIntAtLeast(minimum int) string {
	return fmt.Sprintf("Invalid value. Please enter an integer >= %d.", minimum)
}

// MsgMenuChoice returns the diagnostic for menu reads.
func MsgMenuChoice(minimum, maximum int) string {
	return fmt.Sprintf("Invalid option. Choose between %d and %d.", minimum, maximum)
}

// Option configures a Reader.
type Option func(*Reader)

// WithDiagnosticStyle renders diagnostic lines through fn before printing.
func WithDiagnosticStyle(fn func(string) string) Option {
	return func(r *Reader) {
		if fn != nil {
			r.diagnostic = fn
		}
	}
}

// Reader reads validated answers line by line.
type Reader struct {
	in         *bufio.Reader
	out        io.Writer
	diagnostic func(string) string
}

// NewReader creates a Reader that prompts on out and reads lines from in.
func NewReader(in io.Reader, out io.Writer, opts ...Option) *Reader {
	r := &Reader{
		in:         bufio.NewReader(in),
		out:        out,
		diagnostic: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Diagnose prints a single diagnostic line.
func (r *Reader) Diagnose(msg string) {
	_, _ = fmt.Fprintln(r.out, r.diagnostic(msg))
}

// PositiveFloat reads a finite decimal strictly greater than zero.
func (r *Reader) PositiveFloat(prompt string) (float64, error) {
	return readUntil(r, prompt, MsgPositiveNumber, parsePositiveFloat)
}

// IntAtLeast reads an integer no smaller than minimum.
func (r *Reader) IntAtLeast(prompt string, minimum int) (int, error) {
	return readUntil(r, prompt, MsgIntAtLeast(minimum), func(s string) (int, bool) {
		v, err := strconv.Atoi(s)
		return v, err == nil && v >= minimum
	})
}

// MenuChoice reads an integer within minimum..maximum inclusive.
func (r *Reader) MenuChoice(prompt string, minimum, maximum int) (int, error) {
	return readUntil(r, prompt, MsgMenuChoice(minimum, maximum), func(s string) (int, bool) {
		v, err := strconv.Atoi(s)
		return v, err == nil && v >= minimum && v <= maximum
	})
}

// YesNo reads "yes" or "no", case-insensitive. Abbreviations are rejected.
// Returns true for "yes".
func (r *Reader) YesNo(prompt string) (bool, error) {
	return readUntil(r, prompt, MsgYesNo, func(s string) (bool, bool) {
		switch strings.ToLower(s) {
		case "yes":
			return true, true
		case "no":
			return false, true
		default:
			return false, false
		}
	})
}

func parsePositiveFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, v > 0
}

// readUntil loops until parse accepts a trimmed line. The loop ends only on
// an accepted value, end of input or a read error.
func readUntil[T any](r *Reader, prompt, diagnostic string, parse func(string) (T, bool)) (T, error) {
	var zero T
	for {
		line, err := r.readLine(prompt)
		if errors.Is(err, errLineTooLong) {
			log.Debug(log.CatInput, "rejected oversized input", "prompt", strings.TrimSpace(prompt), "limit", MaxLineLength)
			r.Diagnose(diagnostic)
			continue
		}
		if err != nil {
			return zero, err
		}
		if v, ok := parse(line); ok {
			return v, nil
		}
		log.Debug(log.CatInput, "rejected input", "prompt", strings.TrimSpace(prompt), "input", line)
		r.Diagnose(diagnostic)
	}
}

// readLine returns the next trimmed line. A final line without a newline is
// still returned; ErrInputClosed follows on the next call.
func (r *Reader) readLine(prompt string) (string, error) {
	_, _ = fmt.Fprint(r.out, prompt)

	var (
		buf      []byte
		read     bool
		overflow bool
	)
	for {
		chunk, isPrefix, err := r.in.ReadLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return "", fmt.Errorf("reading input: %w", err)
			}
			if !read {
				return "", ErrInputClosed
			}
			break
		}
		read = true
		if !overflow && len(buf)+len(chunk) <= MaxLineLength {
			buf = append(buf, chunk...)
		} else {
			overflow = true
			buf = nil
		}
		if !isPrefix {
			break
		}
	}
	if overflow {
		return "", errLineTooLong
	}
	return strings.TrimSpace(string(buf)), nil
}
