package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestReader(input string) (*Reader, *bytes.Buffer) {
	var out bytes.Buffer
	return NewReader(strings.NewReader(input), &out), &out
}

func lines(ss ...string) string {
	return strings.Join(ss, "\n") + "\n"
}

// ============================================================================
// PositiveFloat
// ============================================================================

func TestPositiveFloat_RejectsInvalid(t *testing.T) {
	for _, bad := range []string{"", "abc", "0", "-1", "-0.5", "NaN", "Inf", "1e400"} {
		t.Run(bad, func(t *testing.T) {
			r, out := newTestReader(lines(bad, "2.5"))

			v, err := r.PositiveFloat("Enter radius: ")
			require.NoError(t, err)
			require.Equal(t, 2.5, v)
			require.Equal(t, 1, strings.Count(out.String(), MsgPositiveNumber))
			require.Equal(t, 2, strings.Count(out.String(), "Enter radius: "), "should re-prompt once")
		})
	}
}

func TestPositiveFloat_Accepts(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1", 1},
		{"  3.25  ", 3.25},
		{"1e-6", 1e-6},
		{"2.5E3", 2500},
		{"1000000", 1e6},
	}
	for _, tt := range tests {
		r, out := newTestReader(lines(tt.in))
		v, err := r.PositiveFloat("Enter side: ")
		require.NoError(t, err)
		require.Equal(t, tt.want, v)
		require.NotContains(t, out.String(), MsgPositiveNumber)
	}
}

func TestPositiveFloat_ManyRetries(t *testing.T) {
	r, out := newTestReader(lines("x", "0", "-3", "", "7"))
	v, err := r.PositiveFloat("Enter width: ")
	require.NoError(t, err)
	require.Equal(t, 7.0, v)
	require.Equal(t, 4, strings.Count(out.String(), MsgPositiveNumber))
}

// ============================================================================
// IntAtLeast
// ============================================================================

func TestIntAtLeast_RejectsThenAccepts(t *testing.T) {
	for _, bad := range []string{"0", "1", "2", "-5", "abc", "3.5"} {
		r, out := newTestReader(lines(bad, "3"))
		v, err := r.IntAtLeast("Enter number of sides: ", 3)
		require.NoError(t, err, bad)
		require.Equal(t, 3, v)
		require.Contains(t, out.String(), "Invalid value. Please enter an integer >= 3.")
	}
}

func TestIntAtLeast_Accepts(t *testing.T) {
	for in, want := range map[string]int{"3": 3, "4": 4, "1000": 1000} {
		r, out := newTestReader(lines(in))
		v, err := r.IntAtLeast("Enter number of sides: ", 3)
		require.NoError(t, err)
		require.Equal(t, want, v)
		require.Equal(t, "Enter number of sides: ", out.String())
	}
}

// ============================================================================
// MenuChoice
// ============================================================================

func TestMenuChoice_RejectsOutOfRange(t *testing.T) {
	for _, bad := range []string{"0", "11", "-1", "x"} {
		r, out := newTestReader(lines(bad, "5"))
		v, err := r.MenuChoice("Option: ", 1, 10)
		require.NoError(t, err)
		require.Equal(t, 5, v)
		require.Contains(t, out.String(), "Invalid option. Choose between 1 and 10.")
	}
}

func TestMenuChoice_BoundsInclusive(t *testing.T) {
	for in, want := range map[string]int{"1": 1, "10": 10} {
		r, out := newTestReader(lines(in))
		v, err := r.MenuChoice("Option: ", 1, 10)
		require.NoError(t, err)
		require.Equal(t, want, v)
		require.NotContains(t, out.String(), "Invalid option")
	}
}

// ============================================================================
// YesNo
// ============================================================================

func TestYesNo_Accepts(t *testing.T) {
	tests := map[string]bool{
		"yes":     true,
		"Yes":     true,
		"YES":     true,
		"  yes  ": true,
		"no":      false,
		"No":      false,
		"NO":      false,
	}
	for in, want := range tests {
		r, out := newTestReader(lines(in))
		v, err := r.YesNo("Continue? ")
		require.NoError(t, err)
		require.Equal(t, want, v, in)
		require.NotContains(t, out.String(), MsgYesNo)
	}
}

func TestYesNo_RejectsAbbreviations(t *testing.T) {
	r, out := newTestReader(lines("y", "n", "", "maybe", "no"))
	v, err := r.YesNo("Continue? ")
	require.NoError(t, err)
	require.False(t, v)
	require.Equal(t, 4, strings.Count(out.String(), MsgYesNo))
}

// ============================================================================
// End of input and read errors
// ============================================================================

func TestReader_EndOfInput(t *testing.T) {
	r, _ := newTestReader("")
	_, err := r.PositiveFloat("Enter radius: ")
	require.ErrorIs(t, err, ErrInputClosed)

	r, out := newTestReader(lines("abc"))
	_, err = r.MenuChoice("Option: ", 1, 10)
	require.ErrorIs(t, err, ErrInputClosed)
	require.Contains(t, out.String(), "Invalid option. Choose between 1 and 10.")
}

func TestReader_LastLineWithoutNewline(t *testing.T) {
	r, _ := newTestReader("yes")
	v, err := r.YesNo("Continue? ")
	require.NoError(t, err)
	require.True(t, v)
}

func TestReader_OversizedLineRejected(t *testing.T) {
	huge := strings.Repeat("9", 70000) + "x"
	r, out := newTestReader(lines(huge, "2.5"))

	v, err := r.PositiveFloat("Enter radius: ")
	require.NoError(t, err)
	require.Equal(t, 2.5, v)
	require.Equal(t, 1, strings.Count(out.String(), MsgPositiveNumber))
	require.Equal(t, 2, strings.Count(out.String(), "Enter radius: "))
}

func TestReader_OversizedLineAtEndOfInput(t *testing.T) {
	r, out := newTestReader(strings.Repeat("1", MaxLineLength+1))

	_, err := r.MenuChoice("Option: ", 1, 10)
	require.ErrorIs(t, err, ErrInputClosed)
	require.Equal(t, 1, strings.Count(out.String(), "Invalid option. Choose between 1 and 10."))
}

func TestReader_LineAtLimitAccepted(t *testing.T) {
	padded := strings.Repeat(" ", MaxLineLength-2) + "no"
	r, _ := newTestReader(lines(padded))

	v, err := r.YesNo("Continue? ")
	require.NoError(t, err)
	require.False(t, v)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

func TestReader_ReadErrorPropagates(t *testing.T) {
	var out bytes.Buffer
	r := NewReader(failingReader{}, &out)

	_, err := r.IntAtLeast("Enter number of sides: ", 3)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInputClosed)
	require.Contains(t, err.Error(), "device gone")
}

func TestReader_DiagnosticStyle(t *testing.T) {
	var out bytes.Buffer
	r := NewReader(strings.NewReader(lines("0", "1")), &out,
		WithDiagnosticStyle(func(s string) string { return "!" + s }))

	_, err := r.PositiveFloat("Enter side: ")
	require.NoError(t, err)
	require.Contains(t, out.String(), "!"+MsgPositiveNumber+"\n")
}
