package auth

import (
	"strings"
	"unicode"
)

// CodeLength is the number of digits in an OTP code.
const CodeLength = 6

// OTPInput models the six single-character code fields of the verification
// view: one digit per cell, auto-advance on input, backspace moves to the
// previous cell when the current one is empty.
type OTPInput struct {
	digits [CodeLength]rune
}

// SetDigit places ch into the cell at index and returns the cell that should
// receive focus next. Non-digit input leaves the cell untouched.
func (in *OTPInput) SetDigit(index int, ch rune) int {
	if index < 0 || index >= CodeLength {
		return clampIndex(index)
	}
	if !unicode.IsDigit(ch) {
		return index
	}
	in.digits[index] = ch
	if index < CodeLength-1 {
		return index + 1
	}
	return index
}

// Backspace handles a backspace in the cell at index: an empty cell moves
// focus back, a filled cell is cleared in place. Returns the focused cell.
func (in *OTPInput) Backspace(index int) int {
	index = clampIndex(index)
	if in.digits[index] == 0 && index > 0 {
		return index - 1
	}
	in.digits[index] = 0
	return index
}

// Filled reports whether every cell holds a digit.
func (in *OTPInput) Filled() bool {
	for _, d := range in.digits {
		if d == 0 {
			return false
		}
	}
	return true
}

// Code returns the assembled 6-digit code, or ErrIncompleteCode if any cell
// is empty. Incomplete codes never reach the backend.
func (in *OTPInput) Code() (string, error) {
	if !in.Filled() {
		return "", ErrIncompleteCode
	}
	var b strings.Builder
	for _, d := range in.digits {
		b.WriteRune(d)
	}
	return b.String(), nil
}

func clampIndex(index int) int {
	if index < 0 {
		return 0
	}
	if index >= CodeLength {
		return CodeLength - 1
	}
	return index
}
