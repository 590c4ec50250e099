package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/autolife-uz/autolife-go/auth"
)

func TestOTPInputAutoAdvances(t *testing.T) {
	var in auth.OTPInput

	focus := 0
	for i, ch := range "123456" {
		focus = in.SetDigit(focus, ch)
		if i < auth.CodeLength-1 {
			require.Equal(t, i+1, focus)
		}
	}
	require.Equal(t, auth.CodeLength-1, focus, "focus stays on the last cell")
	require.True(t, in.Filled())

	code, err := in.Code()
	require.NoError(t, err)
	require.Equal(t, "123456", code)
}

func TestOTPInputRejectsNonDigits(t *testing.T) {
	var in auth.OTPInput

	require.Equal(t, 0, in.SetDigit(0, 'a'), "non-digits do not advance focus")
	require.Equal(t, 0, in.SetDigit(0, ' '))
	require.False(t, in.Filled())
}

func TestOTPInputBackspace(t *testing.T) {
	var in auth.OTPInput
	in.SetDigit(0, '1')
	in.SetDigit(1, '2')

	// A filled cell clears in place.
	require.Equal(t, 1, in.Backspace(1))
	// Now the empty cell moves focus back.
	require.Equal(t, 0, in.Backspace(1))
	// The first cell never moves back past zero.
	in.Backspace(0)
	require.Equal(t, 0, in.Backspace(0))
	require.False(t, in.Filled())
}

func TestOTPInputIncompleteCode(t *testing.T) {
	var in auth.OTPInput
	in.SetDigit(0, '1')

	_, err := in.Code()
	require.ErrorIs(t, err, auth.ErrIncompleteCode)
}

func TestOTPInputClampsFocus(t *testing.T) {
	var in auth.OTPInput
	require.Equal(t, 0, in.SetDigit(-3, '1'))
	require.Equal(t, auth.CodeLength-1, in.SetDigit(99, '1'))
}

func TestCountdownExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	countdown := auth.NewCountdown(clock.Now)

	require.Equal(t, auth.OTPValidity, countdown.Remaining())
	require.False(t, countdown.Expired())

	clock.Advance(auth.OTPValidity - time.Second)
	require.Equal(t, time.Second, countdown.Remaining())
	require.False(t, countdown.Expired())

	clock.Advance(2 * time.Second)
	require.Zero(t, countdown.Remaining(), "remaining is floored at zero")
	require.True(t, countdown.Expired())

	countdown.Reset()
	require.Equal(t, auth.OTPValidity, countdown.Remaining())
	require.False(t, countdown.Expired())
}
