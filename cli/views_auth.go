package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/autolife-uz/autolife-go/auth"
	"github.com/autolife-uz/autolife-go/backend"
)

func (a *App) loginView(ctx context.Context) error {
	if a.manager.Phase() == auth.PhaseAuthenticated {
		a.printf("Already signed in as %s\n", a.manager.Session().User.Email)
		return nil
	}

	email, err := a.prompt("email: ")
	if err != nil {
		return err
	}
	password, err := a.prompt("password: ")
	if err != nil {
		return err
	}

	result, err := a.manager.Login(ctx, email, password)
	if err != nil {
		return nil // the manager already notified
	}
	if result == auth.LoginOTPRequired {
		return a.Navigate(ctx, RouteVerifyOTP)
	}
	return nil
}

func (a *App) signupView(ctx context.Context) error {
	var reg backend.Registration
	fields := []struct {
		label string
		dest  *string
	}{
		{"first name: ", &reg.FirstName},
		{"last name: ", &reg.LastName},
		{"email: ", &reg.Email},
		{"password: ", &reg.Password},
		{"confirm password: ", &reg.ConfirmPassword},
	}
	for _, field := range fields {
		value, err := a.prompt(field.label)
		if err != nil {
			return err
		}
		*field.dest = value
	}

	if err := a.manager.Register(ctx, reg); err != nil {
		return nil // the manager already notified
	}
	return a.Navigate(ctx, RouteVerifyOTP)
}

// verifyOTPView collects the six code digits one keypress at a time through
// the OTPInput model, mirroring the web form's auto-advance and
// backspace-to-previous behavior ("<" stands in for backspace).
func (a *App) verifyOTPView(ctx context.Context) error {
	if a.manager.Phase() != auth.PhaseAwaitingOTP {
		a.printf("%sNothing to verify, sign in first%s\n", Yellow, ResetColor)
		return a.Navigate(ctx, RouteLogin)
	}

	a.printf("Enter the 6-digit code sent to %s (\"<\" = backspace, \"resend\" after expiry)\n", a.manager.PendingEmail())
	var input auth.OTPInput
	focus := 0

	for {
		remaining := a.manager.OTPRemaining()
		if remaining > 0 {
			a.printf("code valid for %s | ", formatCountdown(remaining))
		} else {
			a.printf("%scode expired%s | ", Red, ResetColor)
		}

		line, err := a.prompt(fmt.Sprintf("digit %d: ", focus+1))
		if err != nil {
			return err
		}
		switch line {
		case "resend":
			if err := a.manager.ResendOTP(); err != nil {
				a.printf("%s%s%s\n", Yellow, err.Error(), ResetColor)
			}
			continue
		case "<":
			focus = input.Backspace(focus)
			continue
		case "":
			continue
		}

		for _, ch := range line {
			focus = input.SetDigit(focus, ch)
		}
		if !input.Filled() {
			continue
		}

		code, err := input.Code()
		if err != nil {
			continue
		}
		if err := a.manager.VerifyOTP(ctx, code); err != nil {
			input = auth.OTPInput{} // start over on rejection
			focus = 0
			continue
		}
		return nil
	}
}

func formatCountdown(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
