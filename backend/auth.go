package backend

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/autolife-uz/autolife-go/internal/utils"
	"github.com/autolife-uz/autolife-go/session"
)

// LoginOutcome is the tagged result of a login attempt. Exactly one branch is
// set: either the backend issued a full session, or it wants OTP verification
// first. The OTP branch is a normal flow, not an error.
type LoginOutcome struct {
	Session     *session.Session
	RequiresOTP bool
}

// Registration is the payload for POST /auth/register.
type Registration struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ProfileUpdate is a partial user update; zero-valued fields are omitted.
type ProfileUpdate struct {
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
}

type loginResponse struct {
	Token       string       `json:"token"`
	User        session.User `json:"user"`
	RequiresOTP bool         `json:"requiresOTP"`
}

// Login exchanges credentials for a session, or for an OTP challenge when the
// account is OTP-gated.
func (c *Client) Login(ctx context.Context, email, password string) (LoginOutcome, error) {
	body := map[string]string{"email": email, "password": password}
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "auth_login", nil, body, &resp); err != nil {
		c.metrics.IncrementAuthFailures()
		return LoginOutcome{}, err
	}

	if resp.RequiresOTP {
		c.metrics.IncrementOTPChallenges()
		return LoginOutcome{RequiresOTP: true}, nil
	}
	if resp.Token == "" || resp.User.ID == "" {
		c.metrics.IncrementAuthFailures()
		return LoginOutcome{}, errors.New("[Client.Login] backend returned neither a session nor an OTP challenge")
	}
	c.metrics.IncrementAuthSuccesses()
	return LoginOutcome{Session: utils.Ptr(session.Session{Token: resp.Token, User: resp.User})}, nil
}

// Register creates an account. Registration always requires OTP verification
// before a session exists, so no session is returned here.
func (c *Client) Register(ctx context.Context, reg Registration) error {
	if err := c.do(ctx, http.MethodPost, "/auth/register", "auth_register", nil, reg, nil); err != nil {
		return err
	}
	c.metrics.IncrementOTPChallenges()
	return nil
}

// VerifyOTP exchanges an emailed one-time code for a full session.
func (c *Client) VerifyOTP(ctx context.Context, email, code string) (session.Session, error) {
	body := map[string]string{"email": email, "otp": code}
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/verify-otp", "auth_verify_otp", nil, body, &resp); err != nil {
		c.metrics.IncrementAuthFailures()
		return session.Session{}, err
	}
	if resp.Token == "" || resp.User.ID == "" {
		c.metrics.IncrementAuthFailures()
		return session.Session{}, errors.New("[Client.VerifyOTP] backend response missing token or user")
	}
	c.metrics.IncrementAuthSuccesses()
	return session.Session{Token: resp.Token, User: resp.User}, nil
}

// CurrentUser fetches the profile for the authenticated session.
func (c *Client) CurrentUser(ctx context.Context) (session.User, error) {
	var user session.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", "auth_me", nil, nil, &user); err != nil {
		return session.User{}, err
	}
	return user, nil
}

// UpdateProfile mutates the authenticated user's profile and returns the
// updated user. It is not part of the session lifecycle proper.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (session.User, error) {
	var user session.User
	if err := c.do(ctx, http.MethodPut, "/auth/profile", "auth_profile", nil, update, &user); err != nil {
		return session.User{}, err
	}
	return user, nil
}
