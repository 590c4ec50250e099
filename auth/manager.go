// Package auth owns the client's authentication state machine: anonymous →
// awaiting OTP → authenticated. It is the only writer of the persisted
// session; every other component reads its published state.
package auth

import (
	"context"
	"sync"
	"time"
	"unicode"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/autolife-uz/autolife-go/backend"
	"github.com/autolife-uz/autolife-go/session"
)

// Phase is the coarse authentication state.
type Phase int

const (
	PhaseAnonymous Phase = iota
	PhaseAwaitingOTP
	PhaseAuthenticated
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingOTP:
		return "awaiting_otp"
	case PhaseAuthenticated:
		return "authenticated"
	}
	return "anonymous"
}

// LoginResult tags the outcome of a successful Login call.
type LoginResult int

const (
	// LoginAuthenticated means a full session was issued and persisted.
	LoginAuthenticated LoginResult = iota
	// LoginOTPRequired means the backend wants OTP verification first.
	// This is a normal branch: the caller routes to the verification view.
	LoginOTPRequired
)

// AuthAPI is the slice of the backend client the manager drives.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (backend.LoginOutcome, error)
	Register(ctx context.Context, reg backend.Registration) error
	VerifyOTP(ctx context.Context, email, code string) (session.Session, error)
}

// SessionStore is the durable persistence the manager synchronizes with.
type SessionStore interface {
	Load() (*session.Session, error)
	Save(sess session.Session) error
	Clear() error
}

// Manager orchestrates login, registration, OTP verification and logout. All
// published state is mutex-guarded; a token is never observable without its
// user. Only one login/register/verify call may be in flight at a time;
// re-entrant calls fail fast with ErrOperationInFlight instead of racing.
type Manager struct {
	api      AuthAPI
	store    SessionStore
	notifier Notifier
	logger   zerolog.Logger
	nowTime  func() time.Time

	mu           sync.RWMutex
	phase        Phase
	sess         *session.Session
	pendingEmail string
	countdown    *Countdown
	loading      bool
}

// ManagerOption modifies a Manager during construction.
type ManagerOption func(*Manager)

// WithNotifier routes user-visible notifications to the given Notifier.
func WithNotifier(n Notifier) ManagerOption {
	return func(m *Manager) {
		m.notifier = n
	}
}

// WithLogger sets the manager's logger.
func WithLogger(logger zerolog.Logger) ManagerOption {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithNowTime sets the now time function (primarily for testing).
func WithNowTime(nowFunc func() time.Time) ManagerOption {
	return func(m *Manager) {
		m.nowTime = nowFunc
	}
}

// NewManager builds a Manager and performs the boot transition: the durable
// store is read once, and a persisted session resumes as Authenticated.
func NewManager(api AuthAPI, store SessionStore, options ...ManagerOption) (*Manager, error) {
	if api == nil {
		return nil, errors.New("[NewManager] auth API is required")
	}
	if store == nil {
		return nil, errors.New("[NewManager] session store is required")
	}

	m := &Manager{
		api:     api,
		store:   store,
		logger:  zerolog.Nop(),
		nowTime: time.Now,
		phase:   PhaseAnonymous,
	}
	for _, opt := range options {
		opt(m)
	}
	if m.notifier == nil {
		m.notifier = LogNotifier{Logger: m.logger}
	}

	sess, err := store.Load()
	if err != nil {
		return nil, errors.Wrap(err, "[NewManager] load persisted session")
	}
	if sess.Valid() {
		m.phase = PhaseAuthenticated
		m.sess = sess
		m.logger.Debug().Str("user", sess.User.Email).Msg("resumed persisted session")
	}
	return m, nil
}

// Phase returns the current authentication phase.
func (m *Manager) Phase() Phase {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.phase
}

// Session returns the current session, or nil when not authenticated.
func (m *Manager) Session() *session.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.sess == nil {
		return nil
	}
	copied := *m.sess
	return &copied
}

// Token returns the current bearer token, or "". It satisfies
// backend.TokenSource so the API client reads credentials from here.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.sess == nil {
		return ""
	}
	return m.sess.Token
}

// PendingEmail returns the address awaiting OTP confirmation, or "".
func (m *Manager) PendingEmail() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pendingEmail
}

// Loading reports whether a login/register/verify request is outstanding.
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// OTPRemaining returns the time left on the OTP countdown, or zero when no
// verification is pending.
func (m *Manager) OTPRemaining() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.countdown == nil {
		return 0
	}
	return m.countdown.Remaining()
}

// Login submits credentials. On the OTP branch the manager moves to
// AwaitingOTP and the caller must route to the verification view.
func (m *Manager) Login(ctx context.Context, email, password string) (LoginResult, error) {
	if err := m.begin(); err != nil {
		return 0, err
	}
	defer m.end()

	outcome, err := m.api.Login(ctx, email, password)
	if err != nil {
		m.notifier.Notify(LevelError, "Sign-in failed: "+failureMessage(err))
		return 0, errors.Wrap(err, "[Manager.Login] backend login")
	}

	if outcome.RequiresOTP {
		m.enterAwaitingOTP(email)
		m.notifier.Notify(LevelSuccess, "An OTP code has been sent to your email")
		return LoginOTPRequired, nil
	}

	if err := m.installSession(*outcome.Session); err != nil {
		m.notifier.Notify(LevelError, "Sign-in failed: could not save your session")
		return 0, errors.Wrap(err, "[Manager.Login] persist session")
	}
	m.notifier.Notify(LevelSuccess, "Signed in")
	return LoginAuthenticated, nil
}

// Register creates an account. Registration is always OTP-gated, so success
// moves to AwaitingOTP with the registration email.
func (m *Manager) Register(ctx context.Context, reg backend.Registration) error {
	if err := validateRegistration(reg); err != nil {
		m.notifier.Notify(LevelError, failureMessage(err))
		return err
	}
	if err := m.begin(); err != nil {
		return err
	}
	defer m.end()

	if err := m.api.Register(ctx, reg); err != nil {
		m.notifier.Notify(LevelError, "Registration failed: "+failureMessage(err))
		return errors.Wrap(err, "[Manager.Register] backend register")
	}

	m.enterAwaitingOTP(reg.Email)
	m.notifier.Notify(LevelSuccess, "Registration succeeded. Check your email for the OTP code")
	return nil
}

// VerifyOTP submits the emailed code. Expired or incomplete codes are
// rejected locally and never reach the backend. Only this transition can
// produce an authenticated state from AwaitingOTP.
func (m *Manager) VerifyOTP(ctx context.Context, code string) error {
	m.mu.RLock()
	phase := m.phase
	email := m.pendingEmail
	expired := m.countdown != nil && m.countdown.Expired()
	m.mu.RUnlock()

	if phase != PhaseAwaitingOTP {
		return ErrNotAwaitingOTP
	}
	if expired {
		m.notifier.Notify(LevelError, "The OTP code has expired. Request a new one")
		return ErrCodeExpired
	}
	if !validCode(code) {
		m.notifier.Notify(LevelError, "Enter the full 6-digit code")
		return ErrIncompleteCode
	}

	if err := m.begin(); err != nil {
		return err
	}
	defer m.end()

	sess, err := m.api.VerifyOTP(ctx, email, code)
	if err != nil {
		m.notifier.Notify(LevelError, "OTP verification failed: "+failureMessage(err))
		return errors.Wrap(err, "[Manager.VerifyOTP] backend verify")
	}

	if err := m.installSession(sess); err != nil {
		m.notifier.Notify(LevelError, "OTP verified but your session could not be saved")
		return errors.Wrap(err, "[Manager.VerifyOTP] persist session")
	}
	m.notifier.Notify(LevelSuccess, "OTP verified, you are signed in")
	return nil
}

// ResendOTP restarts the countdown once the current code has expired. The
// backend re-sends codes on its own schedule; no endpoint exists for an
// explicit resend, so this is a local reset exactly like the web client's.
func (m *Manager) ResendOTP() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phase != PhaseAwaitingOTP || m.countdown == nil {
		return ErrNotAwaitingOTP
	}
	if !m.countdown.Expired() {
		return ErrResendNotAvailable
	}
	m.countdown.Reset()
	m.notifier.Notify(LevelSuccess, "The OTP code has been re-sent")
	return nil
}

// Logout drops the session locally. The backend holds no client-visible
// session state, so there is no call to make.
func (m *Manager) Logout() {
	m.mu.Lock()
	if err := m.store.Clear(); err != nil {
		m.logger.Warn().Err(err).Msg("failed to clear persisted session")
	}
	m.phase = PhaseAnonymous
	m.sess = nil
	m.pendingEmail = ""
	m.countdown = nil
	m.mu.Unlock()

	m.notifier.Notify(LevelSuccess, "Signed out")
}

func (m *Manager) begin() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loading {
		return ErrOperationInFlight
	}
	m.loading = true
	return nil
}

func (m *Manager) end() {
	m.mu.Lock()
	m.loading = false
	m.mu.Unlock()
}

func (m *Manager) enterAwaitingOTP(email string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.phase = PhaseAwaitingOTP
	m.pendingEmail = email
	m.countdown = NewCountdown(m.nowTime)
	m.logger.Debug().Str("email", email).Msg("awaiting OTP verification")
}

// installSession persists first, publishes second: a session that could not
// be written durably is never observable in memory either.
func (m *Manager) installSession(sess session.Session) error {
	if err := m.store.Save(sess); err != nil {
		return err
	}
	m.mu.Lock()
	m.phase = PhaseAuthenticated
	m.sess = &sess
	m.pendingEmail = ""
	m.countdown = nil
	m.mu.Unlock()
	m.logger.Debug().Str("user", sess.User.Email).Msg("session installed")
	return nil
}

func validateRegistration(reg backend.Registration) error {
	if reg.FirstName == "" || reg.LastName == "" || reg.Email == "" || reg.Password == "" {
		return ErrMissingFields
	}
	if reg.Password != reg.ConfirmPassword {
		return ErrPasswordMismatch
	}
	return nil
}

func validCode(code string) bool {
	if len(code) != CodeLength {
		return false
	}
	for _, ch := range code {
		if !unicode.IsDigit(ch) {
			return false
		}
	}
	return true
}

// failureMessage extracts the user-facing text from an error, preferring the
// backend's own message over Go error chains.
func failureMessage(err error) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
