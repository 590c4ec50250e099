package admin

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/autolife-uz/autolife-go/session"
	"github.com/autolife-uz/autolife-go/storage"
)

// Profile is the admin-scoped projection of a user. It is derived on read
// from the current session, never stored independently.
type Profile struct {
	session.User
	Role        Role
	Status      string
	LastLogin   time.Time
	CreatedAt   time.Time
	Permissions PermissionSet
}

// SessionSource yields the current session; nil means anonymous. The auth
// manager satisfies this.
type SessionSource interface {
	Session() *session.Session
}

// Context answers permission queries for the admin surface and holds its UI
// preference state. Dark mode is persisted; the sidebar state is
// session-local and resets on restart.
type Context struct {
	source  SessionSource
	kv      storage.Store
	logger  zerolog.Logger
	nowTime func() time.Time

	mu               sync.RWMutex
	darkMode         bool
	sidebarCollapsed bool
}

// ContextOption modifies a Context during construction.
type ContextOption func(*Context)

// WithLogger sets the context's logger.
func WithLogger(logger zerolog.Logger) ContextOption {
	return func(c *Context) {
		c.logger = logger
	}
}

// WithNowTime sets the now time function (primarily for testing).
func WithNowTime(nowFunc func() time.Time) ContextOption {
	return func(c *Context) {
		c.nowTime = nowFunc
	}
}

// NewContext builds the admin context over the current-session source and
// the durable preference store. The persisted dark-mode flag is read back
// once here.
func NewContext(source SessionSource, kv storage.Store, options ...ContextOption) (*Context, error) {
	if source == nil {
		return nil, errors.New("[admin.NewContext] session source is required")
	}
	if kv == nil {
		return nil, errors.New("[admin.NewContext] storage is required")
	}

	c := &Context{
		source:  source,
		kv:      kv,
		logger:  zerolog.Nop(),
		nowTime: time.Now,
	}
	for _, opt := range options {
		opt(c)
	}

	if raw, ok, err := kv.Get(storage.KeyDarkMode); err == nil && ok {
		// Best effort: an unreadable flag falls back to light mode.
		_ = json.Unmarshal([]byte(raw), &c.darkMode)
	}
	return c, nil
}

// Profile derives the admin projection from the current session user. It
// returns nil when anonymous or when the user carries no role: such a user
// has no admin surface at all.
func (c *Context) Profile() *Profile {
	sess := c.source.Session()
	if !sess.Valid() || sess.User.Role == "" {
		return nil
	}
	now := c.nowTime()
	role := Role(sess.User.Role)
	return &Profile{
		User:        sess.User,
		Role:        role,
		Status:      "active",
		LastLogin:   now,
		CreatedAt:   now,
		Permissions: Permissions(role),
	}
}

// HasPermission reports whether the current user holds the permission tag.
// Without an admin profile every check fails.
func (c *Context) HasPermission(tag string) bool {
	profile := c.Profile()
	if profile == nil {
		return false
	}
	return profile.Permissions.Has(tag)
}

// IsAdmin reports whether the current user has the admin role.
func (c *Context) IsAdmin() bool {
	profile := c.Profile()
	return profile != nil && profile.Role == RoleAdmin
}

// IsManager reports whether the current user is at least a manager. The role
// hierarchy is inclusive upward: admins are managers too.
func (c *Context) IsManager() bool {
	profile := c.Profile()
	if profile == nil {
		return false
	}
	return profile.Role == RoleManager || profile.Role == RoleAdmin
}

// DarkMode returns the persisted dark-mode preference.
func (c *Context) DarkMode() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.darkMode
}

// ToggleDarkMode flips and persists the dark-mode preference.
func (c *Context) ToggleDarkMode() {
	c.mu.Lock()
	c.darkMode = !c.darkMode
	value, _ := json.Marshal(c.darkMode)
	c.mu.Unlock()

	if err := c.kv.Set(storage.KeyDarkMode, string(value)); err != nil {
		c.logger.Warn().Err(err).Msg("failed to persist dark mode preference")
	}
}

// SidebarCollapsed returns the session-local sidebar state.
func (c *Context) SidebarCollapsed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sidebarCollapsed
}

// ToggleSidebar flips the sidebar state. Deliberately not persisted.
func (c *Context) ToggleSidebar() {
	c.mu.Lock()
	c.sidebarCollapsed = !c.sidebarCollapsed
	c.mu.Unlock()
}
