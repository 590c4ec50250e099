package admin_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/autolife-uz/autolife-go/admin"
	"github.com/autolife-uz/autolife-go/session"
	"github.com/autolife-uz/autolife-go/storage"
)

// staticSource serves a fixed session, swappable mid-test.
type staticSource struct {
	sess *session.Session
}

func (s *staticSource) Session() *session.Session { return s.sess }

func sessionWithRole(role string) *session.Session {
	return &session.Session{
		Token: "t1",
		User:  session.User{ID: "1", FirstName: "Aziz", Email: "a@b.com", Role: role},
	}
}

func newContext(t *testing.T, sess *session.Session) (*admin.Context, *storage.MemoryStore) {
	t.Helper()
	kv := storage.NewMemoryStore()
	ctx, err := admin.NewContext(&staticSource{sess: sess}, kv)
	require.NoError(t, err)
	return ctx, kv
}

func TestNewContextValidatesDependencies(t *testing.T) {
	_, err := admin.NewContext(nil, storage.NewMemoryStore())
	require.Error(t, err)
	_, err = admin.NewContext(&staticSource{}, nil)
	require.Error(t, err)
}

func TestProfileRequiresSessionAndRole(t *testing.T) {
	ctx, _ := newContext(t, nil)
	require.Nil(t, ctx.Profile(), "anonymous users have no admin profile")

	ctx, _ = newContext(t, sessionWithRole(""))
	require.Nil(t, ctx.Profile(), "role-less users have no admin profile")

	ctx, _ = newContext(t, sessionWithRole("operator"))
	profile := ctx.Profile()
	require.NotNil(t, profile)
	require.Equal(t, admin.RoleOperator, profile.Role)
	require.Equal(t, "Aziz", profile.FirstName)
}

func TestPermissionsByRole(t *testing.T) {
	tests := []struct {
		role    string
		granted []string
		denied  []string
	}{
		{
			role:    "admin",
			granted: []string{"users.read", "orders.update", "settings.write", "anything.at.all"},
		},
		{
			role:    "manager",
			granted: []string{"users.read", "orders.read", "orders.update", "services.update", "staff.read"},
			denied:  []string{"users.write", "settings.read"},
		},
		{
			role:    "operator",
			granted: []string{"orders.read", "orders.update", "services.read"},
			denied:  []string{"users.read", "staff.read", "services.update"},
		},
		{
			role:   "technician",
			denied: []string{"orders.read", "users.read"},
		},
		{
			role:   "made-up-role",
			denied: []string{"orders.read"},
		},
	}

	for _, test := range tests {
		t.Run(test.role, func(t *testing.T) {
			ctx, _ := newContext(t, sessionWithRole(test.role))
			for _, tag := range test.granted {
				require.True(t, ctx.HasPermission(tag), "%s should hold %s", test.role, tag)
			}
			for _, tag := range test.denied {
				require.False(t, ctx.HasPermission(tag), "%s should not hold %s", test.role, tag)
			}
		})
	}
}

func TestRoleChecksAreInclusiveUpward(t *testing.T) {
	ctx, _ := newContext(t, sessionWithRole("admin"))
	require.True(t, ctx.IsAdmin())
	require.True(t, ctx.IsManager(), "admins count as managers")

	ctx, _ = newContext(t, sessionWithRole("manager"))
	require.False(t, ctx.IsAdmin())
	require.True(t, ctx.IsManager())

	ctx, _ = newContext(t, sessionWithRole("operator"))
	require.False(t, ctx.IsAdmin())
	require.False(t, ctx.IsManager())

	ctx, _ = newContext(t, nil)
	require.False(t, ctx.IsAdmin())
	require.False(t, ctx.IsManager())
}

func TestProfileTracksSessionChanges(t *testing.T) {
	source := &staticSource{}
	ctx, err := admin.NewContext(source, storage.NewMemoryStore())
	require.NoError(t, err)

	require.False(t, ctx.HasPermission("orders.read"))

	source.sess = sessionWithRole("operator")
	require.True(t, ctx.HasPermission("orders.read"), "checks re-derive from the live session")

	source.sess = nil
	require.False(t, ctx.HasPermission("orders.read"))
}

func TestDarkModePersistsAcrossRestarts(t *testing.T) {
	kv := storage.NewMemoryStore()

	ctx, err := admin.NewContext(&staticSource{}, kv)
	require.NoError(t, err)
	require.False(t, ctx.DarkMode())

	ctx.ToggleDarkMode()
	require.True(t, ctx.DarkMode())

	value, ok, err := kv.Get(storage.KeyDarkMode)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "true", value)

	// A fresh context over the same store reads the flag back.
	restarted, err := admin.NewContext(&staticSource{}, kv)
	require.NoError(t, err)
	require.True(t, restarted.DarkMode())
}

func TestSidebarStateIsSessionLocal(t *testing.T) {
	kv := storage.NewMemoryStore()

	ctx, err := admin.NewContext(&staticSource{}, kv)
	require.NoError(t, err)
	require.False(t, ctx.SidebarCollapsed())

	ctx.ToggleSidebar()
	require.True(t, ctx.SidebarCollapsed())

	restarted, err := admin.NewContext(&staticSource{}, kv)
	require.NoError(t, err)
	require.False(t, restarted.SidebarCollapsed(), "sidebar state does not survive a restart")
}
