// Package cli is the interactive terminal client: a small view router over
// the auth manager, admin context, and backend client, with the route guard
// in front of protected views.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/autolife-uz/autolife-go/admin"
	"github.com/autolife-uz/autolife-go/auth"
	"github.com/autolife-uz/autolife-go/backend"
	"github.com/autolife-uz/autolife-go/guard"
)

// view is a registered location. Protected views sit behind the guard;
// permission-tagged views additionally consult the admin context.
type view struct {
	route      string
	title      string
	protected  bool
	permission string
	handler    func(ctx context.Context) error
}

// App wires the client core together and drives the navigation loop.
type App struct {
	manager  *auth.Manager
	adminCtx *admin.Context
	api      *backend.Client
	logger   zerolog.Logger

	in     *bufio.Reader
	out    io.Writer
	views  map[string]view
	routes []string
}

func New(manager *auth.Manager, adminCtx *admin.Context, api *backend.Client, in io.Reader, out io.Writer, logger zerolog.Logger) (*App, error) {
	if manager == nil {
		return nil, errors.New("[cli.New] auth manager is required")
	}
	if adminCtx == nil {
		return nil, errors.New("[cli.New] admin context is required")
	}
	if api == nil {
		return nil, errors.New("[cli.New] backend client is required")
	}

	a := &App{
		manager:  manager,
		adminCtx: adminCtx,
		api:      api,
		logger:   logger,
		in:       bufio.NewReader(in),
		out:      out,
		views:    make(map[string]view),
	}
	a.initViews()
	return a, nil
}

func (a *App) initViews() {
	a.registerView(view{route: RouteHome, title: "Home", handler: a.homeView})
	a.registerView(view{route: RouteLogin, title: "Sign in", handler: a.loginView})
	a.registerView(view{route: RouteRegister, title: "Register", handler: a.signupView})
	a.registerView(view{route: RouteVerifyOTP, title: "Verify OTP", handler: a.verifyOTPView})
	a.registerView(view{route: RouteServices, title: "Services", handler: a.servicesView})
	a.registerView(view{route: RouteBookings, title: "My bookings", protected: true, handler: a.bookingsView})
	a.registerView(view{route: RouteProfile, title: "Profile", protected: true, handler: a.profileView})
	a.registerView(view{route: RouteAdmin, title: "Admin", protected: true, permission: "orders.read", handler: a.adminView})
}

func (a *App) registerView(v view) {
	a.views[v.route] = v
	a.routes = append(a.routes, v.route)
}

// Navigate routes to a location, applying the guard to protected views. The
// guard's From is surfaced on the login view but never auto-consumed after
// sign-in, matching the shipped product behavior.
func (a *App) Navigate(ctx context.Context, location string) error {
	v, ok := a.views[location]
	if !ok {
		a.printf("%sNo such page: %s%s\n", Yellow, location, ResetColor)
		return nil
	}

	if v.protected {
		decision := guard.Check(a.manager.Session(), location)
		if !decision.Allowed {
			a.printf("%sSign in to continue to %s%s\n", Yellow, decision.From, ResetColor)
			return a.Navigate(ctx, decision.RedirectTo)
		}
	}
	if v.permission != "" && !a.adminCtx.HasPermission(v.permission) {
		a.printf("%sYou do not have access to %s%s\n", Red, v.title, ResetColor)
		return nil
	}

	a.printf("\n%s== %s ==%s\n", Blue, v.title, ResetColor)
	return v.handler(ctx)
}

// Run is the navigation loop. Commands are view routes plus logout/quit.
func (a *App) Run(ctx context.Context) error {
	a.listViews()
	if err := a.Navigate(ctx, RouteHome); err != nil {
		return err
	}
	for {
		input, err := a.prompt("\nwhere to? ")
		if err != nil {
			return nil // EOF ends the session
		}
		switch input {
		case "", "help":
			a.listViews()
		case "logout":
			a.manager.Logout()
		case "quit", "exit":
			return nil
		default:
			if !strings.HasPrefix(input, "/") {
				input = "/" + input
			}
			if err := a.Navigate(ctx, input); err != nil {
				a.logger.Warn().Err(err).Str("route", input).Msg("view failed")
				a.printf("%s%s%s\n", Red, err.Error(), ResetColor)
			}
		}
	}
}

func (a *App) listViews() {
	a.printf("%sViews:%s\n", Gray, ResetColor)
	routes := make([]string, len(a.routes))
	copy(routes, a.routes)
	sort.Strings(routes)
	for _, route := range routes {
		v := a.views[route]
		marker := " "
		if v.protected {
			marker = "*"
		}
		a.printf("  %s%s %-12s%s %s\n", Green, marker, route, ResetColor, v.title)
	}
	a.printf("%s  (* requires sign-in; also: logout, quit)%s\n", Gray, ResetColor)
}

func (a *App) prompt(label string) (string, error) {
	a.printf("%s", label)
	line, err := a.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
