package cli

import (
	"context"
	"strings"

	"github.com/autolife-uz/autolife-go/backend"
)

func pageQueryDefaults() backend.PageQuery {
	return backend.PageQuery{Page: 1, Limit: 10}
}

// adminView is the terminal stand-in for the admin dashboard. Which sections
// render is driven entirely by the derived permission set.
func (a *App) adminView(ctx context.Context) error {
	profile := a.adminCtx.Profile()
	if profile == nil {
		a.printf("%sYour account has no admin role%s\n", Red, ResetColor)
		return nil
	}

	theme := "light"
	if a.adminCtx.DarkMode() {
		theme = "dark"
	}
	a.printf("  signed in as %s (%s), theme %s\n", profile.FullName(), profile.Role, theme)
	a.printf("  permissions: %s\n", strings.Join(profile.Permissions.Tags(), ", "))

	if a.adminCtx.IsManager() {
		stats, err := a.api.Stats(ctx)
		if err != nil {
			return err
		}
		a.printf("  revenue %.0f | users %d | orders %d | active services %d\n",
			stats.TotalRevenue, stats.TotalUsers, stats.TotalOrders, stats.ActiveServices)
	}

	if a.adminCtx.HasPermission("orders.read") {
		orders, total, err := a.api.AdminOrders(ctx, pageQueryDefaults())
		if err != nil {
			return err
		}
		a.printf("  orders (%d total):\n", total)
		for _, order := range orders {
			a.printf("    %s  %-25s %-12s %8.0f  %s\n",
				order.ID, order.ServiceName, order.Status, order.Amount, order.CustomerEmail)
		}
	}

	if a.adminCtx.HasPermission("users.read") {
		users, total, err := a.api.AdminUsers(ctx, pageQueryDefaults())
		if err != nil {
			return err
		}
		a.printf("  users (%d total):\n", total)
		for _, user := range users {
			a.printf("    %s  %-25s %-10s %s\n", user.ID, user.Email, user.Status, user.Role)
		}
	}

	answer, err := a.prompt("toggle dark mode? (y/N): ")
	if err != nil {
		return err
	}
	if answer == "y" || answer == "Y" {
		a.adminCtx.ToggleDarkMode()
	}
	return nil
}
