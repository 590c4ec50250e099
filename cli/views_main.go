package cli

import (
	"context"

	"github.com/autolife-uz/autolife-go/auth"
	"github.com/autolife-uz/autolife-go/backend"
)

func (a *App) homeView(ctx context.Context) error {
	switch a.manager.Phase() {
	case auth.PhaseAuthenticated:
		user := a.manager.Session().User
		a.printf("Welcome back, %s\n", user.FullName())
	case auth.PhaseAwaitingOTP:
		a.printf("OTP verification pending for %s\n", a.manager.PendingEmail())
	default:
		a.printf("Browse services, or sign in to book them\n")
	}
	return nil
}

func (a *App) servicesView(ctx context.Context) error {
	category, err := a.prompt("category (technical/parking/gas_station, empty for all): ")
	if err != nil {
		return err
	}

	services, err := a.api.Services(ctx, backend.ServiceFilter{Category: backend.ServiceCategory(category)})
	if err != nil {
		return err
	}
	if len(services) == 0 {
		a.printf("No services found\n")
		return nil
	}
	for _, service := range services {
		availability := Green + "available" + ResetColor
		if !service.IsAvailable {
			availability = Gray + "unavailable" + ResetColor
		}
		a.printf("  %-30s %-12s %8.0f  %s  (%s, %.1f★)\n",
			service.Name, service.Category, service.Price, availability,
			service.Provider.Name, service.Rating)
	}
	return nil
}

func (a *App) bookingsView(ctx context.Context) error {
	bookings, err := a.api.MyBookings(ctx)
	if err != nil {
		return err
	}
	if len(bookings) == 0 {
		a.printf("No bookings yet\n")
		return nil
	}
	for _, booking := range bookings {
		a.printf("  %s  %-30s %-10s %8.0f  %s\n",
			booking.ID, booking.Service.Name, booking.Status,
			booking.TotalPrice, booking.BookingDate.Format("2006-01-02 15:04"))
	}
	return nil
}

func (a *App) profileView(ctx context.Context) error {
	user, err := a.api.CurrentUser(ctx)
	if err != nil {
		return err
	}
	a.printf("  name:  %s\n  email: %s\n", user.FullName(), user.Email)
	if user.PhoneNumber != "" {
		a.printf("  phone: %s\n", user.PhoneNumber)
	}

	phone, err := a.prompt("new phone number (empty to keep): ")
	if err != nil {
		return err
	}
	if phone == "" {
		return nil
	}
	if _, err := a.api.UpdateProfile(ctx, backend.ProfileUpdate{PhoneNumber: phone}); err != nil {
		return err
	}
	a.printf("%sProfile updated%s\n", Green, ResetColor)
	return nil
}
