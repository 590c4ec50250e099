package backend

import (
	"context"
	"net/http"
	"time"
)

// BookingStatus tracks a booking through its lifecycle.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingApproved  BookingStatus = "approved"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a user's reservation of a service.
type Booking struct {
	ID          string        `json:"id"`
	ServiceID   string        `json:"serviceId"`
	Service     Service       `json:"service"`
	UserID      string        `json:"userId"`
	BookingDate time.Time     `json:"bookingDate"`
	Status      BookingStatus `json:"status"`
	TotalPrice  float64       `json:"totalPrice"`
	Notes       string        `json:"notes,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// BookingRequest creates a new booking.
type BookingRequest struct {
	ServiceID   string    `json:"serviceId"`
	BookingDate time.Time `json:"bookingDate"`
	Notes       string    `json:"notes,omitempty"`
}

// CreateBooking reserves a service slot for the authenticated user.
func (c *Client) CreateBooking(ctx context.Context, req BookingRequest) (Booking, error) {
	var booking Booking
	if err := c.do(ctx, http.MethodPost, "/bookings", "bookings_create", nil, req, &booking); err != nil {
		return Booking{}, err
	}
	return booking, nil
}

// MyBookings lists the authenticated user's bookings.
func (c *Client) MyBookings(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	if err := c.do(ctx, http.MethodGet, "/bookings/my", "bookings_my", nil, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// BookingByID fetches a single booking.
func (c *Client) BookingByID(ctx context.Context, id string) (Booking, error) {
	var booking Booking
	if err := c.do(ctx, http.MethodGet, "/bookings/"+id, "bookings_get", nil, nil, &booking); err != nil {
		return Booking{}, err
	}
	return booking, nil
}

// CancelBooking cancels a booking.
func (c *Client) CancelBooking(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/bookings/"+id, "bookings_cancel", nil, nil, nil)
}
