package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ServiceCategory enumerates the marketplace verticals.
type ServiceCategory string

const (
	CategoryTechnical  ServiceCategory = "technical"
	CategoryParking    ServiceCategory = "parking"
	CategoryGasStation ServiceCategory = "gas_station"
)

// Provider is the business offering a service.
type Provider struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	PhoneNumber  string  `json:"phoneNumber"`
	Rating       float64 `json:"rating"`
	WorkingHours string  `json:"workingHours"`
}

// Service is a bookable marketplace offering.
type Service struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    ServiceCategory `json:"category"`
	Price       float64         `json:"price"`
	Duration    int             `json:"duration"`
	Provider    Provider        `json:"provider"`
	Rating      float64         `json:"rating"`
	Image       string          `json:"image"`
	IsAvailable bool            `json:"isAvailable"`
}

// ServiceFilter narrows a service listing. Zero values are omitted.
type ServiceFilter struct {
	Category ServiceCategory
	Search   string
}

// Services lists marketplace services, optionally filtered.
func (c *Client) Services(ctx context.Context, filter ServiceFilter) ([]Service, error) {
	query := url.Values{}
	if filter.Category != "" {
		query.Set("category", string(filter.Category))
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	var services []Service
	if err := c.do(ctx, http.MethodGet, "/services", "services_list", query, nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// ServiceByID fetches a single service.
func (c *Client) ServiceByID(ctx context.Context, id string) (Service, error) {
	var service Service
	if err := c.do(ctx, http.MethodGet, "/services/"+id, "services_get", nil, nil, &service); err != nil {
		return Service{}, err
	}
	return service, nil
}

// NearbyServices lists services within radius kilometres of a point.
func (c *Client) NearbyServices(ctx context.Context, latitude, longitude, radius float64) ([]Service, error) {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	query.Set("radius", strconv.FormatFloat(radius, 'f', -1, 64))
	var services []Service
	if err := c.do(ctx, http.MethodGet, "/services/nearby", "services_nearby", query, nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}
