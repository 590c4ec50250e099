package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/autolife-uz/autolife-go/session"
)

// AdminUser is the staff-facing projection of a user account.
type AdminUser struct {
	session.User
	Status    string    `json:"status"`
	LastLogin time.Time `json:"lastLogin"`
	CreatedAt time.Time `json:"createdAt"`
}

// AdminOrder is an order as seen from the admin surface.
type AdminOrder struct {
	ID              string    `json:"id"`
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	ServiceName     string    `json:"serviceName"`
	ServiceCategory string    `json:"serviceCategory"`
	Status          string    `json:"status"`
	Amount          float64   `json:"amount"`
	CreatedAt       time.Time `json:"createdAt"`
	AssignedWorker  string    `json:"assignedWorker,omitempty"`
}

// DashboardStats is the admin dashboard summary.
type DashboardStats struct {
	TotalRevenue   float64   `json:"totalRevenue"`
	TotalUsers     int       `json:"totalUsers"`
	TotalOrders    int       `json:"totalOrders"`
	ActiveServices int       `json:"activeServices"`
	MonthlyRevenue []float64 `json:"monthlyRevenue"`
	MonthlyOrders  []int     `json:"monthlyOrders"`
	RevenueGrowth  float64   `json:"revenueGrowth"`
	UserGrowth     float64   `json:"userGrowth"`
}

// PageQuery is shared pagination/filtering for admin listings.
type PageQuery struct {
	Page   int
	Limit  int
	Search string
	Status string
}

func (q PageQuery) values() url.Values {
	query := url.Values{}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Search != "" {
		query.Set("search", q.Search)
	}
	if q.Status != "" {
		query.Set("status", q.Status)
	}
	return query
}

// Stats fetches the admin dashboard summary.
func (c *Client) Stats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats
	if err := c.do(ctx, http.MethodGet, "/admin/dashboard/stats", "admin_stats", nil, nil, &stats); err != nil {
		return DashboardStats{}, err
	}
	return stats, nil
}

// AdminUsers lists user accounts for the admin surface.
func (c *Client) AdminUsers(ctx context.Context, query PageQuery) ([]AdminUser, int, error) {
	var resp struct {
		Users []AdminUser `json:"users"`
		Total int         `json:"total"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/users", "admin_users", query.values(), nil, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Users, resp.Total, nil
}

// UpdateUserRole changes a user's role.
func (c *Client) UpdateUserRole(ctx context.Context, id, role string) (AdminUser, error) {
	var user AdminUser
	body := map[string]string{"role": role}
	if err := c.do(ctx, http.MethodPut, "/admin/users/"+id+"/role", "admin_user_role", nil, body, &user); err != nil {
		return AdminUser{}, err
	}
	return user, nil
}

// SuspendUser suspends a user account.
func (c *Client) SuspendUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/admin/users/"+id+"/suspend", "admin_user_suspend", nil, nil, nil)
}

// AdminOrders lists orders for the admin surface.
func (c *Client) AdminOrders(ctx context.Context, query PageQuery) ([]AdminOrder, int, error) {
	var resp struct {
		Orders []AdminOrder `json:"orders"`
		Total  int          `json:"total"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/orders", "admin_orders", query.values(), nil, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Orders, resp.Total, nil
}

// UpdateOrderStatus moves an order through its workflow.
func (c *Client) UpdateOrderStatus(ctx context.Context, id, status string) (AdminOrder, error) {
	var order AdminOrder
	body := map[string]string{"status": status}
	if err := c.do(ctx, http.MethodPut, "/admin/orders/"+id+"/status", "admin_order_status", nil, body, &order); err != nil {
		return AdminOrder{}, err
	}
	return order, nil
}
