package cli

// View locations. They mirror the web client's routes so the guard semantics
// carry over unchanged.
const (
	RouteHome      = "/"
	RouteLogin     = "/login"
	RouteRegister  = "/register"
	RouteVerifyOTP = "/verify-otp"
	RouteServices  = "/services"
	RouteBookings  = "/bookings"
	RouteProfile   = "/profile"
	RouteAdmin     = "/admin"
)
