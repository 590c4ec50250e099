package auth

import "time"

// OTPValidity is how long an emailed code stays submittable.
const OTPValidity = 300 * time.Second

// Countdown is the client-side OTP validity timer. It is wall-clock based:
// expiry blocks submission locally instead of sending a doomed request.
type Countdown struct {
	deadline time.Time
	nowTime  func() time.Time
}

func NewCountdown(nowTime func() time.Time) *Countdown {
	if nowTime == nil {
		nowTime = time.Now
	}
	c := &Countdown{nowTime: nowTime}
	c.Reset()
	return c
}

// Reset restarts the countdown at the full validity window.
func (c *Countdown) Reset() {
	c.deadline = c.nowTime().Add(OTPValidity)
}

// Remaining returns the time left, floored at zero.
func (c *Countdown) Remaining() time.Duration {
	remaining := c.deadline.Sub(c.nowTime())
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (c *Countdown) Expired() bool {
	return c.Remaining() == 0
}
