package entity

// Order lifecycle. The first five form a strict progression; cancelled is
// an orthogonal terminal branch reachable from anything except delivered.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

var statusOrder = []string{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusReady,
	StatusDelivered,
}

// StatusSteps returns the linear progression, in order, for tracker views.
func StatusSteps() []string {
	out := make([]string, len(statusOrder))
	copy(out, statusOrder)
	return out
}

// StatusIndex returns the position of s in the progression, or -1 for
// cancelled and anything unrecognized. Callers render -1 outside the
// linear progress bar instead of failing.
func StatusIndex(s string) int {
	for i, v := range statusOrder {
		if v == s {
			return i
		}
	}
	return -1
}

// ValidOrderStatus reports whether s is any lifecycle status, cancelled
// included. Admin override controls accept all of them.
func ValidOrderStatus(s string) bool {
	return s == StatusCancelled || StatusIndex(s) >= 0
}

// CanCancel reports whether an order in status s may still be cancelled.
func CanCancel(s string) bool {
	return s != StatusDelivered && s != StatusCancelled
}
