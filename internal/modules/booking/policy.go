package booking

import "housequay/internal/domain"

type Action string

const (
	ActionApprove Action = "approve"
	ActionDecline Action = "decline"
	ActionCancel  Action = "cancel"
)

// CanTransition is the single capability check used by every booking
// mutation path. Approve/decline belong to the listing host while the
// booking is pending; cancel belongs to either party while the booking is
// pending or confirmed.
func CanTransition(b *domain.Booking, actor domain.Actor, action Action) bool {
	switch action {
	case ActionApprove, ActionDecline:
		return b.Status == domain.BookingPending && actor.UserID == b.HostID
	case ActionCancel:
		if b.Status != domain.BookingPending && b.Status != domain.BookingConfirmed {
			return false
		}
		return actor.UserID == b.GuestID || actor.UserID == b.HostID
	default:
		return false
	}
}
