package issuance

import (
	"time"

	"github.com/sunthewhat/easy-cert-claim/type/shared/model"
)

// CheckIssuable applies the event gates in order: existence, active flag,
// then expiry. An event is still open at exactly its deadline.
func CheckIssuable(event *model.Event, now time.Time) error {
	if event == nil {
		return ErrEventNotFound
	}

	if !event.IsActive {
		return ErrEventInactive
	}

	if event.ExpiryDate != nil && now.After(*event.ExpiryDate) {
		return &ExpiredError{Deadline: *event.ExpiryDate}
	}

	return nil
}
