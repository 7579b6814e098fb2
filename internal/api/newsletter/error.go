package newsletter

import "Robostaan/pkg/response"

var (
	ErrSubscriptionNotFound = response.NewError(404, "subscription not found")
	ErrInvalidToken         = response.NewError(400, "invalid unsubscribe token")
	ErrSubscribe            = response.NewError(500, "failed to subscribe")
)
