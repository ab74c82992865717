package domain

import "errors"

var (
	MessageSuccessGetSession = "session retrieved successfully"
	MessageSuccessLogout     = "signed out successfully"

	MessageFailedGetSession = "failed to retrieve session"

	ErrUserNotFound = errors.New("user not found")
)

type SessionSummaryResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	// CartCount is the navbar badge: the sum of cart quantities. A failed
	// count query is reported as zero, never as an error.
	CartCount int `json:"cart_count"`
}
