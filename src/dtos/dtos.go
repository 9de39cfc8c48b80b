package dtos

import "errors"

// Input is a create/update request body for one entity. Presence of the
// required fields is enforced by the binding tags before ToModel is called.
type Input[T any] interface {
	ToModel() (*T, error)
}

// MessageResponse is the body of every non-2xx response and of delete confirmations.
type MessageResponse struct {
	Message string `json:"message" example:"Database error"`
}

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
