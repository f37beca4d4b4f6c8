package payment

import "errors"

var (
	// ErrInvalidEvent indica evento sem transaction id ou com payload incompleto
	ErrInvalidEvent = errors.New("payment: invalid event payload")
)
