package store

import "errors"

// ErrMissingFields is returned by CreateSubscriber when name or
// subscribedChannel is empty. Nothing is persisted in that case.
var ErrMissingFields = errors.New("name and subscribedChannel are required")
