package domain

import "errors"

var (
	ErrNotFound                = errors.New("resource not found")
	ErrSiteNotFound            = errors.New("site not found")
	ErrBookingNotFound         = errors.New("booking not found")
	ErrReviewNotFound          = errors.New("review not found")
	ErrInvalidRange            = errors.New("invalid date range")
	ErrInvalidYear             = errors.New("invalid year filter")
	ErrInvalidRating           = errors.New("rating must be between 1 and 5")
	ErrInvalidPeopleCount      = errors.New("number of people must be positive")
	ErrCapacityExceeded        = errors.New("number of people exceeds site capacity")
	ErrInvalidStatusTransition = errors.New("invalid booking status transition")
)
