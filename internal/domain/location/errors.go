package location

import "errors"

var (
	ErrLocationNotFound   = errors.New("location not found")
	ErrNegativePayRate    = errors.New("pay rate must be non-negative")
	ErrInvalidPayRateType = errors.New("pay rate type must be 'Per Hour' or 'Per Day'")
)
