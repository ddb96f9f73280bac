package invoice

import "errors"

var (
	ErrInvalidPeriod = errors.New("invoice period start must not be after end")
)
