package performance

import "errors"

var (
	ErrObjectiveNotFound = errors.New("objective not found")
	ErrSummaryNotFound   = errors.New("weekly summary not found")
	ErrActivityNotFound  = errors.New("weekly activity not found")
)
