package summary

import "errors"

var (
	ErrSummaryNotFound = errors.New("summary not found")
	ErrEmptyResponses  = errors.New("intake has no responses to summarize")
	ErrUpstream        = errors.New("summary generation failed upstream")
)
