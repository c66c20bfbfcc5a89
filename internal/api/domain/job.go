package domain

import (
	"errors"
)

// Job status values. Jobs with JobStatusOpen are the ones counted as
// active in the dashboard stats.
const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
	JobStatusDraft  = "draft"
)

var (
	ErrJobNotFound = errors.New("job not found")
)

// ValidJobStatus reports whether s is one of the known job statuses.
func ValidJobStatus(s string) bool {
	switch s {
	case JobStatusOpen, JobStatusClosed, JobStatusDraft:
		return true
	}
	return false
}
