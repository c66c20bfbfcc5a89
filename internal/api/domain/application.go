package domain

import (
	"errors"
)

// Pipeline stages, in funnel order. Every application enters at StageNew
// and moves through explicit stage transitions only.
const (
	StageNew       = "new"
	StageScreening = "screening"
	StageInterview = "interview"
	StageOffer     = "offer"
	StageHired     = "hired"
	StageRejected  = "rejected"
)

// Stages lists all pipeline stages in funnel order.
var Stages = []string{
	StageNew,
	StageScreening,
	StageInterview,
	StageOffer,
	StageHired,
	StageRejected,
}

var (
	ErrApplicationNotFound = errors.New("application not found")

	// ErrResumeRequired is returned when a submission carries neither an
	// uploaded resume file nor a resume URL.
	ErrResumeRequired = errors.New("resume is required (file or link)")
)

// ValidStage reports whether s is one of the known pipeline stages.
func ValidStage(s string) bool {
	for _, stage := range Stages {
		if s == stage {
			return true
		}
	}
	return false
}
