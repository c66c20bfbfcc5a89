package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hrsuite/recruitment-service/internal/api/domain"
	"github.com/hrsuite/recruitment-service/internal/api/dto"
	"github.com/hrsuite/recruitment-service/internal/calendar"
)

const (
	defaultInterviewerEmail = "hr@company.com"
	defaultLocation         = "Microsoft Teams / Zoom"
)

// ScheduleInterview handles POST /api/v1/interviews/schedule
// The stage transition to "interview" is committed only after the calendar
// collaborator confirms the event; a scheduling failure leaves the
// application untouched and is surfaced to the caller.
func (h *InterviewHandler) ScheduleInterview(c *gin.Context) {
	var req dto.ScheduleInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	if _, err := uuid.Parse(req.ApplicationID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "application_id must be a valid UUID",
		})
		return
	}

	interviewTime, err := time.Parse(time.RFC3339, req.InterviewTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "interview_time must be an RFC3339 timestamp",
		})
		return
	}

	app, err := h.storage.GetApplicationByID(c.Request.Context(), req.ApplicationID)
	if err != nil {
		if errors.Is(err, domain.ErrApplicationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Application not found",
			})
			return
		}
		h.logger.Error("Failed to get application", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get application",
		})
		return
	}

	interviewerEmail := req.InterviewerEmail
	if interviewerEmail == "" {
		interviewerEmail = defaultInterviewerEmail
	}

	event, err := h.scheduler.ScheduleInterview(c.Request.Context(), calendar.Request{
		CandidateEmail:   app.Email,
		CandidateName:    app.FullName,
		InterviewerEmail: interviewerEmail,
		StartTime:        interviewTime,
		Location:         defaultLocation,
	})
	if err != nil {
		h.logger.Error("Interview scheduling failed",
			slog.String("application_id", app.ID),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Scheduling failed",
		})
		return
	}

	if err := h.storage.UpdateApplicationStage(c.Request.Context(), app.ID, domain.StageInterview, sql.NullString{}); err != nil {
		h.logger.Error("Failed to move application to interview stage",
			slog.String("application_id", app.ID),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update application stage",
		})
		return
	}

	h.logger.Info("Interview scheduled",
		slog.String("application_id", app.ID),
		slog.String("event_id", event.EventID),
		slog.Time("start_time", event.StartTime),
	)

	c.JSON(http.StatusOK, gin.H{
		"message": "Interview scheduled successfully",
		"scheduled_event": dto.ScheduledEventDTO{
			EventID:     event.EventID,
			MeetingLink: event.MeetingLink,
			StartTime:   event.StartTime.Format(time.RFC3339),
			EndTime:     event.EndTime.Format(time.RFC3339),
		},
	})
}
