package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hrsuite/recruitment-service/internal/api/domain"
	"github.com/hrsuite/recruitment-service/internal/api/dto"
	"github.com/hrsuite/recruitment-service/internal/api/model"
	"github.com/hrsuite/recruitment-service/internal/api/storage"
)

// screeningMessage is the broker message that triggers the asynchronous
// screening forward for a persisted application.
type screeningMessage struct {
	ApplicationID string `json:"application_id"`
}

// Apply handles POST /api/v1/applications
// Accepts either a multipart submission (resume file) or a JSON submission
// (resume URL). When both resume forms are present the uploaded file takes
// precedence. The response reflects only the outcome of persistence; the
// screening forward is dispatched afterwards and never surfaces here.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dto.ApplyRequest
	var resumeFile *multipart.FileHeader

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		req.FullName = c.PostForm("full_name")
		req.Email = c.PostForm("email")
		req.Phone = c.PostForm("phone")
		req.JobID = c.PostForm("job_id")
		req.ResumeURL = c.PostForm("resume_url")

		if file, err := c.FormFile("resume"); err == nil {
			resumeFile = file
		}

		if req.FullName == "" || req.Email == "" || req.JobID == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "full_name, email and job_id are required",
			})
			return
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Error("Invalid request body", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request body",
			})
			return
		}
	}

	if _, err := uuid.Parse(req.JobID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "job_id must be a valid UUID",
		})
		return
	}

	if resumeFile == nil && req.ResumeURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Resume is required (File or Link)",
		})
		return
	}

	now := time.Now()
	app := model.Application{
		ID:        uuid.New().String(),
		JobID:     req.JobID,
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     model.NullString(req.Phone),
		Stage:     domain.StageNew,
		AppliedAt: now,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if resumeFile != nil {
		storedName, err := h.saveResume(c, resumeFile)
		if err != nil {
			h.logger.Error("Failed to store resume file",
				slog.String("filename", resumeFile.Filename),
				slog.String("error", err.Error()),
			)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to store resume file",
			})
			return
		}
		app.ResumePath = model.NullString(storedName)
	} else {
		// Stored verbatim; URL-shape validation is the submitter's burden
		app.ResumeURL = model.NullString(req.ResumeURL)
	}

	if err := h.storage.CreateApplication(c.Request.Context(), &app); err != nil {
		h.logger.Error("Failed to create application", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create application",
		})
		return
	}

	// Fire and forget: the screening hand-off runs on a detached context so
	// it is neither awaited by this request nor canceled with it.
	h.dispatchScreening(app.ID)

	c.JSON(http.StatusCreated, toApplicationDTO(&app))
}

// saveResume writes the uploaded file under the uploads dir with a
// generated name, keeping the original extension.
func (h *ApplicationHandler) saveResume(c *gin.Context, file *multipart.FileHeader) (string, error) {
	storedName := uuid.New().String() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(h.uploadsDir, storedName)); err != nil {
		return "", err
	}
	return storedName, nil
}

func (h *ApplicationHandler) dispatchScreening(applicationID string) {
	body, err := json.Marshal(screeningMessage{ApplicationID: applicationID})
	if err != nil {
		h.logger.Error("Failed to encode screening message",
			slog.String("application_id", applicationID),
			slog.String("error", err.Error()),
		)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := h.publisher.PublishWithRetry(ctx, body, "application/json"); err != nil {
			h.logger.Error("Failed to publish screening request",
				slog.String("application_id", applicationID),
				slog.String("error", err.Error()),
			)
			return
		}

		h.logger.Info("Screening request published",
			slog.String("application_id", applicationID),
		)
	}()
}

// GetApplication handles GET /api/v1/applications/:application_id
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	appID := c.Param("application_id")
	if _, err := uuid.Parse(appID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "application_id must be a valid UUID",
		})
		return
	}

	app, err := h.storage.GetApplicationByID(c.Request.Context(), appID)
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

	c.JSON(http.StatusOK, toApplicationDTO(app))
}

// ListApplications handles GET /api/v1/applications
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	var req dto.ListApplicationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	if req.PageSize <= 0 {
		req.PageSize = 20
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	if req.Stage != "" && !domain.ValidStage(req.Stage) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid stage filter",
		})
		return
	}

	cursor, err := DecodeCursor(req.Cursor)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid cursor",
		})
		return
	}

	filter := storage.ApplicationFilter{
		JobID:    req.JobID,
		Stage:    req.Stage,
		PageSize: req.PageSize,
		Cursor:   cursor,
	}

	apps, err := h.storage.ListApplications(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to list applications", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list applications",
		})
		return
	}

	hasMore := len(apps) > req.PageSize
	if hasMore {
		apps = apps[:req.PageSize]
	}

	appResponse := make([]dto.ApplicationDTO, len(apps))
	for i := range apps {
		appResponse[i] = toApplicationDTO(&apps[i])
	}

	var nextCursor string
	if hasMore {
		lastApp := apps[len(apps)-1]
		nextCursor = EncodeCursor(&storage.Cursor{
			CreatedAt: lastApp.CreatedAt,
			ID:        lastApp.ID,
		})
	}

	c.JSON(http.StatusOK, dto.ListApplicationsResponse{
		Applications: appResponse,
		NextCursor:   nextCursor,
	})
}

// UpdateStage handles PATCH /api/v1/applications/:application_id/stage
func (h *ApplicationHandler) UpdateStage(c *gin.Context) {
	appID := c.Param("application_id")
	if _, err := uuid.Parse(appID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "application_id must be a valid UUID",
		})
		return
	}

	var req dto.UpdateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	if !domain.ValidStage(req.Stage) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid stage",
		})
		return
	}

	err := h.storage.UpdateApplicationStage(c.Request.Context(), appID, req.Stage, model.NullString(req.HiredEmployeeID))
	if err != nil {
		if errors.Is(err, domain.ErrApplicationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Application not found",
			})
			return
		}
		h.logger.Error("Failed to update application stage", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update application stage",
		})
		return
	}

	app, err := h.storage.GetApplicationByID(c.Request.Context(), appID)
	if err != nil {
		h.logger.Error("Failed to reload application", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get application",
		})
		return
	}

	c.JSON(http.StatusOK, toApplicationDTO(app))
}

func toApplicationDTO(app *model.Application) dto.ApplicationDTO {
	return dto.ApplicationDTO{
		ID:              app.ID,
		JobID:           app.JobID,
		JobTitle:        nullToPtr(app.JobTitle),
		FullName:        app.FullName,
		Email:           app.Email,
		Phone:           nullToPtr(app.Phone),
		ResumePath:      nullToPtr(app.ResumePath),
		ResumeURL:       nullToPtr(app.ResumeURL),
		Stage:           app.Stage,
		AppliedAt:       app.AppliedAt.Format(time.RFC3339),
		HiredEmployeeID: nullToPtr(app.HiredEmployeeID),
		CreatedAt:       app.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       app.UpdatedAt.Format(time.RFC3339),
	}
}
