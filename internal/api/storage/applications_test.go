package storage

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrsuite/recruitment-service/internal/api/domain"
	"github.com/hrsuite/recruitment-service/internal/api/model"
)

func applicationColumns() []string {
	return []string{
		"id", "job_id", "full_name", "email", "phone",
		"resume_path", "resume_url", "stage", "applied_at",
		"hired_employee_id", "created_at", "updated_at", "job_title",
	}
}

func TestStorage_CreateApplication(t *testing.T) {
	s, mock := newMockStorage(t)

	now := time.Now()
	app := &model.Application{
		ID:        uuid.New().String(),
		JobID:     uuid.New().String(),
		FullName:  "Ada Lovelace",
		Email:     "ada@example.com",
		ResumeURL: model.NullString("https://cdn.example.com/resume.pdf"),
		Stage:     domain.StageNew,
		AppliedAt: now,
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectExec(`INSERT INTO applications`).
		WithArgs(
			app.ID, app.JobID, "Ada Lovelace", "ada@example.com", nil,
			nil, "https://cdn.example.com/resume.pdf", "new", now,
			now, now,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := s.CreateApplication(context.Background(), app)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorage_GetApplicationByID(t *testing.T) {
	t.Run("found with job title", func(t *testing.T) {
		s, mock := newMockStorage(t)

		appID := uuid.New().String()
		jobID := uuid.New().String()
		now := time.Now()

		mock.ExpectQuery(`SELECT(.|\n)+FROM applications a(.|\n)+LEFT JOIN jobs j ON j.id = a.job_id(.|\n)+WHERE a.id = \$1`).
			WithArgs(appID).
			WillReturnRows(sqlmock.NewRows(applicationColumns()).
				AddRow(appID, jobID, "Ada Lovelace", "ada@example.com", nil,
					nil, "https://cdn.example.com/resume.pdf", "new", now,
					nil, now, now, "Backend Engineer"))

		app, err := s.GetApplicationByID(context.Background(), appID)
		require.NoError(t, err)
		assert.Equal(t, appID, app.ID)
		assert.Equal(t, "Ada Lovelace", app.FullName)
		assert.Equal(t, "new", app.Stage)
		assert.Equal(t, "Backend Engineer", app.JobTitle.String)
		assert.False(t, app.ResumePath.Valid)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		s, mock := newMockStorage(t)

		appID := uuid.New().String()
		mock.ExpectQuery(`SELECT(.|\n)+FROM applications a(.|\n)+WHERE a.id = \$1`).
			WithArgs(appID).
			WillReturnRows(sqlmock.NewRows(applicationColumns()))

		app, err := s.GetApplicationByID(context.Background(), appID)
		assert.ErrorIs(t, err, domain.ErrApplicationNotFound)
		assert.Nil(t, app)
	})
}

func TestStorage_ListApplications(t *testing.T) {
	t.Run("job and stage filters", func(t *testing.T) {
		s, mock := newMockStorage(t)

		jobID := uuid.New().String()
		now := time.Now()
		rows := sqlmock.NewRows(applicationColumns()).
			AddRow(uuid.New().String(), jobID, "Ada Lovelace", "ada@example.com", nil,
				nil, "https://cdn.example.com/resume.pdf", "interview", now,
				nil, now, now, "Backend Engineer")

		mock.ExpectQuery(`SELECT(.|\n)+FROM applications a(.|\n)+AND a.job_id = \$1 AND a.stage = \$2(.|\n)+LIMIT \$3`).
			WithArgs(jobID, "interview", 21).
			WillReturnRows(rows)

		apps, err := s.ListApplications(context.Background(), ApplicationFilter{
			JobID:    jobID,
			Stage:    "interview",
			PageSize: 20,
		})
		require.NoError(t, err)
		require.Len(t, apps, 1)
		assert.Equal(t, "interview", apps[0].Stage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cursor adds keyset predicate", func(t *testing.T) {
		s, mock := newMockStorage(t)

		cursorAt := time.Now().Add(-time.Hour)
		cursorID := uuid.New().String()

		mock.ExpectQuery(`SELECT(.|\n)+FROM applications a(.|\n)+AND \(a.created_at, a.id\) < \(\$1, \$2\)(.|\n)+LIMIT \$3`).
			WithArgs(cursorAt, cursorID, 11).
			WillReturnRows(sqlmock.NewRows(applicationColumns()))

		apps, err := s.ListApplications(context.Background(), ApplicationFilter{
			PageSize: 10,
			Cursor:   &Cursor{CreatedAt: cursorAt, ID: cursorID},
		})
		require.NoError(t, err)
		assert.Empty(t, apps)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStorage_UpdateApplicationStage(t *testing.T) {
	t.Run("updates stage", func(t *testing.T) {
		s, mock := newMockStorage(t)

		appID := uuid.New().String()
		mock.ExpectExec(`UPDATE applications(.|\n)+SET stage = \$1`).
			WithArgs("interview", nil, appID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := s.UpdateApplicationStage(context.Background(), appID, domain.StageInterview, sql.NullString{})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("records hired employee on hire", func(t *testing.T) {
		s, mock := newMockStorage(t)

		appID := uuid.New().String()
		mock.ExpectExec(`UPDATE applications(.|\n)+SET stage = \$1`).
			WithArgs("hired", "emp-42", appID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := s.UpdateApplicationStage(context.Background(), appID, domain.StageHired, model.NullString("emp-42"))
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		s, mock := newMockStorage(t)

		appID := uuid.New().String()
		mock.ExpectExec(`UPDATE applications(.|\n)+SET stage = \$1`).
			WithArgs("rejected", nil, appID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := s.UpdateApplicationStage(context.Background(), appID, domain.StageRejected, sql.NullString{})
		assert.ErrorIs(t, err, domain.ErrApplicationNotFound)
	})
}
