package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrsuite/recruitment-service/internal/api/dto"
)

func newStatsRouter(deps *Dependencies) *gin.Engine {
	h := NewStatsHandler(deps)
	r := gin.New()
	r.GET("/api/v1/recruitment/stats", h.GetStats)
	return r
}

func TestStatsHandler_GetStats(t *testing.T) {
	deps, mock := newTestDeps(t)
	r := newStatsRouter(deps)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM jobs WHERE status = \$1`).
		WithArgs("open").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM applications`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(9))
	mock.ExpectQuery(`SELECT stage, COUNT\(\*\) AS count`).
		WillReturnRows(sqlmock.NewRows([]string{"stage", "count"}).
			AddRow("new", 5).
			AddRow("interview", 3).
			AddRow("hired", 1))
	mock.ExpectQuery(`SELECT DATE\(applied_at\) AS date`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"date", "count"}).
			AddRow(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), 2).
			AddRow(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), 7))

	w := performRequest(r, http.MethodGet, "/api/v1/recruitment/stats", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 4, resp.TotalJobs)
	assert.Equal(t, 9, resp.TotalApplications)

	funnelTotal := 0
	for _, sc := range resp.StageDistribution {
		funnelTotal += sc.Count
	}
	assert.Equal(t, resp.TotalApplications, funnelTotal)

	require.Len(t, resp.RecentApplications, 2)
	assert.Equal(t, "2026-03-09", resp.RecentApplications[0].Date)
	assert.Equal(t, 2, resp.RecentApplications[0].Count)
	assert.Equal(t, "2026-03-10", resp.RecentApplications[1].Date)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsHandler_GetStats_QueryFailure(t *testing.T) {
	deps, mock := newTestDeps(t)
	r := newStatsRouter(deps)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM jobs WHERE status = \$1`).
		WithArgs("open").
		WillReturnError(assert.AnError)

	w := performRequest(r, http.MethodGet, "/api/v1/recruitment/stats", "", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to compute stats")
}
