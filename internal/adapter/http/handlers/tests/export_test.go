package tests

import (
	"encoding/csv"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/onurcagigan-dotcom/planet-event/internal/adapter/http/handlers"
	"github.com/onurcagigan-dotcom/planet-event/internal/adapter/http/middleware"
	"github.com/onurcagigan-dotcom/planet-event/internal/core/domain"
)

func newExportRouter(serviceMock *boardServiceMock) *gin.Engine {
	handler := handlers.NewExportHandler(serviceMock)
	router := gin.New()
	router.GET("/api/export", middleware.LanguageMiddleware(), handler.Export)
	return router
}

func exportSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Tasks: []domain.Task{
			{ID: "t1", Category: "Venue", Title: "Book venue", Status: domain.TaskStatusCompleted, Assignee: "dilek", LastModified: 1700000000000},
			{ID: "t2", Category: "Catering", Title: "Order food, lots of it", Status: domain.TaskStatusPending, Deadline: "2026-09-01", LastModified: 1700000000000},
		},
		Categories: []string{"Venue", "Catering"},
		Version:    3,
	}
}

func TestExportHandler_CSV(t *testing.T) {
	serviceMock := new(boardServiceMock)
	serviceMock.On("Snapshot").Return(exportSnapshot()).Once()

	rec := doJSON(t, newExportRouter(serviceMock), http.MethodGet, "/api/export", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	require.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")

	records, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, []string{"id", "category", "title", "status", "notes", "deadline", "assignee", "last_modified"}, records[0])
	require.Equal(t, "Book venue", records[1][2])
	// Commas in titles survive the encoding.
	require.Equal(t, "Order food, lots of it", records[2][2])
	serviceMock.AssertExpectations(t)
}

func TestExportHandler_JSON(t *testing.T) {
	serviceMock := new(boardServiceMock)
	serviceMock.On("Snapshot").Return(exportSnapshot()).Once()

	rec := doJSON(t, newExportRouter(serviceMock), http.MethodGet, "/api/export?format=json", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	require.Contains(t, rec.Body.String(), `"Book venue"`)
	serviceMock.AssertExpectations(t)
}

func TestExportHandler_UnknownFormat(t *testing.T) {
	serviceMock := new(boardServiceMock)
	serviceMock.On("Snapshot").Return(exportSnapshot()).Once()

	rec := doJSON(t, newExportRouter(serviceMock), http.MethodGet, "/api/export?format=xml", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
