package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/onurcagigan-dotcom/planet-event/internal/adapter/http/mapper"
	"github.com/onurcagigan-dotcom/planet-event/internal/adapter/http/middleware"
	"github.com/onurcagigan-dotcom/planet-event/internal/core/domain"
	"github.com/onurcagigan-dotcom/planet-event/internal/core/ports"
	"github.com/onurcagigan-dotcom/planet-event/pkg/apierrors"
)

type ExportHandler struct {
	boardService ports.BoardService
}

func NewExportHandler(boardService ports.BoardService) *ExportHandler {
	return &ExportHandler{boardService: boardService}
}

// Export serializes the current snapshot; no sync logic is involved. format
// is csv (default) or json.
func (h *ExportHandler) Export(c *gin.Context) {
	lang := middleware.GetLang(c)
	snapshot := h.boardService.Snapshot()

	switch c.DefaultQuery("format", "csv") {
	case "json":
		c.Header("Content-Disposition", exportFilename("json"))
		c.JSON(http.StatusOK, mapper.ToSnapshotResponse(snapshot))
	case "csv":
		body, err := tasksToCSV(snapshot.Tasks)
		if err != nil {
			zap.L().Error("failed to build csv export", zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailExport, lang),
			)
			return
		}
		c.Header("Content-Disposition", exportFilename("csv"))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", body)
	default:
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgFailExport, lang),
		)
	}
}

func tasksToCSV(tasks []domain.Task) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"id", "category", "title", "status", "notes", "deadline", "assignee", "last_modified"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, task := range tasks {
		record := []string{
			task.ID,
			task.Category,
			task.Title,
			string(task.Status),
			task.Notes,
			task.Deadline,
			task.Assignee,
			time.UnixMilli(task.LastModified).UTC().Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exportFilename(ext string) string {
	return fmt.Sprintf("attachment; filename=board-%s.%s", time.Now().Format("2006-01-02"), ext)
}
