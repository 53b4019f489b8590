package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/onurcagigan-dotcom/planet-event/internal/core/domain"
)

// maxDocumentBytes bounds a PUT body; snapshots are small and anything
// larger is a broken client.
const maxDocumentBytes = 4 << 20

const healthDBTimeout = 2 * time.Second

type Handler struct {
	repository DocumentRepository
}

func NewHandler(repository DocumentRepository) *Handler {
	return &Handler{repository: repository}
}

func (h *Handler) GetDocument(c *gin.Context) {
	id := c.Param("id")

	body, err := h.repository.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			c.Status(http.StatusNotFound)
			return
		}

		zap.L().Error("failed to read document", zap.String("document_id", id), zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}

func (h *Handler) PutDocument(c *gin.Context) {
	id := c.Param("id")

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxDocumentBytes+1))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if len(body) == 0 || len(body) > maxDocumentBytes {
		c.Status(http.StatusBadRequest)
		return
	}
	if !json.Valid(body) {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.repository.Put(c.Request.Context(), id, body); err != nil {
		zap.L().Error("failed to write document", zap.String("document_id", id), zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}

type HealthHandler struct {
	db *sqlx.DB
}

func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

type healthResponse struct {
	AppName           string `json:"app_name"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	statusCode := http.StatusOK
	message := "ok"

	if !h.checkConnectionToDatabase(c.Request.Context()) {
		statusCode = http.StatusInternalServerError
		message = "down"
	}

	c.JSON(statusCode, healthResponse{
		AppName:           os.Getenv("APP_NAME"),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Message:           message,
	})
}

func (h *HealthHandler) checkConnectionToDatabase(ctx context.Context) bool {
	if h.db == nil {
		return false
	}
	// Avoid hanging health checks if the database stalls.
	timeoutCtx, cancel := context.WithTimeout(ctx, healthDBTimeout)
	defer cancel()
	return h.db.PingContext(timeoutCtx) == nil
}

func RegisterRoutes(r *gin.Engine, handler *Handler, healthHandler *HealthHandler) {
	r.GET("/health", healthHandler.CheckHealth)
	r.GET("/documents/:id", handler.GetDocument)
	r.PUT("/documents/:id", handler.PutDocument)
}
