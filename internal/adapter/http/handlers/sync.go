package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/onurcagigan-dotcom/planet-event/internal/adapter/http/mapper"
	"github.com/onurcagigan-dotcom/planet-event/internal/core/ports"
)

type SyncHandler struct {
	boardService ports.BoardService
}

func NewSyncHandler(boardService ports.BoardService) *SyncHandler {
	return &SyncHandler{boardService: boardService}
}

// GetState reports the sync status block the UI indicator polls.
func (h *SyncHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, mapper.ToSyncStateResponse(h.boardService.SyncState()))
}

// TriggerSync forces a manual pull. The engine converts every remote failure
// into a status, so this always answers 202 with the resulting state; the
// caller reads the status field to see how it went.
func (h *SyncHandler) TriggerSync(c *gin.Context) {
	if err := h.boardService.Sync(c.Request.Context()); err != nil {
		// Only local-store failures reach here.
		zap.L().Error("manual sync failed", zap.Error(err))
	}

	c.JSON(http.StatusAccepted, mapper.ToSyncStateResponse(h.boardService.SyncState()))
}
