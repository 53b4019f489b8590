package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/onurcagigan-dotcom/planet-event/internal/adapter/http/middleware"
	"github.com/onurcagigan-dotcom/planet-event/internal/core/ports"
)

const (
	StatusOk = "ok"
)

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthAdvanced struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Language          string `json:"language"`
	SyncStatus        string `json:"sync_status"`
}

type HealthHandler struct {
	boardService ports.BoardService
}

func NewHealthHandler(boardService ports.BoardService) *HealthHandler {
	return &HealthHandler{boardService: boardService}
}

// CheckHealth always answers ok: the client stays fully usable offline, so
// the remote store's reachability is reported through the sync status, not
// through liveness.
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthBasic{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Message:           StatusOk,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	c.JSON(http.StatusOK, HealthAdvanced{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Language:          middleware.GetLang(c),
		SyncStatus:        string(h.boardService.SyncState().Status),
	})
}

func getAppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return "dev"
	}
	return version
}
