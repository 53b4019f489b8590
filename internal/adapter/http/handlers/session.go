package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/onurcagigan-dotcom/planet-event/internal/adapter/http/dto"
	"github.com/onurcagigan-dotcom/planet-event/internal/adapter/http/mapper"
	"github.com/onurcagigan-dotcom/planet-event/internal/adapter/http/middleware"
	"github.com/onurcagigan-dotcom/planet-event/internal/core/domain"
	"github.com/onurcagigan-dotcom/planet-event/internal/core/ports"
	"github.com/onurcagigan-dotcom/planet-event/pkg/apierrors"
)

type SessionHandler struct {
	boardService ports.BoardService
}

func NewSessionHandler(boardService ports.BoardService) *SessionHandler {
	return &SessionHandler{boardService: boardService}
}

func (h *SessionHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSessionPayload, lang),
		)
		return
	}

	nickname := strings.TrimSpace(req.Nickname)
	if nickname == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSessionPayload, lang),
		)
		return
	}

	session, err := h.boardService.Login(nickname, req.Password)
	if err != nil {
		zap.L().Error("failed to persist session", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSaveSnapshot, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToSessionResponse(session))
}

func (h *SessionHandler) Logout(c *gin.Context) {
	lang := middleware.GetLang(c)

	if err := h.boardService.Logout(); err != nil {
		zap.L().Error("failed to clear session", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSaveSnapshot, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	lang := middleware.GetLang(c)

	session, err := h.boardService.CurrentSession()
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgNoSession, lang),
			)
			return
		}

		zap.L().Error("failed to load session", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSaveSnapshot, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToSessionResponse(session))
}
