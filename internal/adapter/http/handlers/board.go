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
	"github.com/onurcagigan-dotcom/planet-event/internal/adapter/http/validation"
	"github.com/onurcagigan-dotcom/planet-event/internal/core/domain"
	"github.com/onurcagigan-dotcom/planet-event/internal/core/ports"
	"github.com/onurcagigan-dotcom/planet-event/pkg/apierrors"
)

type BoardHandler struct {
	boardService ports.BoardService
}

func NewBoardHandler(boardService ports.BoardService) *BoardHandler {
	return &BoardHandler{boardService: boardService}
}

func (h *BoardHandler) GetSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, mapper.ToSnapshotResponse(h.boardService.Snapshot()))
}

func (h *BoardHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateTaskInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, err := h.boardService.CreateTask(input)
	if err != nil {
		zap.L().Error("failed to create task", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSaveSnapshot, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *BoardHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	taskID := c.Param("id")

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	update, err := validation.BuildTaskUpdate(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, err := h.boardService.UpdateTask(taskID, update)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update task", zap.String("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSaveSnapshot, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *BoardHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	taskID := c.Param("id")

	if err := h.boardService.DeleteTask(taskID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete task", zap.String("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSaveSnapshot, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BoardHandler) CreateCategory(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload, lang),
		)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload, lang),
		)
		return
	}

	if err := h.boardService.CreateCategory(name); err != nil {
		if errors.Is(err, domain.ErrDuplicateCategory) {
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgDuplicateCategory, lang),
			)
			return
		}

		zap.L().Error("failed to create category", zap.String("name", req.Name), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSaveSnapshot, lang),
		)
		return
	}

	c.Status(http.StatusCreated)
}
