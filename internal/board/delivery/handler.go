package delivery

import (
	"errors"
	"net/http"

	"taskboard-backend/internal/board/domain"
	"taskboard-backend/internal/board/dto"
	"taskboard-backend/internal/board/usecase"

	"github.com/gin-gonic/gin"
)

// BoardHandler handles board, column and task HTTP requests
type BoardHandler struct {
	boardUsecase usecase.BoardUsecase
}

// NewBoardHandler creates a new BoardHandler
func NewBoardHandler(boardUsecase usecase.BoardUsecase) *BoardHandler {
	return &BoardHandler{
		boardUsecase: boardUsecase,
	}
}

// respondError maps domain errors to HTTP status codes
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// ListBoards returns boards the user owns or is a member of
// GET /api/boards
func (h *BoardHandler) ListBoards(c *gin.Context) {
	userID := c.GetString("userID")

	boards, err := h.boardUsecase.ListBoards(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	if boards == nil {
		boards = []*domain.Board{}
	}

	c.JSON(http.StatusOK, boards)
}

// CreateBoard creates a board with the caller as owner
// POST /api/boards
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	board, err := h.boardUsecase.CreateBoard(userID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, board)
}

// GetBoard returns a board with its ordered columns and tasks
// GET /api/boards/:id
func (h *BoardHandler) GetBoard(c *gin.Context) {
	userID := c.GetString("userID")
	boardID := c.Param("id")

	board, err := h.boardUsecase.GetBoard(userID, boardID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, board)
}

// UpdateBoard renames a board
// PUT /api/boards/:id
func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	userID := c.GetString("userID")
	boardID := c.Param("id")

	var req dto.UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	board, err := h.boardUsecase.RenameBoard(userID, boardID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, board)
}

// DeleteBoard deletes a board with its columns and tasks
// DELETE /api/boards/:id
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	userID := c.GetString("userID")
	boardID := c.Param("id")

	if err := h.boardUsecase.DeleteBoard(userID, boardID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// InviteMember invites a user to a board by email or user ID
// POST /api/boards/:id/invite
func (h *BoardHandler) InviteMember(c *gin.Context) {
	userID := c.GetString("userID")
	boardID := c.Param("id")

	var req dto.InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Exactly one selector must be provided
	var selector usecase.InviteSelector
	switch {
	case req.Email != "" && req.UserID == "":
		selector = usecase.EmailSelector(req.Email)
	case req.UserID != "" && req.Email == "":
		selector = usecase.UserIDSelector(req.UserID)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "provide exactly one of email or userId"})
		return
	}

	if err := h.boardUsecase.InviteMember(userID, boardID, selector); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// CreateColumn appends a column to a board
// POST /api/boards/:id/columns
func (h *BoardHandler) CreateColumn(c *gin.Context) {
	userID := c.GetString("userID")
	boardID := c.Param("id")

	var req dto.CreateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	column, err := h.boardUsecase.CreateColumn(userID, boardID, req.Title)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, column)
}

// UpdateColumn renames a column
// PUT /api/columns/:id
func (h *BoardHandler) UpdateColumn(c *gin.Context) {
	userID := c.GetString("userID")
	columnID := c.Param("id")

	var req dto.UpdateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	column, err := h.boardUsecase.RenameColumn(userID, columnID, req.Title)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, column)
}

// DeleteColumn deletes a column and its tasks
// DELETE /api/columns/:id
func (h *BoardHandler) DeleteColumn(c *gin.Context) {
	userID := c.GetString("userID")
	columnID := c.Param("id")

	if err := h.boardUsecase.DeleteColumn(userID, columnID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// CreateTask appends a task to a column
// POST /api/columns/:id/tasks
func (h *BoardHandler) CreateTask(c *gin.Context) {
	userID := c.GetString("userID")
	columnID := c.Param("id")

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.boardUsecase.CreateTask(userID, columnID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// UpdateTask updates a task's title, description, tags or assignees
// PUT /api/tasks/:id
func (h *BoardHandler) UpdateTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.boardUsecase.UpdateTask(userID, taskID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes a task
// DELETE /api/tasks/:id
func (h *BoardHandler) DeleteTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	if err := h.boardUsecase.DeleteTask(userID, taskID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// MoveTask reorders a task within a column or moves it across columns
// POST /api/tasks/reorder
func (h *BoardHandler) MoveTask(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.boardUsecase.MoveTask(userID, &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
