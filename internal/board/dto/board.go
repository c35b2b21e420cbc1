package dto

type CreateBoardRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateBoardRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateColumnRequest struct {
	Title string `json:"title" binding:"required"`
}

type UpdateColumnRequest struct {
	Title string `json:"title" binding:"required"`
}

type CreateTaskRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	AssigneeIDs []string `json:"assignee_ids"`
}

type UpdateTaskRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Tags        *[]string `json:"tags"`
	AssigneeIDs *[]string `json:"assignee_ids"`
}

// MoveTaskRequest reorders a task within a column (from == to) or moves it
// across columns. ToIndex is clamped server-side, so no bounds binding here.
type MoveTaskRequest struct {
	FromColumnID string `json:"fromColumnId" binding:"required"`
	ToColumnID   string `json:"toColumnId" binding:"required"`
	TaskID       string `json:"taskId" binding:"required"`
	ToIndex      int    `json:"toIndex"`
}

// InviteRequest carries exactly one of Email or UserID
type InviteRequest struct {
	Email  string `json:"email"`
	UserID string `json:"userId"`
}
