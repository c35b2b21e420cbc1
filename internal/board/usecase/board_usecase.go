package usecase

import (
	"fmt"

	authdomain "taskboard-backend/internal/auth/domain"
	authrepo "taskboard-backend/internal/auth/repository"
	"taskboard-backend/internal/board/domain"
	"taskboard-backend/internal/board/dto"
	"taskboard-backend/internal/board/repository"
	notifdomain "taskboard-backend/internal/notification/domain"
)

// boardUsecase implements BoardUsecase interface
type boardUsecase struct {
	boardRepo  repository.BoardRepository
	columnRepo repository.ColumnRepository
	taskRepo   repository.TaskRepository
	userRepo   authrepo.UserRepository
}

// NewBoardUsecase creates a new instance of boardUsecase
func NewBoardUsecase(boardRepo repository.BoardRepository, columnRepo repository.ColumnRepository, taskRepo repository.TaskRepository, userRepo authrepo.UserRepository) BoardUsecase {
	return &boardUsecase{
		boardRepo:  boardRepo,
		columnRepo: columnRepo,
		taskRepo:   taskRepo,
		userRepo:   userRepo,
	}
}

func (u *boardUsecase) ListBoards(userID string) ([]*domain.Board, error) {
	return u.boardRepo.FindByUser(userID)
}

func (u *boardUsecase) CreateBoard(userID, name string) (*domain.Board, error) {
	board := &domain.Board{
		Name:    name,
		OwnerID: userID,
	}
	if err := u.boardRepo.Create(board); err != nil {
		return nil, err
	}
	return board, nil
}

func (u *boardUsecase) GetBoard(userID, boardID string) (*domain.Board, error) {
	board, err := u.boardRepo.FindDetail(boardID)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, domain.ErrNotFound
	}
	if !board.HasMember(userID) {
		return nil, domain.ErrForbidden
	}
	return board, nil
}

func (u *boardUsecase) RenameBoard(userID, boardID, name string) (*domain.Board, error) {
	board, err := u.boardRepo.FindByID(boardID)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, domain.ErrNotFound
	}
	if !board.HasMember(userID) {
		return nil, domain.ErrForbidden
	}

	board.Name = name
	if err := u.boardRepo.Update(board); err != nil {
		return nil, err
	}
	return board, nil
}

func (u *boardUsecase) DeleteBoard(userID, boardID string) error {
	board, err := u.boardRepo.FindByID(boardID)
	if err != nil {
		return err
	}
	if board == nil {
		return domain.ErrNotFound
	}
	if !board.HasMember(userID) {
		return domain.ErrForbidden
	}
	return u.boardRepo.Delete(boardID)
}

// InviteMember grants membership at most once but records a notification on
// every invite. A re-invite of an existing member signals renewed attention
// to the board, so the notification is intentional.
func (u *boardUsecase) InviteMember(userID, boardID string, selector InviteSelector) error {
	board, err := u.boardRepo.FindByID(boardID)
	if err != nil {
		return err
	}
	if board == nil {
		return domain.ErrNotFound
	}
	if !board.HasMember(userID) {
		return domain.ErrForbidden
	}

	var invitee *authdomain.User
	switch s := selector.(type) {
	case EmailSelector:
		invitee, err = u.userRepo.FindByEmail(string(s))
	case UserIDSelector:
		invitee, err = u.userRepo.FindByID(string(s))
	default:
		return domain.ErrValidation
	}
	if err != nil {
		return err
	}
	if invitee == nil {
		return domain.ErrNotFound
	}

	grantMembership := invitee.ID != board.OwnerID
	if grantMembership {
		isMember, err := u.boardRepo.IsMember(boardID, invitee.ID)
		if err != nil {
			return err
		}
		grantMembership = !isMember
	}

	inviter, err := u.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if inviter == nil {
		return domain.ErrNotFound
	}

	notif := &notifdomain.Notification{
		UserID:  invitee.ID,
		Type:    notifdomain.TypeInvite,
		Message: fmt.Sprintf("%s invited you to the board %q", inviter.Name, board.Name),
		BoardID: board.ID,
	}
	return u.boardRepo.Invite(boardID, invitee, notif, grantMembership)
}

func (u *boardUsecase) CreateColumn(userID, boardID, title string) (*domain.Column, error) {
	board, err := u.boardRepo.FindByID(boardID)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, domain.ErrNotFound
	}
	if !board.HasMember(userID) {
		return nil, domain.ErrForbidden
	}

	siblings, err := u.columnRepo.FindByBoard(boardID)
	if err != nil {
		return nil, err
	}
	orders := make([]int, len(siblings))
	for i, col := range siblings {
		orders[i] = col.Order
	}

	column := &domain.Column{
		Title:   title,
		Order:   nextOrder(orders),
		BoardID: boardID,
	}
	if err := u.columnRepo.Create(column); err != nil {
		return nil, err
	}
	return column, nil
}

func (u *boardUsecase) RenameColumn(userID, columnID, title string) (*domain.Column, error) {
	column, err := u.resolveColumn(userID, columnID)
	if err != nil {
		return nil, err
	}

	column.Title = title
	if err := u.columnRepo.Update(column); err != nil {
		return nil, err
	}
	return column, nil
}

func (u *boardUsecase) DeleteColumn(userID, columnID string) error {
	if _, err := u.resolveColumn(userID, columnID); err != nil {
		return err
	}
	return u.columnRepo.Delete(columnID)
}

func (u *boardUsecase) CreateTask(userID, columnID string, req *dto.CreateTaskRequest) (*domain.Task, error) {
	if _, err := u.resolveColumn(userID, columnID); err != nil {
		return nil, err
	}

	siblings, err := u.taskRepo.FindByColumn(columnID)
	if err != nil {
		return nil, err
	}
	orders := make([]int, len(siblings))
	for i, t := range siblings {
		orders[i] = t.Order
	}

	assignees, err := u.resolveAssignees(req.AssigneeIDs)
	if err != nil {
		return nil, err
	}

	task := &domain.Task{
		Title:       req.Title,
		Description: req.Description,
		Order:       nextOrder(orders),
		ColumnID:    columnID,
		Tags:        domain.StringArray(req.Tags),
		Assignees:   assignees,
	}
	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *boardUsecase) UpdateTask(userID, taskID string, req *dto.UpdateTaskRequest) (*domain.Task, error) {
	task, err := u.resolveTask(userID, taskID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Tags != nil {
		task.Tags = domain.StringArray(*req.Tags)
	}
	if req.AssigneeIDs != nil {
		assignees, err := u.resolveAssignees(*req.AssigneeIDs)
		if err != nil {
			return nil, err
		}
		if assignees == nil {
			// Non-nil empty slice so the repository clears the relation
			assignees = []authdomain.User{}
		}
		task.Assignees = assignees
	}

	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *boardUsecase) DeleteTask(userID, taskID string) error {
	if _, err := u.resolveTask(userID, taskID); err != nil {
		return err
	}
	return u.taskRepo.Delete(taskID)
}

// MoveTask recomputes the order of every task in the affected scope(s) and
// hands the full assignment to the repository as one atomic write. A move to
// the task's current position is a legal no-op: reindexing the unchanged
// sequence yields the same orders.
func (u *boardUsecase) MoveTask(userID string, req *dto.MoveTaskRequest) error {
	task, err := u.resolveTask(userID, req.TaskID)
	if err != nil {
		return err
	}
	if task.ColumnID != req.FromColumnID {
		return fmt.Errorf("%w: task is not in column %s", domain.ErrInvalidState, req.FromColumnID)
	}

	if req.FromColumnID == req.ToColumnID {
		tasks, err := u.taskRepo.FindByColumn(req.FromColumnID)
		if err != nil {
			return err
		}
		seq := withoutTask(tasks, task.ID)
		idx := clampIndex(req.ToIndex, len(seq))
		seq = insertTask(seq, task, idx)
		return u.taskRepo.ApplyMove(task.ID, req.ToColumnID, orderAssignments(seq))
	}

	target, err := u.columnRepo.FindByID(req.ToColumnID)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.ErrNotFound
	}
	if target.BoardID != task.Column.BoardID {
		return fmt.Errorf("%w: columns belong to different boards", domain.ErrInvalidState)
	}

	sourceTasks, err := u.taskRepo.FindByColumn(req.FromColumnID)
	if err != nil {
		return err
	}
	targetTasks, err := u.taskRepo.FindByColumn(req.ToColumnID)
	if err != nil {
		return err
	}

	orders := orderAssignments(withoutTask(sourceTasks, task.ID))
	idx := clampIndex(req.ToIndex, len(targetTasks))
	for id, order := range orderAssignments(insertTask(targetTasks, task, idx)) {
		orders[id] = order
	}
	return u.taskRepo.ApplyMove(task.ID, req.ToColumnID, orders)
}

// resolveColumn fetches the column and authorizes userID against its board
func (u *boardUsecase) resolveColumn(userID, columnID string) (*domain.Column, error) {
	column, err := u.columnRepo.FindByID(columnID)
	if err != nil {
		return nil, err
	}
	if column == nil {
		return nil, domain.ErrNotFound
	}
	if column.Board == nil || !column.Board.HasMember(userID) {
		return nil, domain.ErrForbidden
	}
	return column, nil
}

// resolveTask fetches the task and authorizes userID against the board owning
// its column
func (u *boardUsecase) resolveTask(userID, taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	if task.Column == nil || task.Column.Board == nil || !task.Column.Board.HasMember(userID) {
		return nil, domain.ErrForbidden
	}
	return task, nil
}

func (u *boardUsecase) resolveAssignees(ids []string) ([]authdomain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	assignees := make([]authdomain.User, 0, len(ids))
	for _, id := range ids {
		user, err := u.userRepo.FindByID(id)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, fmt.Errorf("%w: assignee %s", domain.ErrNotFound, id)
		}
		assignees = append(assignees, *user)
	}
	return assignees, nil
}
