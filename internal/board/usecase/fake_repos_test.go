package usecase

import (
	"errors"
	"fmt"
	"sort"

	authdomain "taskboard-backend/internal/auth/domain"
	"taskboard-backend/internal/board/domain"
	notifdomain "taskboard-backend/internal/notification/domain"
)

type fakeBoardRepo struct {
	boards map[string]*domain.Board
	notifs []*notifdomain.Notification
	grants int
}

func (f *fakeBoardRepo) Create(board *domain.Board) error {
	if f.boards == nil {
		f.boards = map[string]*domain.Board{}
	}
	if board.ID == "" {
		board.ID = fmt.Sprintf("board-%d", len(f.boards)+1)
	}
	f.boards[board.ID] = board
	return nil
}

func (f *fakeBoardRepo) FindByID(id string) (*domain.Board, error) {
	return f.boards[id], nil
}

func (f *fakeBoardRepo) FindDetail(id string) (*domain.Board, error) {
	return f.boards[id], nil
}

func (f *fakeBoardRepo) FindByUser(userID string) ([]*domain.Board, error) {
	var out []*domain.Board
	for _, board := range f.boards {
		if board.HasMember(userID) {
			out = append(out, board)
		}
	}
	return out, nil
}

func (f *fakeBoardRepo) Update(board *domain.Board) error {
	f.boards[board.ID] = board
	return nil
}

func (f *fakeBoardRepo) Delete(id string) error {
	delete(f.boards, id)
	return nil
}

func (f *fakeBoardRepo) IsMember(boardID, userID string) (bool, error) {
	board, ok := f.boards[boardID]
	if !ok {
		return false, nil
	}
	for i := range board.Members {
		if board.Members[i].ID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBoardRepo) Invite(boardID string, invitee *authdomain.User, notif *notifdomain.Notification, grantMembership bool) error {
	if grantMembership {
		board := f.boards[boardID]
		board.Members = append(board.Members, *invitee)
		f.grants++
	}
	f.notifs = append(f.notifs, notif)
	return nil
}

type fakeColumnRepo struct {
	columns map[string]*domain.Column
	deleted []string
}

func (f *fakeColumnRepo) Create(column *domain.Column) error {
	if f.columns == nil {
		f.columns = map[string]*domain.Column{}
	}
	if column.ID == "" {
		column.ID = fmt.Sprintf("column-%d", len(f.columns)+1)
	}
	f.columns[column.ID] = column
	return nil
}

func (f *fakeColumnRepo) FindByID(id string) (*domain.Column, error) {
	return f.columns[id], nil
}

func (f *fakeColumnRepo) FindByBoard(boardID string) ([]*domain.Column, error) {
	var out []*domain.Column
	for _, column := range f.columns {
		if column.BoardID == boardID {
			out = append(out, column)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (f *fakeColumnRepo) Update(column *domain.Column) error {
	f.columns[column.ID] = column
	return nil
}

func (f *fakeColumnRepo) Delete(id string) error {
	delete(f.columns, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeTaskRepo struct {
	tasks      map[string]*domain.Task
	applyCalls int
	failApply  bool
	deleted    []string
}

func (f *fakeTaskRepo) Create(task *domain.Task) error {
	if f.tasks == nil {
		f.tasks = map[string]*domain.Task{}
	}
	if task.ID == "" {
		task.ID = fmt.Sprintf("task-%d", len(f.tasks)+1)
	}
	f.tasks[task.ID] = task
	return nil
}

func (f *fakeTaskRepo) FindByID(id string) (*domain.Task, error) {
	return f.tasks[id], nil
}

func (f *fakeTaskRepo) FindByColumn(columnID string) ([]*domain.Task, error) {
	var out []*domain.Task
	for _, task := range f.tasks {
		if task.ColumnID == columnID {
			out = append(out, task)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (f *fakeTaskRepo) Update(task *domain.Task) error {
	f.tasks[task.ID] = task
	return nil
}

func (f *fakeTaskRepo) Delete(id string) error {
	delete(f.tasks, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeTaskRepo) ApplyMove(taskID, toColumnID string, orders map[string]int) error {
	f.applyCalls++
	if f.failApply {
		return errors.New("transaction rolled back")
	}
	for id, order := range orders {
		task := f.tasks[id]
		task.Order = order
		if id == taskID {
			task.ColumnID = toColumnID
		}
	}
	return nil
}

type fakeUserRepo struct {
	users map[string]*authdomain.User
}

func (f *fakeUserRepo) Create(user *authdomain.User) error {
	if f.users == nil {
		f.users = map[string]*authdomain.User{}
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(id string) (*authdomain.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) Update(user *authdomain.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) SaveRefreshToken(token *authdomain.RefreshToken) error { return nil }

func (f *fakeUserRepo) FindRefreshToken(token string) (*authdomain.RefreshToken, error) {
	return nil, nil
}

func (f *fakeUserRepo) DeleteRefreshToken(token string) error { return nil }
