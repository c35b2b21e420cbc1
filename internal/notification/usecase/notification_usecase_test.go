package usecase

import (
	"errors"
	"testing"

	"taskboard-backend/internal/notification/domain"
)

type fakeNotificationRepo struct {
	notifs    map[string]*domain.Notification
	markedAll []string
}

func (f *fakeNotificationRepo) Create(n *domain.Notification) error {
	if f.notifs == nil {
		f.notifs = map[string]*domain.Notification{}
	}
	f.notifs[n.ID] = n
	return nil
}

func (f *fakeNotificationRepo) FindByUser(userID string) ([]*domain.Notification, error) {
	var out []*domain.Notification
	for _, n := range f.notifs {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) FindByID(id string) (*domain.Notification, error) {
	return f.notifs[id], nil
}

func (f *fakeNotificationRepo) MarkRead(id string) error {
	f.notifs[id].Read = true
	return nil
}

func (f *fakeNotificationRepo) MarkAllRead(userID string) error {
	f.markedAll = append(f.markedAll, userID)
	for _, n := range f.notifs {
		if n.UserID == userID {
			n.Read = true
		}
	}
	return nil
}

func newNotificationFixture() (*fakeNotificationRepo, NotificationUsecase) {
	repo := &fakeNotificationRepo{notifs: map[string]*domain.Notification{
		"n1": {ID: "n1", UserID: "alice", Type: domain.TypeInvite, Message: "hi"},
		"n2": {ID: "n2", UserID: "bob", Type: domain.TypeInvite, Message: "yo"},
	}}
	return repo, NewNotificationUsecase(repo)
}

func TestMarkReadOwnNotification(t *testing.T) {
	repo, uc := newNotificationFixture()

	if err := uc.MarkRead("alice", "n1"); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if !repo.notifs["n1"].Read {
		t.Fatal("notification not marked read")
	}
}

func TestMarkReadForeignNotificationReportsNotFound(t *testing.T) {
	repo, uc := newNotificationFixture()

	// Another user's notification must look absent, not forbidden
	err := uc.MarkRead("alice", "n2")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if repo.notifs["n2"].Read {
		t.Fatal("foreign notification was mutated")
	}
}

func TestMarkReadMissingNotification(t *testing.T) {
	_, uc := newNotificationFixture()

	if err := uc.MarkRead("alice", "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestMarkAllRead(t *testing.T) {
	repo, uc := newNotificationFixture()

	if err := uc.MarkAllRead("alice"); err != nil {
		t.Fatalf("mark all read: %v", err)
	}
	if !repo.notifs["n1"].Read {
		t.Fatal("alice's notification not marked read")
	}
	if repo.notifs["n2"].Read {
		t.Fatal("bob's notification was mutated")
	}
}

func TestListScopesToUser(t *testing.T) {
	_, uc := newNotificationFixture()

	notifs, err := uc.List("alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(notifs) != 1 || notifs[0].ID != "n1" {
		t.Fatalf("listed %v, want just n1", notifs)
	}
}
