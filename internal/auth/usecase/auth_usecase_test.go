package usecase

import (
	"fmt"
	"testing"
	"time"

	authdomain "taskboard-backend/internal/auth/domain"
	authdto "taskboard-backend/internal/auth/dto"
	"taskboard-backend/pkg/config"
)

type fakeUserRepo struct {
	users  map[string]*authdomain.User
	tokens map[string]*authdomain.RefreshToken
}

func (f *fakeUserRepo) Create(user *authdomain.User) error {
	if f.users == nil {
		f.users = map[string]*authdomain.User{}
	}
	user.ID = fmt.Sprintf("user-%d", len(f.users)+1)
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
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

func (f *fakeUserRepo) SaveRefreshToken(token *authdomain.RefreshToken) error {
	if f.tokens == nil {
		f.tokens = map[string]*authdomain.RefreshToken{}
	}
	f.tokens[token.Token] = token
	return nil
}

func (f *fakeUserRepo) FindRefreshToken(token string) (*authdomain.RefreshToken, error) {
	return f.tokens[token], nil
}

func (f *fakeUserRepo) DeleteRefreshToken(token string) error {
	delete(f.tokens, token)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 7 * 24 * time.Hour,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := NewAuthUsecase(repo, testConfig())

	resp, err := uc.Register(&authdto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatal("register returned empty tokens")
	}
	if resp.User.Password == "hunter22" {
		t.Fatal("password stored in plain text")
	}

	login, err := uc.Login(&authdto.LoginRequest{Email: "alice@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if login.User.ID != resp.User.ID {
		t.Fatalf("login user %s, want %s", login.User.ID, resp.User.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := NewAuthUsecase(repo, testConfig())

	req := &authdto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "hunter22"}
	if _, err := uc.Register(req); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := uc.Register(req); err == nil {
		t.Fatal("duplicate email accepted")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := NewAuthUsecase(repo, testConfig())

	if _, err := uc.Register(&authdto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "hunter22"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := uc.Login(&authdto.LoginRequest{Email: "alice@example.com", Password: "wrong-password"}); err == nil {
		t.Fatal("wrong password accepted")
	}
}

func TestLoginRefusesOAuthAccount(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := NewAuthUsecase(repo, testConfig())

	_ = repo.Create(&authdomain.User{Email: "g@example.com", Name: "G", Provider: "google"})

	if _, err := uc.Login(&authdto.LoginRequest{Email: "g@example.com", Password: "whatever1"}); err == nil {
		t.Fatal("password login accepted for a Google account")
	}
}

func TestValidateTokenRoundTrip(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := NewAuthUsecase(repo, testConfig())

	resp, err := uc.Register(&authdto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := uc.ValidateToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if user.ID != resp.User.ID {
		t.Fatalf("token resolves to %s, want %s", user.ID, resp.User.ID)
	}

	if _, err := uc.ValidateToken("not-a-token"); err == nil {
		t.Fatal("garbage token accepted")
	}
}

func TestRefreshAndLogout(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := NewAuthUsecase(repo, testConfig())

	resp, err := uc.Register(&authdto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	refreshed, err := uc.RefreshToken(resp.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Fatal("refresh returned empty access token")
	}

	if err := uc.Logout(resp.RefreshToken); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := uc.RefreshToken(resp.RefreshToken); err == nil {
		t.Fatal("refresh accepted after logout")
	}
}
