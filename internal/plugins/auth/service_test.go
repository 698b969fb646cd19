package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/vidjot/vidjot/internal/apperror"
)

// --- Mock Repository ---

// mockUserRepo implements UserRepository for testing.
type mockUserRepo struct {
	createFn      func(ctx context.Context, user *User) error
	findByEmailFn func(ctx context.Context, email string) (*User, error)
	emailExistsFn func(ctx context.Context, email string) (bool, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, apperror.NewNotFound("user not found")
}

func (m *mockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	if m.emailExistsFn != nil {
		return m.emailExistsFn(ctx, email)
	}
	return false, nil
}

// --- Helpers ---

// newTestAuthService creates an authService with a mock repo.
func newTestAuthService(repo *mockUserRepo) *authService {
	return &authService{repo: repo}
}

// assertAppError fails the test unless err is an AppError with the given code.
func assertAppError(t *testing.T, err error, code int) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	if appErr.Code != code {
		t.Errorf("expected code %d, got %d", code, appErr.Code)
	}
}

// --- Register ---

func TestRegister_Success(t *testing.T) {
	var created *User
	repo := &mockUserRepo{
		emailExistsFn: func(ctx context.Context, email string) (bool, error) {
			return false, nil
		},
		createFn: func(ctx context.Context, user *User) error {
			created = user
			return nil
		},
	}

	svc := newTestAuthService(repo)
	user, err := svc.Register(context.Background(), RegisterInput{
		Name:     "alice",
		Email:    "a@x.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user == nil {
		t.Fatal("expected user, got nil")
	}
	if user.ID == "" {
		t.Error("expected user ID to be generated")
	}
	if created == nil {
		t.Fatal("expected user to be persisted")
	}
	if created.Username != "alice" {
		t.Errorf("expected username alice, got %s", created.Username)
	}
	if created.Email != "a@x.com" {
		t.Errorf("expected email a@x.com, got %s", created.Email)
	}
	if created.PasswordHash == "" || created.PasswordHash == "secret1" {
		t.Error("expected password to be hashed")
	}
	if !verifyPassword("secret1", created.PasswordHash) {
		t.Error("expected stored hash to verify against the original password")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	createCalled := false
	repo := &mockUserRepo{
		emailExistsFn: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
		createFn: func(ctx context.Context, user *User) error {
			createCalled = true
			return nil
		},
	}

	svc := newTestAuthService(repo)
	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "alice",
		Email:    "taken@x.com",
		Password: "secret1",
	})
	assertAppError(t, err, 409)
	if createCalled {
		t.Error("expected no write to the store on duplicate email")
	}
}

func TestRegister_EmailCheckError(t *testing.T) {
	repo := &mockUserRepo{
		emailExistsFn: func(ctx context.Context, email string) (bool, error) {
			return false, errors.New("db connection lost")
		},
	}

	svc := newTestAuthService(repo)
	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "alice",
		Email:    "a@x.com",
		Password: "secret1",
	})
	assertAppError(t, err, 500)
}

func TestRegister_CreateError(t *testing.T) {
	repo := &mockUserRepo{
		emailExistsFn: func(ctx context.Context, email string) (bool, error) {
			return false, nil
		},
		createFn: func(ctx context.Context, user *User) error {
			return errors.New("db write error")
		},
	}

	svc := newTestAuthService(repo)
	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "alice",
		Email:    "a@x.com",
		Password: "secret1",
	})
	assertAppError(t, err, 500)
}

func TestRegister_EmailNormalization(t *testing.T) {
	var capturedEmail string
	repo := &mockUserRepo{
		emailExistsFn: func(ctx context.Context, email string) (bool, error) {
			capturedEmail = email
			return false, nil
		},
	}

	svc := newTestAuthService(repo)
	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "alice",
		Email:    "  Alice@EXAMPLE.com  ",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if capturedEmail != "alice@example.com" {
		t.Errorf("expected normalized email alice@example.com, got %s", capturedEmail)
	}
}

// --- Login ---

func TestLogin_Success(t *testing.T) {
	hash, err := hashPassword("secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*User, error) {
			return &User{ID: "u1", Username: "alice", Email: email, PasswordHash: hash}, nil
		},
	}

	svc := newTestAuthService(repo)
	user, err := svc.Login(context.Background(), LoginInput{
		Email:    "a@x.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("expected username alice, got %s", user.Username)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*User, error) {
			return nil, apperror.NewNotFound("user not found")
		},
	}

	svc := newTestAuthService(repo)
	_, err := svc.Login(context.Background(), LoginInput{
		Email:    "nobody@x.com",
		Password: "secret1",
	})
	assertAppError(t, err, 401)
	if apperror.SafeMessage(err) != "No user found of this email" {
		t.Errorf("unexpected message: %s", apperror.SafeMessage(err))
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := hashPassword("secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*User, error) {
			return &User{ID: "u1", Username: "alice", Email: email, PasswordHash: hash}, nil
		},
	}

	svc := newTestAuthService(repo)
	_, err = svc.Login(context.Background(), LoginInput{
		Email:    "a@x.com",
		Password: "not-the-password",
	})
	assertAppError(t, err, 401)
	if apperror.SafeMessage(err) != "Password does not match" {
		t.Errorf("unexpected message: %s", apperror.SafeMessage(err))
	}
}

func TestLogin_RepoError(t *testing.T) {
	repo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*User, error) {
			return nil, errors.New("db connection lost")
		},
	}

	svc := newTestAuthService(repo)
	_, err := svc.Login(context.Background(), LoginInput{
		Email:    "a@x.com",
		Password: "secret1",
	})
	assertAppError(t, err, 500)
}

// --- Password Hashing ---

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := hashPassword("secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !verifyPassword("secret1", hash) {
		t.Error("expected original password to verify")
	}
	if verifyPassword("secret2", hash) {
		t.Error("expected different password to fail verification")
	}
	if verifyPassword("", hash) {
		t.Error("expected empty password to fail verification")
	}
}

func TestHashPassword_SaltedPerHash(t *testing.T) {
	first, err := hashPassword("secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := hashPassword("secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Error("expected per-hash salts to produce distinct hashes")
	}
}
