package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Csprier/marvel-server/internal/models"
	"github.com/Csprier/marvel-server/internal/repository"
	"github.com/Csprier/marvel-server/internal/validation"
)

func createPayload() map[string]any {
	return map[string]any{
		"username": "exampleUser",
		"email":    "example@user.com",
		"password": "examplePass",
	}
}

func TestUserService_Create_Success(t *testing.T) {
	mock := &mockUsers{
		FindByUsernameFn: func(username string) (*models.User, error) {
			return nil, nil
		},
		InsertFn: func(u models.User) (*models.User, error) {
			u.ID = "u-1"
			return &u, nil
		},
	}
	svc := NewUserService(mock)

	pub, err := svc.Create(context.Background(), createPayload())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if pub.ID != "u-1" || pub.Username != "exampleUser" || pub.Email != "example@user.com" {
		t.Fatalf("unexpected projection: %+v", pub)
	}

	if len(mock.insertCalls) != 1 {
		t.Fatalf("expected 1 Insert call, got %d", len(mock.insertCalls))
	}
	stored := mock.insertCalls[0]
	if stored.PasswordDigest == "examplePass" {
		t.Fatalf("plaintext password reached the directory")
	}
	if !verifyPassword(stored.PasswordDigest, "examplePass") {
		t.Fatalf("stored digest does not verify against the original password")
	}
}

func TestUserService_Create_InvalidPayloadSkipsDirectory(t *testing.T) {
	mock := &mockUsers{
		InsertFn: func(u models.User) (*models.User, error) {
			t.Fatal("Insert must not be called for an invalid payload")
			return nil, nil
		},
	}
	svc := NewUserService(mock)

	payload := createPayload()
	payload["password"] = "asdfghj" // 7 chars

	_, err := svc.Create(context.Background(), payload)
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if verr.Field != "password" || verr.Rule != validation.RuleTooShort || verr.Limit != 8 {
		t.Fatalf("unexpected validation error: %+v", verr)
	}
	if len(mock.findCalls) != 0 {
		t.Fatalf("directory consulted before validation passed")
	}
}

func TestUserService_Create_DuplicatePreCheck(t *testing.T) {
	mock := &mockUsers{
		FindByUsernameFn: func(username string) (*models.User, error) {
			return &models.User{ID: "u-1", Username: username}, nil
		},
		InsertFn: func(u models.User) (*models.User, error) {
			t.Fatal("Insert must not be called when the pre-check hits")
			return nil, nil
		},
	}
	svc := NewUserService(mock)

	_, err := svc.Create(context.Background(), createPayload())
	if !errors.Is(err, repository.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestUserService_Create_DuplicateRaceAtInsert(t *testing.T) {
	// The pre-check passed but another request won the insert; the
	// constraint violation maps to the same error.
	mock := &mockUsers{
		FindByUsernameFn: func(username string) (*models.User, error) {
			return nil, nil
		},
		InsertFn: func(u models.User) (*models.User, error) {
			return nil, repository.ErrDuplicateUsername
		},
	}
	svc := NewUserService(mock)

	_, err := svc.Create(context.Background(), createPayload())
	if !errors.Is(err, repository.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestUserService_Update_HashesNewPassword(t *testing.T) {
	mock := &mockUsers{
		UpdateByIDFn: func(id string, upd repository.UserUpdate) (*models.User, error) {
			return &models.User{ID: id, Username: "exampleUser", Email: "example@user.com", PasswordDigest: *upd.PasswordDigest}, nil
		},
	}
	svc := NewUserService(mock)

	pub, err := svc.Update(context.Background(), "u-1", map[string]any{"password": "newPassword1"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if pub.ID != "u-1" {
		t.Fatalf("unexpected projection: %+v", pub)
	}

	if len(mock.updateCalls) != 1 {
		t.Fatalf("expected 1 UpdateByID call, got %d", len(mock.updateCalls))
	}
	upd := mock.updateCalls[0]
	if upd.Username != nil || upd.Email != nil {
		t.Fatalf("unexpected fields in update: %+v", upd)
	}
	if upd.PasswordDigest == nil || !verifyPassword(*upd.PasswordDigest, "newPassword1") {
		t.Fatalf("password digest missing or not verifying")
	}
}

func TestUserService_Update_UnknownID(t *testing.T) {
	mock := &mockUsers{
		UpdateByIDFn: func(id string, upd repository.UserUpdate) (*models.User, error) {
			return nil, nil
		},
	}
	svc := NewUserService(mock)

	_, err := svc.Update(context.Background(), "missing", map[string]any{"email": "new@user.com"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Update_ValidationFailure(t *testing.T) {
	mock := &mockUsers{
		UpdateByIDFn: func(id string, upd repository.UserUpdate) (*models.User, error) {
			t.Fatal("UpdateByID must not be called for an invalid payload")
			return nil, nil
		},
	}
	svc := NewUserService(mock)

	_, err := svc.Update(context.Background(), "u-1", map[string]any{"username": " spaced "})
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if verr.Rule != validation.RuleUntrimmed {
		t.Fatalf("expected untrimmed rule, got %+v", verr)
	}
}

func TestUserService_GetByID(t *testing.T) {
	mock := &mockUsers{
		FindByIDFn: func(id string) (*models.User, error) {
			if id == "u-1" {
				return &models.User{ID: "u-1", Username: "exampleUser", Email: "example@user.com", PasswordDigest: "digest"}, nil
			}
			return nil, nil
		},
	}
	svc := NewUserService(mock)

	pub, err := svc.GetByID(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if pub.ID != "u-1" || pub.Username != "exampleUser" {
		t.Fatalf("unexpected projection: %+v", pub)
	}

	_, err = svc.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_List(t *testing.T) {
	mock := &mockUsers{
		ListFn: func() ([]models.User, error) {
			return []models.User{
				{ID: "u-1", Username: "a", Email: "a@mail.com", PasswordDigest: "d1"},
				{ID: "u-2", Username: "b", Email: "b@mail.com", PasswordDigest: "d2"},
			}, nil
		},
	}
	svc := NewUserService(mock)

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	// projections only; digests must not appear anywhere
	if users[0].ID != "u-1" || users[1].ID != "u-2" {
		t.Fatalf("unexpected projections: %+v", users)
	}
}

func TestUserService_Delete(t *testing.T) {
	mock := &mockUsers{
		DeleteByIDFn: func(id string) (bool, error) {
			return id == "u-1", nil
		},
	}
	svc := NewUserService(mock)

	ok, err := svc.Delete(context.Background(), "u-1")
	if err != nil || !ok {
		t.Fatalf("expected successful delete, got ok=%v err=%v", ok, err)
	}
	ok, err = svc.Delete(context.Background(), "missing")
	if err != nil || ok {
		t.Fatalf("expected no-op delete, got ok=%v err=%v", ok, err)
	}
}
