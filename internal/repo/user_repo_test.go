package repo

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestCreateAndLookupUser(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()

	u, err := CreateUser(ctx, db, "alice@example.com", "alice", "Alice", "hash")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if u.ID == "" {
		t.Fatal("empty user ID")
	}

	byID, err := GetUserByID(ctx, db, u.ID)
	if err != nil || byID.Email != "alice@example.com" {
		t.Fatalf("GetUserByID: %v %+v", err, byID)
	}
	byEmail, err := GetUserByEmail(ctx, db, "alice@example.com")
	if err != nil || byEmail.ID != u.ID {
		t.Fatalf("GetUserByEmail: %v %+v", err, byEmail)
	}
	byName, err := GetUserByUsername(ctx, db, "alice")
	if err != nil || byName.ID != u.ID {
		t.Fatalf("GetUserByUsername: %v %+v", err, byName)
	}

	if _, err := GetUserByID(ctx, db, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing ID err = %v; want ErrNotFound", err)
	}
	if _, err := GetUserByEmail(ctx, db, "ghost@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing email err = %v; want ErrNotFound", err)
	}
	if _, err := GetUserByUsername(ctx, db, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing username err = %v; want ErrNotFound", err)
	}
}

func TestCreateUser_UniqueConstraints(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()

	if _, err := CreateUser(ctx, db, "alice@example.com", "alice", "Alice", "hash"); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	_, err := CreateUser(ctx, db, "alice@example.com", "other", "Other", "hash")
	if err == nil || !strings.Contains(strings.ToLower(err.Error()), "unique") {
		t.Errorf("duplicate email err = %v; want unique violation", err)
	}
	_, err = CreateUser(ctx, db, "other@example.com", "alice", "Other", "hash")
	if err == nil || !strings.Contains(strings.ToLower(err.Error()), "unique") {
		t.Errorf("duplicate username err = %v; want unique violation", err)
	}
}
