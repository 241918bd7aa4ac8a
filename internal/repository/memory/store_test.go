package memory

import (
	"context"
	"testing"
	"time"

	"github.com/edumarket/tutoring-service/internal/models"
)

func TestSeededStore(t *testing.T) {
	store := NewSeededStore(0)
	ctx := context.Background()

	users, err := store.Users().GetAllUsers(ctx, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 5 {
		t.Errorf("got %d users, want 5", len(users))
	}

	assignments, err := store.Assignments().GetAllAssignments(ctx, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(assignments) != 4 {
		t.Errorf("got %d assignments, want 4", len(assignments))
	}

	bids, err := store.Bids().GetBidsForAssignment(ctx, "a1")
	if err != nil {
		t.Fatal(err)
	}
	if len(bids) != 2 {
		t.Fatalf("got %d bids for a1, want 2", len(bids))
	}
	if bids[0].ID != "b1" || bids[1].ID != "b2" {
		t.Errorf("bids out of order: %s, %s", bids[0].ID, bids[1].ID)
	}

	payments, err := store.Payments().GetRecentPayments(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(payments) != 1 {
		t.Fatalf("got %d payments, want 1", len(payments))
	}
	if payments[0].Amount != 60 || payments[0].PlatformFee != 6 || payments[0].Payout != 54 {
		t.Errorf("seeded payment = %.2f/%.2f/%.2f, want 60.00/6.00/54.00",
			payments[0].Amount, payments[0].PlatformFee, payments[0].Payout)
	}
}

func TestStore_OpenAssignmentsExcludeBid(t *testing.T) {
	store := NewSeededStore(0)
	ctx := context.Background()

	// Оба сеянных отклика относятся к a1; для Bob (id 2) лента пуста.
	open, err := store.Assignments().GetOpenAssignments(ctx, "2")
	if err != nil {
		t.Fatal(err)
	}
	if len(open) != 0 {
		t.Errorf("got %d open assignments for tutor 2, want 0", len(open))
	}

	open, err = store.Assignments().GetOpenAssignments(ctx, "some-new-tutor")
	if err != nil {
		t.Fatal(err)
	}
	if len(open) != 1 || open[0].ID != "a1" {
		t.Errorf("open assignments = %v, want exactly a1", open)
	}
}

func TestStore_CountUsersByRole(t *testing.T) {
	store := NewSeededStore(0)
	ctx := context.Background()

	tests := []struct {
		role models.UserRole
		want int
	}{
		{models.RoleStudent, 2},
		{models.RoleTutor, 2},
		{models.RoleAdmin, 1},
	}
	for _, tt := range tests {
		got, err := store.Users().CountUsersByRole(ctx, tt.role)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("CountUsersByRole(%s) = %d, want %d", tt.role, got, tt.want)
		}
	}
}

// Пустые выборки сериализуются как [], а не null.
func TestStore_EmptyListsAreNotNil(t *testing.T) {
	store := NewStore(0)
	ctx := context.Background()

	assignments, err := store.Assignments().GetStudentAssignments(ctx, "missing")
	if err != nil {
		t.Fatal(err)
	}
	if assignments == nil {
		t.Error("GetStudentAssignments() returned nil slice for empty result")
	}

	open, err := store.Assignments().GetOpenAssignments(ctx, "missing")
	if err != nil {
		t.Fatal(err)
	}
	if open == nil {
		t.Error("GetOpenAssignments() returned nil slice for empty result")
	}

	bids, err := store.Bids().GetBidsForAssignment(ctx, "missing")
	if err != nil {
		t.Fatal(err)
	}
	if bids == nil {
		t.Error("GetBidsForAssignment() returned nil slice for empty result")
	}

	users, err := store.Users().GetAllUsers(ctx, 5, 100)
	if err != nil {
		t.Fatal(err)
	}
	if users == nil {
		t.Error("GetAllUsers() returned nil slice past the last offset")
	}

	payments, err := store.Payments().GetRecentPayments(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if payments == nil {
		t.Error("GetRecentPayments() returned nil slice for empty result")
	}
}

func TestStore_LatencyRespectsContext(t *testing.T) {
	store := NewSeededStore(500 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := store.Users().GetUserByID(ctx, "1")
	if err == nil {
		t.Fatal("expected context error, got nil")
	}
	if elapsed := time.Since(start); elapsed >= 500*time.Millisecond {
		t.Errorf("call waited full latency (%s) despite cancelled context", elapsed)
	}
}

func TestStore_CreateUserAssignsID(t *testing.T) {
	store := NewStore(0)
	ctx := context.Background()

	created, err := store.Users().CreateUser(ctx, models.User{
		Name:  "Alice",
		Email: "alice@test.com",
		Role:  models.RoleStudent,
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == "" {
		t.Error("created user has empty ID")
	}

	found, err := store.Users().GetUserByEmail(ctx, "alice@test.com")
	if err != nil {
		t.Fatal(err)
	}
	if found.ID != created.ID {
		t.Errorf("lookup by email returned %s, want %s", found.ID, created.ID)
	}

	exists, err := store.Users().UserExistsByEmail(ctx, "alice@test.com")
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Error("UserExistsByEmail() = false after create")
	}
}
