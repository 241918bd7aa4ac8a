package services

import (
	"context"
	"testing"
	"time"

	"github.com/edumarket/tutoring-service/internal/models"
	"github.com/edumarket/tutoring-service/internal/repository/memory"
	"github.com/edumarket/tutoring-service/internal/session"
)

// testEnv собирает сервисы поверх пустого хранилища в памяти без задержек.
type testEnv struct {
	store       *memory.Store
	sessions    *session.MemoryStore
	auth        *AuthService
	assignments *AssignmentService
	bids        *BidService
	analytics   *AnalyticsService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := memory.NewStore(0)
	sessions := session.NewMemoryStore()
	return &testEnv{
		store:       store,
		sessions:    sessions,
		auth:        NewAuthService(store.Users(), sessions),
		assignments: NewAssignmentService(store.Assignments(), store.Bids(), store.Users()),
		bids:        NewBidService(store.Bids(), store.Assignments(), store.Users()),
		analytics:   NewAnalyticsService(store.Users(), store.Assignments(), store.Payments()),
	}
}

func (e *testEnv) register(t *testing.T, name, email string, role models.UserRole) *models.User {
	t.Helper()
	user, err := e.auth.Register(context.Background(), models.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "pwd",
		Role:     role,
	})
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
	return user
}

func (e *testEnv) createAssignment(t *testing.T, student *models.User, title string, budget float64) *models.Assignment {
	t.Helper()
	assignment, err := e.assignments.CreateAssignment(context.Background(), models.AssignmentRequest{
		Title:       title,
		Subject:     "Math",
		Description: "some description",
		Deadline:    time.Now().Add(72 * time.Hour).Format(time.RFC3339),
		Budget:      budget,
	}, student.ID)
	if err != nil {
		t.Fatalf("create assignment %q: %v", title, err)
	}
	return assignment
}

func (e *testEnv) placeBid(t *testing.T, tutor *models.User, assignmentID string, amount float64) *models.Bid {
	t.Helper()
	bid, err := e.bids.CreateBid(context.Background(), assignmentID, models.BidRequest{
		Amount:   amount,
		Proposal: "I can do this",
	}, tutor.ID)
	if err != nil {
		t.Fatalf("place bid on %s: %v", assignmentID, err)
	}
	return bid
}
