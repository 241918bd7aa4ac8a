package services

import (
	"context"
	"testing"

	"github.com/edumarket/tutoring-service/internal/models"
)

func TestBidService_CreateBid(t *testing.T) {
	env := newTestEnv(t)
	student := env.register(t, "Alice", "alice@test.com", models.RoleStudent)
	tutor := env.register(t, "Bob", "bob@test.com", models.RoleTutor)
	assignment := env.createAssignment(t, student, "Calculus Homework", 50)

	tests := []struct {
		name         string
		assignmentID string
		req          models.BidRequest
		actorID      string
		wantKind     models.ErrorKind
	}{
		{
			name:         "valid bid",
			assignmentID: assignment.ID,
			req:          models.BidRequest{Amount: 45, Proposal: "I have a PhD in Mathematics"},
			actorID:      tutor.ID,
		},
		{
			name:         "student cannot bid",
			assignmentID: assignment.ID,
			req:          models.BidRequest{Amount: 45, Proposal: "let me try"},
			actorID:      student.ID,
			wantKind:     models.KindForbidden,
		},
		{
			name:         "missing assignment",
			assignmentID: "no-such-assignment",
			req:          models.BidRequest{Amount: 45, Proposal: "hello"},
			actorID:      tutor.ID,
			wantKind:     models.KindNotFound,
		},
		{
			name:         "non-positive amount",
			assignmentID: assignment.ID,
			req:          models.BidRequest{Amount: 0, Proposal: "free of charge"},
			actorID:      tutor.ID,
			wantKind:     models.KindValidation,
		},
		{
			name:         "empty proposal",
			assignmentID: assignment.ID,
			req:          models.BidRequest{Amount: 45},
			actorID:      tutor.ID,
			wantKind:     models.KindValidation,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bid, err := env.bids.CreateBid(context.Background(), tt.assignmentID, tt.req, tt.actorID)
			if tt.wantKind != "" {
				if !models.IsKind(err, tt.wantKind) {
					t.Fatalf("CreateBid() error = %v, want kind %s", err, tt.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateBid() error = %v", err)
			}
			if bid.TutorID != tutor.ID || bid.TutorName != tutor.Name {
				t.Errorf("CreateBid() tutor = %s/%s, want %s/%s", bid.TutorID, bid.TutorName, tutor.ID, tutor.Name)
			}
		})
	}
}

func TestBidService_CreateBid_Duplicate(t *testing.T) {
	env := newTestEnv(t)
	student := env.register(t, "Alice", "alice@test.com", models.RoleStudent)
	tutor := env.register(t, "Bob", "bob@test.com", models.RoleTutor)
	assignment := env.createAssignment(t, student, "History Essay", 100)

	env.placeBid(t, tutor, assignment.ID, 45)

	_, err := env.bids.CreateBid(context.Background(), assignment.ID, models.BidRequest{
		Amount:   40,
		Proposal: "second try, lower price",
	}, tutor.ID)
	if !models.IsKind(err, models.KindDuplicateBid) {
		t.Fatalf("CreateBid() error = %v, want kind %s", err, models.KindDuplicateBid)
	}

	bids, err := env.bids.GetBidsForAssignment(context.Background(), assignment.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(bids) != 1 {
		t.Errorf("bid collection changed on duplicate: got %d bids, want 1", len(bids))
	}
}

func TestBidService_GetBidsForAssignment_Order(t *testing.T) {
	env := newTestEnv(t)
	student := env.register(t, "Alice", "alice@test.com", models.RoleStudent)
	first := env.register(t, "Bob", "bob@test.com", models.RoleTutor)
	second := env.register(t, "Diana", "diana@test.com", models.RoleTutor)
	assignment := env.createAssignment(t, student, "Chemistry Lab Report", 75)

	env.placeBid(t, first, assignment.ID, 45)
	env.placeBid(t, second, assignment.ID, 48)

	bids, err := env.bids.GetBidsForAssignment(context.Background(), assignment.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(bids) != 2 {
		t.Fatalf("got %d bids, want 2", len(bids))
	}
	// Ранние отклики первыми.
	if bids[0].TutorID != first.ID || bids[1].TutorID != second.ID {
		t.Errorf("bids out of order: %s, %s", bids[0].TutorID, bids[1].TutorID)
	}
}

func TestBidService_TutorFeedExcludesBidAssignments(t *testing.T) {
	env := newTestEnv(t)
	student := env.register(t, "Alice", "alice@test.com", models.RoleStudent)
	tutor := env.register(t, "Bob", "bob@test.com", models.RoleTutor)

	withBid := env.createAssignment(t, student, "Calculus Homework", 50)
	open := env.createAssignment(t, student, "History Essay", 100)

	env.placeBid(t, tutor, withBid.ID, 45)

	feed, err := env.assignments.GetAssignments(context.Background(), tutor.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(feed) != 1 {
		t.Fatalf("got %d open assignments, want 1", len(feed))
	}
	if feed[0].ID != open.ID {
		t.Errorf("tutor feed contains %s, want %s", feed[0].ID, open.ID)
	}
}
