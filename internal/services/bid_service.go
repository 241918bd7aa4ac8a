package services

import (
	"context"

	"github.com/edumarket/tutoring-service/internal/models"
	"github.com/edumarket/tutoring-service/internal/repository"
)

// BidService отвечает за отклики репетиторов на задания.
type BidService struct {
	bids        repository.BidRepository
	assignments repository.AssignmentRepository
	users       repository.UserRepository
}

// NewBidService создает новый экземпляр BidService.
func NewBidService(bids repository.BidRepository, assignments repository.AssignmentRepository, users repository.UserRepository) *BidService {
	return &BidService{bids: bids, assignments: assignments, users: users}
}

// CreateBid создает отклик репетитора на задание. Повторный отклик того же
// репетитора на то же задание отклоняется. Статус задания при этом не
// меняется: пока задание открыто, отклики могут накапливаться.
func (s *BidService) CreateBid(ctx context.Context, assignmentID string, bidReq models.BidRequest, actingUserID string) (*models.Bid, error) {
	actor, err := s.users.GetUserByID(ctx, actingUserID)
	if err != nil {
		return nil, models.NewNotFoundError("user does not exist")
	}
	if actor.Role != models.RoleTutor {
		return nil, models.NewForbiddenError("only tutors can place bids")
	}

	if bidReq.Amount <= 0 {
		return nil, models.NewValidationError("amount must be a positive number")
	}
	if bidReq.Proposal == "" {
		return nil, models.NewValidationError("proposal is required")
	}

	if _, err := s.assignments.GetAssignmentByID(ctx, assignmentID); err != nil {
		return nil, models.NewNotFoundError("assignment not found")
	}

	exists, err := s.bids.BidExists(ctx, assignmentID, actor.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewDuplicateBidError("you have already placed a bid on this assignment")
	}

	return s.bids.CreateBid(ctx, models.Bid{
		AssignmentID: assignmentID,
		TutorID:      actor.ID,
		TutorName:    actor.Name,
		Amount:       bidReq.Amount,
		Proposal:     bidReq.Proposal,
	})
}

// GetBidsForAssignment возвращает отклики по заданию, ранние первыми.
func (s *BidService) GetBidsForAssignment(ctx context.Context, assignmentID string) ([]models.Bid, error) {
	if assignmentID == "" {
		return nil, models.NewValidationError("assignmentId is required")
	}
	return s.bids.GetBidsForAssignment(ctx, assignmentID)
}
