package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/edumarket/tutoring-service/internal/models"

	"github.com/google/uuid"
)

// BidRepository - реализация repository.BidRepository в памяти.
type BidRepository struct {
	store *Store
}

// CreateBid создает новый отклик.
func (r *BidRepository) CreateBid(ctx context.Context, bid models.Bid) (*models.Bid, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	newBid := bid
	newBid.ID = uuid.New().String()
	newBid.CreatedAt = time.Now().UTC()
	r.store.bids = append(r.store.bids, newBid)
	return &newBid, nil
}

// GetBidByID возвращает отклик по его ID.
func (r *BidRepository) GetBidByID(ctx context.Context, bidID string) (*models.Bid, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, bid := range r.store.bids {
		if bid.ID == bidID {
			found := bid
			return &found, nil
		}
	}
	return nil, fmt.Errorf("bid %s not found", bidID)
}

// GetBidsForAssignment возвращает отклики по заданию, ранние первыми.
func (r *BidRepository) GetBidsForAssignment(ctx context.Context, assignmentID string) ([]models.Bid, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	bids := []models.Bid{}
	for _, bid := range r.store.bids {
		if bid.AssignmentID == assignmentID {
			bids = append(bids, bid)
		}
	}
	sort.SliceStable(bids, func(i, j int) bool { return bids[i].CreatedAt.Before(bids[j].CreatedAt) })
	return bids, nil
}

// BidExists проверяет, откликался ли репетитор на задание.
func (r *BidRepository) BidExists(ctx context.Context, assignmentID, tutorID string) (bool, error) {
	if err := r.store.wait(ctx); err != nil {
		return false, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, bid := range r.store.bids {
		if bid.AssignmentID == assignmentID && bid.TutorID == tutorID {
			return true, nil
		}
	}
	return false, nil
}
