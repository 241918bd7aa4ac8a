package repository

import (
	"context"
	"time"

	"github.com/edumarket/tutoring-service/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BidRepository - интерфейс для работы с откликами.
type BidRepository interface {
	CreateBid(ctx context.Context, bid models.Bid) (*models.Bid, error)
	GetBidByID(ctx context.Context, bidID string) (*models.Bid, error)
	GetBidsForAssignment(ctx context.Context, assignmentID string) ([]models.Bid, error)
	BidExists(ctx context.Context, assignmentID, tutorID string) (bool, error)
}

// PostgresBidRepository - реализация BidRepository для базы данных.
type PostgresBidRepository struct {
	DB *pgxpool.Pool
}

// NewPostgresBidRepository создает новый экземпляр PostgresBidRepository.
func NewPostgresBidRepository(db *pgxpool.Pool) *PostgresBidRepository {
	return &PostgresBidRepository{DB: db}
}

// CreateBid создает новый отклик.
func (r *PostgresBidRepository) CreateBid(ctx context.Context, bid models.Bid) (*models.Bid, error) {
	newBid := bid
	newBid.ID = uuid.New().String()
	newBid.CreatedAt = time.Now().UTC()

	insertQuery := `INSERT INTO bid (id, assignment_id, tutor_id, tutor_name, amount, proposal, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.Exec(
		ctx,
		insertQuery,
		newBid.ID,
		newBid.AssignmentID,
		newBid.TutorID,
		newBid.TutorName,
		newBid.Amount,
		newBid.Proposal,
		newBid.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &newBid, nil
}

// GetBidByID возвращает отклик по его ID.
func (r *PostgresBidRepository) GetBidByID(ctx context.Context, bidID string) (*models.Bid, error) {
	var bid models.Bid
	query := `SELECT id, assignment_id, tutor_id, tutor_name, amount, proposal, created_at
		FROM bid WHERE id = $1`
	err := r.DB.QueryRow(ctx, query, bidID).Scan(
		&bid.ID,
		&bid.AssignmentID,
		&bid.TutorID,
		&bid.TutorName,
		&bid.Amount,
		&bid.Proposal,
		&bid.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &bid, nil
}

// GetBidsForAssignment возвращает отклики по заданию, ранние первыми.
func (r *PostgresBidRepository) GetBidsForAssignment(ctx context.Context, assignmentID string) ([]models.Bid, error) {
	query := `SELECT id, assignment_id, tutor_id, tutor_name, amount, proposal, created_at
		FROM bid WHERE assignment_id = $1 ORDER BY created_at`
	rows, err := r.DB.Query(ctx, query, assignmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bids := []models.Bid{}
	for rows.Next() {
		var bid models.Bid
		if err := rows.Scan(
			&bid.ID,
			&bid.AssignmentID,
			&bid.TutorID,
			&bid.TutorName,
			&bid.Amount,
			&bid.Proposal,
			&bid.CreatedAt); err != nil {
			return nil, err
		}
		bids = append(bids, bid)
	}
	return bids, nil
}

// BidExists проверяет, откликался ли репетитор на задание.
func (r *PostgresBidRepository) BidExists(ctx context.Context, assignmentID, tutorID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM bid WHERE assignment_id = $1 AND tutor_id = $2)`
	err := r.DB.QueryRow(ctx, query, assignmentID, tutorID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
