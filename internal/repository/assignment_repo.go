package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/edumarket/tutoring-service/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// AssignmentRepository - интерфейс для работы с заданиями.
// Задания никогда не удаляются; статус меняется только вперёд.
type AssignmentRepository interface {
	CreateAssignment(ctx context.Context, assignment models.Assignment) (*models.Assignment, error)
	GetAssignmentByID(ctx context.Context, assignmentID string) (*models.Assignment, error)
	GetStudentAssignments(ctx context.Context, studentID string) ([]models.Assignment, error)
	GetOpenAssignments(ctx context.Context, excludeTutorID string) ([]models.Assignment, error)
	GetTutorAssignments(ctx context.Context, tutorID string, statuses []models.AssignmentStatus) ([]models.Assignment, error)
	GetAllAssignments(ctx context.Context, limit, offset int) ([]models.Assignment, error)
	AssignTutor(ctx context.Context, assignmentID, tutorID, tutorName string) (*models.Assignment, error)
	SetSubmitted(ctx context.Context, assignmentID, fileName string) (*models.Assignment, error)
	CompleteWithPayment(ctx context.Context, assignmentID string, payment models.Payment) (*models.Assignment, error)
}

// PostgresAssignmentRepository - реализация AssignmentRepository для базы данных.
type PostgresAssignmentRepository struct {
	DB *pgxpool.Pool
}

// NewPostgresAssignmentRepository создаёт новый экземпляр PostgresAssignmentRepository.
func NewPostgresAssignmentRepository(db *pgxpool.Pool) *PostgresAssignmentRepository {
	return &PostgresAssignmentRepository{DB: db}
}

const assignmentColumns = `id, student_id, student_name, COALESCE(tutor_id, ''), COALESCE(tutor_name, ''),
	title, subject, description, deadline, budget, COALESCE(file_url, ''), COALESCE(submitted_file_url, ''), status, created_at`

func scanAssignment(row interface{ Scan(...interface{}) error }) (*models.Assignment, error) {
	var assignment models.Assignment
	err := row.Scan(
		&assignment.ID,
		&assignment.StudentID,
		&assignment.StudentName,
		&assignment.TutorID,
		&assignment.TutorName,
		&assignment.Title,
		&assignment.Subject,
		&assignment.Description,
		&assignment.Deadline,
		&assignment.Budget,
		&assignment.FileURL,
		&assignment.SubmittedFileURL,
		&assignment.Status,
		&assignment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// CreateAssignment создает новое задание в статусе "Open for Bids".
func (r *PostgresAssignmentRepository) CreateAssignment(ctx context.Context, assignment models.Assignment) (*models.Assignment, error) {
	newAssignment := assignment
	newAssignment.ID = uuid.New().String()
	newAssignment.Status = models.BiddingAssignment
	newAssignment.CreatedAt = time.Now().UTC()

	insertQuery := `
		INSERT INTO assignment (id, student_id, student_name, title, subject, description, deadline, budget, file_url, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10, $11)`
	_, err := r.DB.Exec(
		ctx,
		insertQuery,
		newAssignment.ID,
		newAssignment.StudentID,
		newAssignment.StudentName,
		newAssignment.Title,
		newAssignment.Subject,
		newAssignment.Description,
		newAssignment.Deadline,
		newAssignment.Budget,
		newAssignment.FileURL,
		newAssignment.Status,
		newAssignment.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert assignment: %w", err)
	}
	return &newAssignment, nil
}

// GetAssignmentByID возвращает задание по его ID.
func (r *PostgresAssignmentRepository) GetAssignmentByID(ctx context.Context, assignmentID string) (*models.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignment WHERE id = $1`
	return scanAssignment(r.DB.QueryRow(ctx, query, assignmentID))
}

// GetStudentAssignments возвращает задания студента, новые первыми.
func (r *PostgresAssignmentRepository) GetStudentAssignments(ctx context.Context, studentID string) ([]models.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignment WHERE student_id = $1 ORDER BY created_at DESC`
	return r.queryAssignments(ctx, query, studentID)
}

// GetOpenAssignments возвращает задания, открытые для откликов, исключая те,
// на которые указанный репетитор уже откликнулся.
func (r *PostgresAssignmentRepository) GetOpenAssignments(ctx context.Context, excludeTutorID string) ([]models.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignment
		WHERE status = $1
		AND NOT EXISTS (SELECT 1 FROM bid WHERE bid.assignment_id = assignment.id AND bid.tutor_id = $2)
		ORDER BY created_at DESC`
	return r.queryAssignments(ctx, query, models.BiddingAssignment, excludeTutorID)
}

// GetTutorAssignments возвращает задания репетитора в указанных статусах.
func (r *PostgresAssignmentRepository) GetTutorAssignments(ctx context.Context, tutorID string, statuses []models.AssignmentStatus) ([]models.Assignment, error) {
	statusValues := make([]string, 0, len(statuses))
	for _, status := range statuses {
		statusValues = append(statusValues, string(status))
	}

	query := `SELECT ` + assignmentColumns + ` FROM assignment
		WHERE tutor_id = $1 AND status = ANY($2) ORDER BY created_at DESC`
	return r.queryAssignments(ctx, query, tutorID, pq.Array(statusValues))
}

// GetAllAssignments возвращает все задания, новые первыми. limit = 0 означает без ограничения.
func (r *PostgresAssignmentRepository) GetAllAssignments(ctx context.Context, limit, offset int) ([]models.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignment ORDER BY created_at DESC`
	var args []interface{}
	argIndex := 1

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, limit)
		argIndex++
	}
	if offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIndex)
		args = append(args, offset)
	}
	return r.queryAssignments(ctx, query, args...)
}

// AssignTutor назначает исполнителя и переводит задание в статус "In Progress".
func (r *PostgresAssignmentRepository) AssignTutor(ctx context.Context, assignmentID, tutorID, tutorName string) (*models.Assignment, error) {
	updateQuery := `UPDATE assignment SET status = $1, tutor_id = $2, tutor_name = $3 WHERE id = $4
		RETURNING ` + assignmentColumns
	return scanAssignment(r.DB.QueryRow(ctx, updateQuery, models.InProgressAssignment, tutorID, tutorName, assignmentID))
}

// SetSubmitted переводит задание в статус "Submitted" и сохраняет файл работы.
func (r *PostgresAssignmentRepository) SetSubmitted(ctx context.Context, assignmentID, fileName string) (*models.Assignment, error) {
	updateQuery := `UPDATE assignment SET status = $1, submitted_file_url = $2 WHERE id = $3
		RETURNING ` + assignmentColumns
	return scanAssignment(r.DB.QueryRow(ctx, updateQuery, models.SubmittedAssignment, fileName, assignmentID))
}

// CompleteWithPayment переводит задание в статус "Completed" и записывает
// платёж в одной транзакции: либо происходит и то и другое, либо ничего.
func (r *PostgresAssignmentRepository) CompleteWithPayment(ctx context.Context, assignmentID string, payment models.Payment) (*models.Assignment, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	updateQuery := `UPDATE assignment SET status = $1 WHERE id = $2
		RETURNING ` + assignmentColumns
	assignment, err := scanAssignment(tx.QueryRow(ctx, updateQuery, models.CompletedAssignment, assignmentID))
	if err != nil {
		return nil, err
	}

	newPayment := payment
	newPayment.ID = uuid.New().String()
	newPayment.CreatedAt = time.Now().UTC()
	insertQuery := `INSERT INTO payment (id, assignment_id, assignment_title, student_id, student_name, tutor_id, tutor_name, amount, platform_fee, payout, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = tx.Exec(
		ctx,
		insertQuery,
		newPayment.ID,
		newPayment.AssignmentID,
		newPayment.AssignmentTitle,
		newPayment.StudentID,
		newPayment.StudentName,
		newPayment.TutorID,
		newPayment.TutorName,
		newPayment.Amount,
		newPayment.PlatformFee,
		newPayment.Payout,
		newPayment.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (r *PostgresAssignmentRepository) queryAssignments(ctx context.Context, query string, args ...interface{}) ([]models.Assignment, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := []models.Assignment{}
	for rows.Next() {
		assignment, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, *assignment)
	}
	return assignments, nil
}
