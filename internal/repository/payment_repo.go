package repository

import (
	"context"

	"github.com/edumarket/tutoring-service/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PaymentRepository - интерфейс для чтения журнала платежей.
// Журнал только пополняется: запись создаётся при завершении задания
// (AssignmentRepository.CompleteWithPayment), не обновляется и не удаляется.
type PaymentRepository interface {
	GetRecentPayments(ctx context.Context, limit int) ([]models.Payment, error)
	GetPaymentTotals(ctx context.Context) (totalVolume, platformRevenue float64, err error)
}

// PostgresPaymentRepository - реализация PaymentRepository для базы данных.
type PostgresPaymentRepository struct {
	DB *pgxpool.Pool
}

// NewPostgresPaymentRepository создает новый экземпляр PostgresPaymentRepository.
func NewPostgresPaymentRepository(db *pgxpool.Pool) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{DB: db}
}

// GetRecentPayments возвращает последние платежи, новые первыми.
// limit = 0 означает без ограничения.
func (r *PostgresPaymentRepository) GetRecentPayments(ctx context.Context, limit int) ([]models.Payment, error) {
	query := `SELECT id, assignment_id, assignment_title, student_id, student_name, tutor_id, tutor_name, amount, platform_fee, payout, created_at
		FROM payment ORDER BY created_at DESC`
	var args []interface{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		var payment models.Payment
		if err := rows.Scan(
			&payment.ID,
			&payment.AssignmentID,
			&payment.AssignmentTitle,
			&payment.StudentID,
			&payment.StudentName,
			&payment.TutorID,
			&payment.TutorName,
			&payment.Amount,
			&payment.PlatformFee,
			&payment.Payout,
			&payment.CreatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, nil
}

// GetPaymentTotals возвращает суммарный оборот и суммарную комиссию платформы.
func (r *PostgresPaymentRepository) GetPaymentTotals(ctx context.Context) (float64, float64, error) {
	var totalVolume, platformRevenue float64
	query := `SELECT COALESCE(SUM(amount), 0), COALESCE(SUM(platform_fee), 0) FROM payment`
	err := r.DB.QueryRow(ctx, query).Scan(&totalVolume, &platformRevenue)
	if err != nil {
		return 0, 0, err
	}
	return totalVolume, platformRevenue, nil
}
