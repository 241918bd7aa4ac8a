package memory

import (
	"context"
	"sort"

	"github.com/edumarket/tutoring-service/internal/models"
)

// PaymentRepository - реализация repository.PaymentRepository в памяти.
// Платежи появляются только через AssignmentRepository.CompleteWithPayment.
type PaymentRepository struct {
	store *Store
}

// GetRecentPayments возвращает последние платежи, новые первыми.
func (r *PaymentRepository) GetRecentPayments(ctx context.Context, limit int) ([]models.Payment, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	payments := make([]models.Payment, len(r.store.payments))
	copy(payments, r.store.payments)
	sort.Slice(payments, func(i, j int) bool { return payments[i].CreatedAt.After(payments[j].CreatedAt) })

	if limit > 0 && limit < len(payments) {
		payments = payments[:limit]
	}
	return payments, nil
}

// GetPaymentTotals возвращает суммарный оборот и суммарную комиссию платформы.
func (r *PaymentRepository) GetPaymentTotals(ctx context.Context) (float64, float64, error) {
	if err := r.store.wait(ctx); err != nil {
		return 0, 0, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var totalVolume, platformRevenue float64
	for _, payment := range r.store.payments {
		totalVolume += payment.Amount
		platformRevenue += payment.PlatformFee
	}
	return totalVolume, platformRevenue, nil
}
