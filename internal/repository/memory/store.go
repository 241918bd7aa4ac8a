package memory

import (
	"context"
	"sync"
	"time"

	"github.com/edumarket/tutoring-service/internal/models"
)

// Store держит четыре коллекции платформы в памяти и имитирует задержку сети.
// Это мок-хранилище, замещающее реальную базу данных: единственный источник
// правды при запуске без Postgres и герметичный бэкенд для тестов.
// Каждый вызов репозитория атомарен: мьютекс берётся на время всей операции.
type Store struct {
	mu      sync.Mutex
	latency time.Duration

	users       []models.User
	assignments []models.Assignment
	bids        []models.Bid
	payments    []models.Payment
}

// NewStore создает пустое хранилище с указанной задержкой на операцию.
func NewStore(latency time.Duration) *Store {
	return &Store{latency: latency}
}

// NewSeededStore создает хранилище с демонстрационными данными:
// пять пользователей, задания во всех ключевых статусах, два отклика
// и один завершённый платёж.
func NewSeededStore(latency time.Duration) *Store {
	now := time.Now().UTC()
	day := 24 * time.Hour

	return &Store{
		latency: latency,
		users: []models.User{
			{ID: "1", Name: "Alice Student", Email: "student@test.com", Role: models.RoleStudent},
			{ID: "2", Name: "Bob Tutor", Email: "tutor@test.com", Role: models.RoleTutor},
			{ID: "3", Name: "Charlie Admin", Email: "admin@test.com", Role: models.RoleAdmin},
			{ID: "4", Name: "Diana Tutor", Email: "tutor2@test.com", Role: models.RoleTutor},
			{ID: "5", Name: "Eve Student", Email: "student2@test.com", Role: models.RoleStudent},
		},
		assignments: []models.Assignment{
			{
				ID: "a1", StudentID: "1", StudentName: "Alice Student", Title: "Calculus Homework", Subject: "Math",
				Description: "Need help with chapter 5 problems on differentiation and integration. It is about 10 problems.",
				Deadline:    now.Add(5 * day).Format(time.RFC3339), Budget: 50, Status: models.BiddingAssignment,
				CreatedAt: now.Add(-2 * day),
			},
			{
				ID: "a2", StudentID: "1", StudentName: "Alice Student", Title: "History Essay", Subject: "History",
				Description: "A 5-page essay on the causes of World War II. Requires research and proper citations.",
				Deadline:    now.Add(10 * day).Format(time.RFC3339), Budget: 100, Status: models.InProgressAssignment,
				TutorID:     "2", TutorName: "Bob Tutor",
				CreatedAt: now.Add(-5 * day),
			},
			{
				ID: "a3", StudentID: "1", StudentName: "Alice Student", Title: "Chemistry Lab Report", Subject: "Chemistry",
				Description: "Write up a lab report for the titration experiment. Data and instructions attached.",
				Deadline:    now.Add(2 * day).Format(time.RFC3339), Budget: 75, Status: models.SubmittedAssignment,
				TutorID:     "4", TutorName: "Diana Tutor", SubmittedFileURL: "report.pdf",
				CreatedAt: now.Add(-10 * day),
			},
			{
				ID: "a4", StudentID: "5", StudentName: "Eve Student", Title: "Previous Work", Subject: "Physics",
				Description: "A presentation on Newtons laws of motion.",
				Deadline:    now.Add(-1 * day).Format(time.RFC3339), Budget: 60, Status: models.CompletedAssignment,
				TutorID:     "2", TutorName: "Bob Tutor", SubmittedFileURL: "newton.pptx",
				CreatedAt: now.Add(-20 * day),
			},
		},
		bids: []models.Bid{
			{
				ID: "b1", AssignmentID: "a1", TutorID: "2", TutorName: "Bob Tutor", Amount: 45,
				Proposal:  "I have a PhD in Mathematics and can help you with your calculus homework easily.",
				CreatedAt: now.Add(-1 * day),
			},
			{
				ID: "b2", AssignmentID: "a1", TutorID: "4", TutorName: "Diana Tutor", Amount: 48,
				Proposal:  "I am an experienced math tutor and can guarantee a high grade.",
				CreatedAt: now.Add(-12 * time.Hour),
			},
		},
		payments: []models.Payment{
			{
				ID: "p1", AssignmentID: "a4", AssignmentTitle: "Previous Work", StudentID: "5", StudentName: "Eve Student",
				TutorID: "2", TutorName: "Bob Tutor", Amount: 60, PlatformFee: 6, Payout: 54,
				CreatedAt: now.Add(-20 * day),
			},
		},
	}
}

// Users возвращает репозиторий пользователей поверх хранилища.
func (s *Store) Users() *UserRepository {
	return &UserRepository{store: s}
}

// Assignments возвращает репозиторий заданий поверх хранилища.
func (s *Store) Assignments() *AssignmentRepository {
	return &AssignmentRepository{store: s}
}

// Bids возвращает репозиторий откликов поверх хранилища.
func (s *Store) Bids() *BidRepository {
	return &BidRepository{store: s}
}

// Payments возвращает репозиторий платежей поверх хранилища.
func (s *Store) Payments() *PaymentRepository {
	return &PaymentRepository{store: s}
}

// wait имитирует сетевую задержку, уважая отмену контекста.
func (s *Store) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
