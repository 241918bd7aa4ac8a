package services

import (
	"context"

	"github.com/edumarket/tutoring-service/internal/models"
	"github.com/edumarket/tutoring-service/internal/repository"
)

// recentPaymentsLimit - сколько последних платежей попадает в сводку.
const recentPaymentsLimit = 20

// AnalyticsService - запросы администратора: списки и сводная аналитика.
type AnalyticsService struct {
	users       repository.UserRepository
	assignments repository.AssignmentRepository
	payments    repository.PaymentRepository
}

// NewAnalyticsService создает новый экземпляр AnalyticsService.
func NewAnalyticsService(users repository.UserRepository, assignments repository.AssignmentRepository, payments repository.PaymentRepository) *AnalyticsService {
	return &AnalyticsService{users: users, assignments: assignments, payments: payments}
}

// GetAllUsers возвращает список пользователей; доступно только администратору.
func (s *AnalyticsService) GetAllUsers(ctx context.Context, actingUserID string, limit, offset int) ([]models.User, error) {
	if err := s.requireAdmin(ctx, actingUserID); err != nil {
		return nil, err
	}
	return s.users.GetAllUsers(ctx, limit, offset)
}

// GetAllAssignments возвращает все задания; доступно только администратору.
func (s *AnalyticsService) GetAllAssignments(ctx context.Context, actingUserID string, limit, offset int) ([]models.Assignment, error) {
	if err := s.requireAdmin(ctx, actingUserID); err != nil {
		return nil, err
	}
	return s.assignments.GetAllAssignments(ctx, limit, offset)
}

// GetPlatformAnalytics возвращает сводку: число пользователей по ролям,
// суммарный оборот, суммарную комиссию платформы и последние платежи.
func (s *AnalyticsService) GetPlatformAnalytics(ctx context.Context, actingUserID string) (*models.PlatformAnalytics, error) {
	if err := s.requireAdmin(ctx, actingUserID); err != nil {
		return nil, err
	}

	totalUsers, err := s.users.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	studentCount, err := s.users.CountUsersByRole(ctx, models.RoleStudent)
	if err != nil {
		return nil, err
	}
	tutorCount, err := s.users.CountUsersByRole(ctx, models.RoleTutor)
	if err != nil {
		return nil, err
	}

	totalVolume, platformRevenue, err := s.payments.GetPaymentTotals(ctx)
	if err != nil {
		return nil, err
	}
	recentPayments, err := s.payments.GetRecentPayments(ctx, recentPaymentsLimit)
	if err != nil {
		return nil, err
	}

	return &models.PlatformAnalytics{
		TotalUsers:      totalUsers,
		StudentCount:    studentCount,
		TutorCount:      tutorCount,
		TotalVolume:     totalVolume,
		PlatformRevenue: platformRevenue,
		RecentPayments:  recentPayments,
	}, nil
}

func (s *AnalyticsService) requireAdmin(ctx context.Context, actingUserID string) error {
	actor, err := s.users.GetUserByID(ctx, actingUserID)
	if err != nil {
		return models.NewNotFoundError("user does not exist")
	}
	if actor.Role != models.RoleAdmin {
		return models.NewForbiddenError("only admins can access platform analytics")
	}
	return nil
}
