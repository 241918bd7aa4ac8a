package services

import (
	"context"

	"github.com/edumarket/tutoring-service/internal/models"
	"github.com/edumarket/tutoring-service/internal/repository"
	"github.com/edumarket/tutoring-service/internal/utils"
)

// AssignmentService - машина состояний задания: создание, принятие отклика,
// сдача работы, завершение с расчётом комиссии. Ни один переход не
// откатывает статус назад и ничего не удаляет.
type AssignmentService struct {
	assignments repository.AssignmentRepository
	bids        repository.BidRepository
	users       repository.UserRepository
}

// NewAssignmentService создает новый экземпляр AssignmentService.
func NewAssignmentService(
	assignments repository.AssignmentRepository,
	bids repository.BidRepository,
	users repository.UserRepository,
) *AssignmentService {
	return &AssignmentService{
		assignments: assignments,
		bids:        bids,
		users:       users,
	}
}

// CreateAssignment создает задание от имени студента в статусе "Open for Bids".
func (s *AssignmentService) CreateAssignment(ctx context.Context, assignmentReq models.AssignmentRequest, actingUserID string) (*models.Assignment, error) {
	actor, err := s.users.GetUserByID(ctx, actingUserID)
	if err != nil {
		return nil, models.NewNotFoundError("user does not exist")
	}
	if actor.Role != models.RoleStudent {
		return nil, models.NewForbiddenError("only students can create assignments")
	}

	if assignmentReq.Title == "" || assignmentReq.Subject == "" || assignmentReq.Description == "" || assignmentReq.Deadline == "" {
		return nil, models.NewValidationError("missing required fields")
	}
	if assignmentReq.Budget <= 0 {
		return nil, models.NewValidationError("budget must be a positive number")
	}

	return s.assignments.CreateAssignment(ctx, models.Assignment{
		StudentID:   actor.ID,
		StudentName: actor.Name,
		Title:       assignmentReq.Title,
		Subject:     assignmentReq.Subject,
		Description: assignmentReq.Description,
		Deadline:    assignmentReq.Deadline,
		Budget:      assignmentReq.Budget,
		FileURL:     assignmentReq.FileURL,
	})
}

// GetAssignments возвращает задания в объёме, доступном роли пользователя:
// студент видит свои, репетитор - открытые без своих откликов,
// администратор - все.
func (s *AssignmentService) GetAssignments(ctx context.Context, actingUserID string) ([]models.Assignment, error) {
	actor, err := s.users.GetUserByID(ctx, actingUserID)
	if err != nil {
		return nil, models.NewNotFoundError("user does not exist")
	}

	switch actor.Role {
	case models.RoleStudent:
		return s.assignments.GetStudentAssignments(ctx, actor.ID)
	case models.RoleTutor:
		return s.assignments.GetOpenAssignments(ctx, actor.ID)
	case models.RoleAdmin:
		return s.assignments.GetAllAssignments(ctx, 0, 0)
	}
	return []models.Assignment{}, nil
}

// AcceptBid принимает отклик: задание переходит в "In Progress",
// исполнитель копируется из отклика. Повторное принятие отклика по заданию,
// уже находящемуся в работе, не отклоняется: назначение исполнителя молча
// перезаписывается (last-write-wins, поведение исходной системы).
func (s *AssignmentService) AcceptBid(ctx context.Context, assignmentID, bidID, actingUserID string) (*models.Assignment, error) {
	assignment, err := s.assignments.GetAssignmentByID(ctx, assignmentID)
	if err != nil {
		return nil, models.NewNotFoundError("assignment not found")
	}
	if assignment.StudentID != actingUserID {
		return nil, models.NewForbiddenError("only the assignment owner can accept bids")
	}

	bid, err := s.bids.GetBidByID(ctx, bidID)
	if err != nil {
		return nil, models.NewNotFoundError("bid not found")
	}
	if bid.AssignmentID != assignmentID {
		return nil, models.NewValidationError("bid does not belong to this assignment")
	}

	return s.assignments.AssignTutor(ctx, assignmentID, bid.TutorID, bid.TutorName)
}

// SubmitWork сдаёт работу: задание переходит в "Submitted",
// имя файла сохраняется в submittedFileUrl.
func (s *AssignmentService) SubmitWork(ctx context.Context, assignmentID, fileName, actingUserID string) (*models.Assignment, error) {
	if fileName == "" {
		return nil, models.NewValidationError("fileName is required")
	}

	assignment, err := s.assignments.GetAssignmentByID(ctx, assignmentID)
	if err != nil {
		return nil, models.NewNotFoundError("assignment not found")
	}
	if assignment.TutorID != actingUserID {
		return nil, models.NewForbiddenError("only the assigned tutor can submit work")
	}

	return s.assignments.SetSubmitted(ctx, assignmentID, fileName)
}

// CompleteAssignment завершает задание и создает ровно одну запись о платеже:
// комиссия платформы - 10% от бюджета с округлением до центов,
// выплата исполнителю - остаток. Смена статуса и запись платежа выполняются
// одной операцией хранилища: при ошибке не остаётся ни того, ни другого.
func (s *AssignmentService) CompleteAssignment(ctx context.Context, assignmentID, actingUserID string) (*models.Assignment, error) {
	assignment, err := s.assignments.GetAssignmentByID(ctx, assignmentID)
	if err != nil {
		return nil, models.NewNotFoundError("assignment not found")
	}
	if assignment.StudentID != actingUserID {
		return nil, models.NewForbiddenError("only the assignment owner can complete it")
	}
	if assignment.TutorID == "" || assignment.TutorName == "" {
		return nil, models.NewMissingTutorError("assignment has no tutor")
	}

	platformFee := utils.RoundCents(assignment.Budget * models.PlatformFeeRate)
	return s.assignments.CompleteWithPayment(ctx, assignmentID, models.Payment{
		AssignmentID:    assignment.ID,
		AssignmentTitle: assignment.Title,
		StudentID:       assignment.StudentID,
		StudentName:     assignment.StudentName,
		TutorID:         assignment.TutorID,
		TutorName:       assignment.TutorName,
		Amount:          assignment.Budget,
		PlatformFee:     platformFee,
		Payout:          utils.RoundCents(assignment.Budget - platformFee),
	})
}

// GetTutorAssignments возвращает задания репетитора, разбитые на активные
// {In Progress, Submitted} и завершённые {Completed, Disputed}.
func (s *AssignmentService) GetTutorAssignments(ctx context.Context, tutorID string) (*models.TutorAssignments, error) {
	if tutorID == "" {
		return nil, models.NewValidationError("tutorId is required")
	}

	active, err := s.assignments.GetTutorAssignments(ctx, tutorID, []models.AssignmentStatus{
		models.InProgressAssignment,
		models.SubmittedAssignment,
	})
	if err != nil {
		return nil, err
	}

	completed, err := s.assignments.GetTutorAssignments(ctx, tutorID, []models.AssignmentStatus{
		models.CompletedAssignment,
		models.DisputedAssignment,
	})
	if err != nil {
		return nil, err
	}

	return &models.TutorAssignments{Active: active, Completed: completed}, nil
}
