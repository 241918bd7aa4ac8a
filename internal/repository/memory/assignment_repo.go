package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/edumarket/tutoring-service/internal/models"

	"github.com/google/uuid"
)

// AssignmentRepository - реализация repository.AssignmentRepository в памяти.
type AssignmentRepository struct {
	store *Store
}

// CreateAssignment создает новое задание в статусе "Open for Bids".
func (r *AssignmentRepository) CreateAssignment(ctx context.Context, assignment models.Assignment) (*models.Assignment, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	newAssignment := assignment
	newAssignment.ID = uuid.New().String()
	newAssignment.Status = models.BiddingAssignment
	newAssignment.CreatedAt = time.Now().UTC()
	r.store.assignments = append(r.store.assignments, newAssignment)
	return &newAssignment, nil
}

// GetAssignmentByID возвращает задание по его ID.
func (r *AssignmentRepository) GetAssignmentByID(ctx context.Context, assignmentID string) (*models.Assignment, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	index := r.indexOf(assignmentID)
	if index < 0 {
		return nil, fmt.Errorf("assignment %s not found", assignmentID)
	}
	found := r.store.assignments[index]
	return &found, nil
}

// GetStudentAssignments возвращает задания студента, новые первыми.
func (r *AssignmentRepository) GetStudentAssignments(ctx context.Context, studentID string) ([]models.Assignment, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	assignments := []models.Assignment{}
	for _, assignment := range r.store.assignments {
		if assignment.StudentID == studentID {
			assignments = append(assignments, assignment)
		}
	}
	sortNewestFirst(assignments)
	return assignments, nil
}

// GetOpenAssignments возвращает задания, открытые для откликов, исключая те,
// на которые указанный репетитор уже откликнулся.
func (r *AssignmentRepository) GetOpenAssignments(ctx context.Context, excludeTutorID string) ([]models.Assignment, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	alreadyBid := make(map[string]bool)
	for _, bid := range r.store.bids {
		if bid.TutorID == excludeTutorID {
			alreadyBid[bid.AssignmentID] = true
		}
	}

	assignments := []models.Assignment{}
	for _, assignment := range r.store.assignments {
		if assignment.Status == models.BiddingAssignment && !alreadyBid[assignment.ID] {
			assignments = append(assignments, assignment)
		}
	}
	sortNewestFirst(assignments)
	return assignments, nil
}

// GetTutorAssignments возвращает задания репетитора в указанных статусах.
func (r *AssignmentRepository) GetTutorAssignments(ctx context.Context, tutorID string, statuses []models.AssignmentStatus) ([]models.Assignment, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	wanted := make(map[models.AssignmentStatus]bool)
	for _, status := range statuses {
		wanted[status] = true
	}

	assignments := []models.Assignment{}
	for _, assignment := range r.store.assignments {
		if assignment.TutorID == tutorID && wanted[assignment.Status] {
			assignments = append(assignments, assignment)
		}
	}
	sortNewestFirst(assignments)
	return assignments, nil
}

// GetAllAssignments возвращает все задания, новые первыми. limit = 0 означает без ограничения.
func (r *AssignmentRepository) GetAllAssignments(ctx context.Context, limit, offset int) ([]models.Assignment, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	assignments := make([]models.Assignment, len(r.store.assignments))
	copy(assignments, r.store.assignments)
	sortNewestFirst(assignments)
	return sliceWindow(assignments, limit, offset), nil
}

// AssignTutor назначает исполнителя и переводит задание в статус "In Progress".
func (r *AssignmentRepository) AssignTutor(ctx context.Context, assignmentID, tutorID, tutorName string) (*models.Assignment, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	index := r.indexOf(assignmentID)
	if index < 0 {
		return nil, fmt.Errorf("assignment %s not found", assignmentID)
	}
	r.store.assignments[index].Status = models.InProgressAssignment
	r.store.assignments[index].TutorID = tutorID
	r.store.assignments[index].TutorName = tutorName
	updated := r.store.assignments[index]
	return &updated, nil
}

// SetSubmitted переводит задание в статус "Submitted" и сохраняет файл работы.
func (r *AssignmentRepository) SetSubmitted(ctx context.Context, assignmentID, fileName string) (*models.Assignment, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	index := r.indexOf(assignmentID)
	if index < 0 {
		return nil, fmt.Errorf("assignment %s not found", assignmentID)
	}
	r.store.assignments[index].Status = models.SubmittedAssignment
	r.store.assignments[index].SubmittedFileURL = fileName
	updated := r.store.assignments[index]
	return &updated, nil
}

// CompleteWithPayment переводит задание в статус "Completed" и записывает
// платёж под одним захватом мьютекса: либо видно и то и другое, либо ничего.
func (r *AssignmentRepository) CompleteWithPayment(ctx context.Context, assignmentID string, payment models.Payment) (*models.Assignment, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	index := r.indexOf(assignmentID)
	if index < 0 {
		return nil, fmt.Errorf("assignment %s not found", assignmentID)
	}
	r.store.assignments[index].Status = models.CompletedAssignment

	newPayment := payment
	newPayment.ID = uuid.New().String()
	newPayment.CreatedAt = time.Now().UTC()
	r.store.payments = append(r.store.payments, newPayment)

	updated := r.store.assignments[index]
	return &updated, nil
}

// indexOf ищет позицию задания; вызывается под мьютексом.
func (r *AssignmentRepository) indexOf(assignmentID string) int {
	for i := range r.store.assignments {
		if r.store.assignments[i].ID == assignmentID {
			return i
		}
	}
	return -1
}

func sortNewestFirst(assignments []models.Assignment) {
	sort.Slice(assignments, func(i, j int) bool {
		return assignments[i].CreatedAt.After(assignments[j].CreatedAt)
	})
}
