package models

import "time"

type AssignmentStatus string // Статус задания

const (
	PendingAssignment    AssignmentStatus = "Pending"       // Задание создано, но не опубликовано (в текущем потоке не используется)
	BiddingAssignment    AssignmentStatus = "Open for Bids" // Задание открыто для откликов
	InProgressAssignment AssignmentStatus = "In Progress"   // Отклик принят, задание в работе
	SubmittedAssignment  AssignmentStatus = "Submitted"     // Работа сдана на проверку
	CompletedAssignment  AssignmentStatus = "Completed"     // Задание завершено, платёж создан
	DisputedAssignment   AssignmentStatus = "Disputed"      // Спор; переход возможен только извне
)

// Assignment представляет модель задания.
type Assignment struct {
	ID               string           `json:"id"`
	StudentID        string           `json:"studentId"`
	StudentName      string           `json:"studentName"`
	TutorID          string           `json:"tutorId,omitempty"`
	TutorName        string           `json:"tutorName,omitempty"`
	Title            string           `json:"title"`
	Subject          string           `json:"subject"`
	Description      string           `json:"description"`
	Deadline         string           `json:"deadline"`
	Budget           float64          `json:"budget"`
	FileURL          string           `json:"fileUrl,omitempty"`
	SubmittedFileURL string           `json:"submittedFileUrl,omitempty"`
	Status           AssignmentStatus `json:"status"`
	CreatedAt        time.Time        `json:"createdAt"`
}

// AssignmentRequest представляет структуру запроса для создания задания.
type AssignmentRequest struct {
	Title       string  `json:"title"`
	Subject     string  `json:"subject"`
	Description string  `json:"description"`
	Deadline    string  `json:"deadline"`
	Budget      float64 `json:"budget"`
	FileURL     string  `json:"fileUrl,omitempty"`
}

// TutorAssignments - задания репетитора, разбитые на активные и завершённые.
type TutorAssignments struct {
	Active    []Assignment `json:"active"`
	Completed []Assignment `json:"completed"`
}
