package models

import "time"

// Bid представляет модель отклика репетитора на задание.
// Отклик неизменяем после создания и никогда не удаляется,
// в том числе после принятия или отклонения.
type Bid struct {
	ID           string    `json:"id"`
	AssignmentID string    `json:"assignmentId"`
	TutorID      string    `json:"tutorId"`
	TutorName    string    `json:"tutorName"`
	Amount       float64   `json:"amount"`
	Proposal     string    `json:"proposal"`
	CreatedAt    time.Time `json:"createdAt"`
}

// BidRequest представляет структуру запроса для создания отклика.
type BidRequest struct {
	Amount   float64 `json:"amount"`
	Proposal string  `json:"proposal"`
}

// AcceptBidRequest представляет структуру запроса для принятия отклика.
type AcceptBidRequest struct {
	BidID string `json:"bidId"`
}

// SubmitWorkRequest представляет структуру запроса для сдачи работы.
type SubmitWorkRequest struct {
	FileName string `json:"fileName"`
}
