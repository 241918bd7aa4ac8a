package models

import "time"

// PlatformFeeRate - доля комиссии платформы от бюджета задания.
const PlatformFeeRate = 0.10

// Payment представляет запись в журнале платежей.
// Создаётся ровно один раз при переходе задания в статус Completed;
// журнал только пополняется, записи неизменяемы.
type Payment struct {
	ID              string    `json:"id"`
	AssignmentID    string    `json:"assignmentId"`
	AssignmentTitle string    `json:"assignmentTitle"`
	StudentID       string    `json:"studentId"`
	StudentName     string    `json:"studentName"`
	TutorID         string    `json:"tutorId"`
	TutorName       string    `json:"tutorName"`
	Amount          float64   `json:"amount"`
	PlatformFee     float64   `json:"platformFee"`
	Payout          float64   `json:"payout"`
	CreatedAt       time.Time `json:"createdAt"`
}

// PlatformAnalytics представляет сводную аналитику платформы для администратора.
type PlatformAnalytics struct {
	TotalUsers      int       `json:"totalUsers"`
	StudentCount    int       `json:"studentCount"`
	TutorCount      int       `json:"tutorCount"`
	TotalVolume     float64   `json:"totalVolume"`
	PlatformRevenue float64   `json:"platformRevenue"`
	RecentPayments  []Payment `json:"recentPayments"`
}
