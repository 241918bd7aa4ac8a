package router

import (
	"net/http"

	"github.com/edumarket/tutoring-service/internal/handlers"
	"github.com/edumarket/tutoring-service/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func InitRoutes(
	authHandler *handlers.AuthHandler,
	assignmentHandler *handlers.AssignmentHandler,
	bidHandler *handlers.BidHandler,
	adminHandler *handlers.AdminHandler,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/ping", handlers.PingHandler)

	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/auth/session", authHandler.Session)
	mux.HandleFunc("GET /api/settings/theme", authHandler.GetTheme)
	mux.HandleFunc("PUT /api/settings/theme", authHandler.SetTheme)

	mux.HandleFunc("POST /api/assignments/new", assignmentHandler.CreateAssignment)
	mux.HandleFunc("GET /api/assignments", assignmentHandler.GetAssignments)
	mux.HandleFunc("PUT /api/assignments/{assignmentId}/accept", assignmentHandler.AcceptBid)
	mux.HandleFunc("PUT /api/assignments/{assignmentId}/submit", assignmentHandler.SubmitWork)
	mux.HandleFunc("PUT /api/assignments/{assignmentId}/complete", assignmentHandler.CompleteAssignment)
	mux.HandleFunc("GET /api/tutors/{tutorId}/assignments", assignmentHandler.GetTutorAssignments)

	mux.HandleFunc("POST /api/assignments/{assignmentId}/bids/new", bidHandler.CreateBid)
	mux.HandleFunc("GET /api/assignments/{assignmentId}/bids", bidHandler.GetAssignmentBids)

	mux.HandleFunc("GET /api/admin/users", adminHandler.GetAllUsers)
	mux.HandleFunc("GET /api/admin/assignments", adminHandler.GetAllAssignments)
	mux.HandleFunc("GET /api/admin/analytics", adminHandler.GetPlatformAnalytics)

	mux.Handle("GET /metrics", promhttp.Handler())

	return metrics.Middleware(mux)
}
