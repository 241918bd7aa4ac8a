package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/edumarket/tutoring-service/internal/models"
	"github.com/edumarket/tutoring-service/internal/services"
	"github.com/edumarket/tutoring-service/internal/utils"
)

// AssignmentHandler - структура для обработки HTTP-запросов по заданиям.
// Действующий пользователь берётся из клиентской сессии.
type AssignmentHandler struct {
	Service *services.AssignmentService
	Auth    *services.AuthService
	Logger  *log.Logger
	Timeout time.Duration
}

// NewAssignmentHandler создает новый экземпляр AssignmentHandler.
func NewAssignmentHandler(service *services.AssignmentService, auth *services.AuthService, logger *log.Logger, timeout time.Duration) *AssignmentHandler {
	return &AssignmentHandler{
		Service: service,
		Auth:    auth,
		Logger:  logger,
		Timeout: timeout,
	}
}

// CreateAssignment обрабатывает запросы на создание задания.
func (h *AssignmentHandler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	var assignmentReq models.AssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&assignmentReq); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	actor, err := h.Auth.CurrentUser(ctx)
	if err != nil {
		h.respondError(w, err, "failed to resolve session")
		return
	}

	assignment, err := h.Service.CreateAssignment(ctx, assignmentReq, actor.ID)
	if err != nil {
		h.respondError(w, err, "failed to create assignment")
		return
	}
	h.respondJSON(w, assignment)
}

// GetAssignments обрабатывает запросы на получение заданий в объёме роли.
func (h *AssignmentHandler) GetAssignments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	actor, err := h.Auth.CurrentUser(ctx)
	if err != nil {
		h.respondError(w, err, "failed to resolve session")
		return
	}

	assignments, err := h.Service.GetAssignments(ctx, actor.ID)
	if err != nil {
		h.respondError(w, err, "failed to fetch assignments")
		return
	}
	h.respondJSON(w, assignments)
}

// AcceptBid обрабатывает запросы на принятие отклика.
func (h *AssignmentHandler) AcceptBid(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	assignmentID := r.PathValue("assignmentId")

	var acceptReq models.AcceptBidRequest
	if err := json.NewDecoder(r.Body).Decode(&acceptReq); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	actor, err := h.Auth.CurrentUser(ctx)
	if err != nil {
		h.respondError(w, err, "failed to resolve session")
		return
	}

	assignment, err := h.Service.AcceptBid(ctx, assignmentID, acceptReq.BidID, actor.ID)
	if err != nil {
		h.respondError(w, err, "failed to accept bid")
		return
	}
	h.respondJSON(w, assignment)
}

// SubmitWork обрабатывает запросы на сдачу работы.
func (h *AssignmentHandler) SubmitWork(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	assignmentID := r.PathValue("assignmentId")

	var submitReq models.SubmitWorkRequest
	if err := json.NewDecoder(r.Body).Decode(&submitReq); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	actor, err := h.Auth.CurrentUser(ctx)
	if err != nil {
		h.respondError(w, err, "failed to resolve session")
		return
	}

	assignment, err := h.Service.SubmitWork(ctx, assignmentID, submitReq.FileName, actor.ID)
	if err != nil {
		h.respondError(w, err, "failed to submit work")
		return
	}
	h.respondJSON(w, assignment)
}

// CompleteAssignment обрабатывает запросы на завершение задания.
func (h *AssignmentHandler) CompleteAssignment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	assignmentID := r.PathValue("assignmentId")

	actor, err := h.Auth.CurrentUser(ctx)
	if err != nil {
		h.respondError(w, err, "failed to resolve session")
		return
	}

	assignment, err := h.Service.CompleteAssignment(ctx, assignmentID, actor.ID)
	if err != nil {
		h.respondError(w, err, "failed to complete assignment")
		return
	}
	h.respondJSON(w, assignment)
}

// GetTutorAssignments обрабатывает запросы на получение заданий репетитора.
func (h *AssignmentHandler) GetTutorAssignments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	tutorID := r.PathValue("tutorId")

	tutorAssignments, err := h.Service.GetTutorAssignments(ctx, tutorID)
	if err != nil {
		h.respondError(w, err, "failed to fetch tutor assignments")
		return
	}
	h.respondJSON(w, tutorAssignments)
}

func (h *AssignmentHandler) respondError(w http.ResponseWriter, err error, fallback string) {
	if errorResponse, ok := err.(*models.ErrorResponse); ok {
		h.Logger.Println(err)
		utils.SendErrorResponse(w, errorResponse.StatusCode, errorResponse.Message)
		return
	}
	h.Logger.Println(err)
	utils.SendErrorResponse(w, http.StatusInternalServerError, fallback)
}

func (h *AssignmentHandler) respondJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.Logger.Println(err)
	}
}
