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

// AdminHandler - структура для обработки административных HTTP-запросов.
type AdminHandler struct {
	Service *services.AnalyticsService
	Auth    *services.AuthService
	Logger  *log.Logger
	Timeout time.Duration
}

// NewAdminHandler создает новый экземпляр AdminHandler.
func NewAdminHandler(service *services.AnalyticsService, auth *services.AuthService, logger *log.Logger, timeout time.Duration) *AdminHandler {
	return &AdminHandler{
		Service: service,
		Auth:    auth,
		Logger:  logger,
		Timeout: timeout,
	}
}

// GetAllUsers обрабатывает запросы на получение списка пользователей.
func (h *AdminHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	limit, offset, err := utils.ParseLimitOffset(r.URL.Query().Get("limit"), r.URL.Query().Get("offset"))
	if err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	actor, err := h.Auth.CurrentUser(ctx)
	if err != nil {
		h.respondError(w, err, "failed to resolve session")
		return
	}

	users, err := h.Service.GetAllUsers(ctx, actor.ID, limit, offset)
	if err != nil {
		h.respondError(w, err, "failed to fetch users")
		return
	}
	h.respondJSON(w, users)
}

// GetAllAssignments обрабатывает запросы на получение всех заданий.
func (h *AdminHandler) GetAllAssignments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	limit, offset, err := utils.ParseLimitOffset(r.URL.Query().Get("limit"), r.URL.Query().Get("offset"))
	if err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	actor, err := h.Auth.CurrentUser(ctx)
	if err != nil {
		h.respondError(w, err, "failed to resolve session")
		return
	}

	assignments, err := h.Service.GetAllAssignments(ctx, actor.ID, limit, offset)
	if err != nil {
		h.respondError(w, err, "failed to fetch assignments")
		return
	}
	h.respondJSON(w, assignments)
}

// GetPlatformAnalytics обрабатывает запросы на получение сводной аналитики.
func (h *AdminHandler) GetPlatformAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	actor, err := h.Auth.CurrentUser(ctx)
	if err != nil {
		h.respondError(w, err, "failed to resolve session")
		return
	}

	analytics, err := h.Service.GetPlatformAnalytics(ctx, actor.ID)
	if err != nil {
		h.respondError(w, err, "failed to build platform analytics")
		return
	}
	h.respondJSON(w, analytics)
}

func (h *AdminHandler) respondError(w http.ResponseWriter, err error, fallback string) {
	if errorResponse, ok := err.(*models.ErrorResponse); ok {
		h.Logger.Println(err)
		utils.SendErrorResponse(w, errorResponse.StatusCode, errorResponse.Message)
		return
	}
	h.Logger.Println(err)
	utils.SendErrorResponse(w, http.StatusInternalServerError, fallback)
}

func (h *AdminHandler) respondJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.Logger.Println(err)
	}
}
