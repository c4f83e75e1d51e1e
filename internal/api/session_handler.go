package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fitlog/fitness-api/internal/domain"
	"fitlog/fitness-api/internal/service"

	"github.com/gin-gonic/gin"
)

// SessionHandler holds the session service dependency.
type SessionHandler struct {
	sessionService service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// --- DTOs ---

// PerformedSetRequest is one completed set in a logged session payload.
type PerformedSetRequest struct {
	SetNumber int      `json:"set_number" binding:"required,gte=1"`
	Weight    *float64 `json:"weight" binding:"omitempty,gte=0"`
	Reps      int      `json:"reps" binding:"required,gte=1"`
	RPE       *float64 `json:"rpe" binding:"omitempty,gte=1,lte=10"`
}

// SessionItemRequest is one exercise performed during a session.
// Target sets/reps are deliberately unconstrained.
type SessionItemRequest struct {
	ExerciseName  string                `json:"exercise_name" binding:"required"`
	TargetSets    int                   `json:"target_sets"`
	TargetReps    int                   `json:"target_reps"`
	PerformedSets []PerformedSetRequest `json:"performed_sets" binding:"omitempty,dive"`
}

// LogSessionRequest defines the expected JSON for logging a session.
// DateStr is treated as an opaque string, not parsed as a date.
type LogSessionRequest struct {
	DateStr      string               `json:"date_str" binding:"required"`
	WorkoutTitle string               `json:"workout_title" binding:"required"`
	Notes        string               `json:"notes"`
	Items        []SessionItemRequest `json:"items" binding:"omitempty,dive"`
}

// SessionResponse is the DTO for returning a logged session.
type SessionResponse struct {
	ID           string               `json:"id"`
	DateStr      string               `json:"date_str"`
	WorkoutTitle string               `json:"workout_title"`
	Notes        string               `json:"notes,omitempty"`
	Items        []domain.SessionItem `json:"items"`
	CreatedAt    time.Time            `json:"created_at"`
}

func (req *LogSessionRequest) toDomain() *domain.WorkoutSession {
	items := make([]domain.SessionItem, len(req.Items))
	for i, it := range req.Items {
		performed := make([]domain.PerformedSet, len(it.PerformedSets))
		for j, ps := range it.PerformedSets {
			performed[j] = domain.PerformedSet{
				SetNumber: ps.SetNumber,
				Weight:    ps.Weight,
				Reps:      ps.Reps,
				RPE:       ps.RPE,
			}
		}
		items[i] = domain.SessionItem{
			ExerciseName:  it.ExerciseName,
			TargetSets:    it.TargetSets,
			TargetReps:    it.TargetReps,
			PerformedSets: performed,
		}
	}
	return &domain.WorkoutSession{
		DateStr:      req.DateStr,
		WorkoutTitle: req.WorkoutTitle,
		Notes:        req.Notes,
		Items:        items,
	}
}

// MapSessionToResponse converts a domain.WorkoutSession to SessionResponse DTO.
func MapSessionToResponse(s *domain.WorkoutSession) SessionResponse {
	if s == nil {
		return SessionResponse{}
	}
	items := s.Items
	if items == nil {
		items = []domain.SessionItem{}
	}
	return SessionResponse{
		ID:           s.ID.Hex(),
		DateStr:      s.DateStr,
		WorkoutTitle: s.WorkoutTitle,
		Notes:        s.Notes,
		Items:        items,
		CreatedAt:    s.CreatedAt,
	}
}

// MapSessionsToResponse converts a slice of domain.WorkoutSession to response DTOs.
func MapSessionsToResponse(sessions []domain.WorkoutSession) []SessionResponse {
	responses := make([]SessionResponse, len(sessions))
	for i, s := range sessions {
		responses[i] = MapSessionToResponse(&s)
	}
	return responses
}

// --- Handler Methods ---

// LogSession handles POST /api/sessions.
func (h *SessionHandler) LogSession(c *gin.Context) {
	var req LogSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, "Validation error: "+err.Error())
		return
	}

	id, err := h.sessionService.LogSession(c.Request.Context(), req.toDomain())
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusUnprocessableEntity, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id.Hex()})
}

// ListSessions handles GET /api/sessions. Accepts an optional exact-match
// date_str filter and a limit (default 50); results are newest-first.
func (h *SessionHandler) ListSessions(c *gin.Context) {
	dateStr := c.Query("date_str")

	limit, err := strconv.ParseInt(c.DefaultQuery("limit", strconv.Itoa(service.DefaultSessionLimit)), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, "Validation error: limit must be an integer")
		return
	}

	sessions, err := h.sessionService.ListSessions(c.Request.Context(), dateStr, limit)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, MapSessionsToResponse(sessions))
}
