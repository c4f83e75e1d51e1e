package api

import (
	"errors"
	"net/http"
	"time"

	"fitlog/fitness-api/internal/domain"
	"fitlog/fitness-api/internal/service"

	"github.com/gin-gonic/gin"
)

// defaultRestSeconds is applied to workout items that omit rest_seconds.
const defaultRestSeconds = 90

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs ---

// WorkoutItemRequest is one exercise slot in a template payload.
// RestSeconds is a pointer so "omitted" and "0" stay distinguishable.
type WorkoutItemRequest struct {
	ExerciseID   string `json:"exercise_id"`
	ExerciseName string `json:"exercise_name" binding:"required"`
	Sets         int    `json:"sets" binding:"required,gte=1,lte=20"`
	Reps         int    `json:"reps" binding:"required,gte=1,lte=100"`
	RestSeconds  *int   `json:"rest_seconds" binding:"omitempty,gte=0,lte=600"`
}

// CreateWorkoutRequest defines the expected JSON for creating a workout
// template. Every item is validated against WorkoutItemRequest; one bad
// item rejects the whole payload.
type CreateWorkoutRequest struct {
	Title       string               `json:"title" binding:"required"`
	Description string               `json:"description"`
	Items       []WorkoutItemRequest `json:"items" binding:"omitempty,dive"`
}

// WorkoutResponse is the DTO for returning a workout template.
type WorkoutResponse struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	Items       []domain.WorkoutItem `json:"items"`
	CreatedAt   time.Time            `json:"created_at"`
}

func (req *CreateWorkoutRequest) toDomain() *domain.Workout {
	items := make([]domain.WorkoutItem, len(req.Items))
	for i, it := range req.Items {
		restSeconds := defaultRestSeconds
		if it.RestSeconds != nil {
			restSeconds = *it.RestSeconds
		}
		items[i] = domain.WorkoutItem{
			ExerciseID:   it.ExerciseID,
			ExerciseName: it.ExerciseName,
			Sets:         it.Sets,
			Reps:         it.Reps,
			RestSeconds:  restSeconds,
		}
	}
	return &domain.Workout{
		Title:       req.Title,
		Description: req.Description,
		Items:       items,
	}
}

// MapWorkoutToResponse converts a domain.Workout to WorkoutResponse DTO.
func MapWorkoutToResponse(w *domain.Workout) WorkoutResponse {
	if w == nil {
		return WorkoutResponse{}
	}
	items := w.Items
	if items == nil {
		items = []domain.WorkoutItem{}
	}
	return WorkoutResponse{
		ID:          w.ID.Hex(),
		Title:       w.Title,
		Description: w.Description,
		Items:       items,
		CreatedAt:   w.CreatedAt,
	}
}

// MapWorkoutsToResponse converts a slice of domain.Workout to response DTOs.
func MapWorkoutsToResponse(workouts []domain.Workout) []WorkoutResponse {
	responses := make([]WorkoutResponse, len(workouts))
	for i, w := range workouts {
		responses[i] = MapWorkoutToResponse(&w)
	}
	return responses
}

// --- Handler Methods ---

// CreateWorkout handles POST /api/workouts.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, "Validation error: "+err.Error())
		return
	}

	id, err := h.workoutService.CreateWorkout(c.Request.Context(), req.toDomain())
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

// ListWorkouts handles GET /api/workouts.
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	workouts, err := h.workoutService.ListWorkouts(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, MapWorkoutsToResponse(workouts))
}
