package handlers

import (
	"net/http"

	"mentorloop/database/repository"
	"mentorloop/middleware"
	"mentorloop/models"
	"mentorloop/services/booking"
	"mentorloop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking core over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Repo    repository.BookingRepository
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, repo repository.BookingRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Repo: repo, Logger: logger}
}

// respondBookingError maps the domain error taxonomy onto HTTP statuses.
func respondBookingError(c *gin.Context, err error) {
	switch err.(type) {
	case *booking.ValidationError:
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
	case *booking.AuthorizationError:
		utils.JSONError(c, http.StatusForbidden, "not allowed", err.Error())
	case *booking.NotFoundError:
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
	case *booking.TransitionError:
		utils.JSONError(c, http.StatusConflict, "invalid transition", err.Error())
	default:
		utils.JSONError(c, http.StatusBadGateway, "store unavailable", err.Error())
	}
}

// CreateBooking records a new pending booking for the calling requester.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unknown actor", "")
		return
	}

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Service.CreateBooking(c.Request.Context(), actor, req)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": created})
}

// ListBookings returns the caller's role-scoped booking view, recomputed on
// every request.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unknown actor", "")
		return
	}

	all, err := h.Repo.FetchForActor(c.Request.Context(), actor.ID)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": booking.VisibleBookings(actor, all)})
}

// TransitionBooking applies one approve/deny/cancel action to one booking.
func (h *BookingHandler) TransitionBooking(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unknown actor", "")
		return
	}

	var input struct {
		Action      string `json:"action"`
		MeetingLink string `json:"meetingLink,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Service.Transition(c.Request.Context(), c.Param("id"), input.Action, actor, input.MeetingLink)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": updated})
}

// BulkTransition applies one approve/deny action to many bookings and
// reports partial success per id.
func (h *BookingHandler) BulkTransition(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unknown actor", "")
		return
	}

	var input struct {
		IDs    []string `json:"ids"`
		Action string   `json:"action"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Service.ApplyBulk(c.Request.Context(), input.IDs, input.Action, actor)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
