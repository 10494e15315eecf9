package handlers

import (
	"net/http"
	"time"

	"mentorloop/config"
	"mentorloop/database/repository"
	"mentorloop/middleware"
	"mentorloop/services/analytics"
	"mentorloop/services/booking"
	"mentorloop/utils"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves on-demand summaries over the caller's visible
// bookings.
type AnalyticsHandler struct {
	Repo   repository.BookingRepository
	Actors repository.ActorRepository
}

func NewAnalyticsHandler(repo repository.BookingRepository, actors repository.ActorRepository) *AnalyticsHandler {
	return &AnalyticsHandler{Repo: repo, Actors: actors}
}

// GetSummary recomputes the analytics summary for the caller's view.
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
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
	visible := booking.VisibleBookings(actor, all)

	ids := make([]string, 0, len(visible))
	for _, b := range visible {
		ids = append(ids, b.RequesterID)
	}
	names, err := h.Actors.ResolveNames(c.Request.Context(), ids)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "directory unavailable", err.Error())
		return
	}

	summary := analytics.Summarize(visible, names, time.Now(), config.AppConfig.RecentWindowDays)
	c.JSON(http.StatusOK, summary)
}
