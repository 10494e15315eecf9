package handlers

import (
	"bytes"
	"net/http"
	"time"

	"mentorloop/database/repository"
	"mentorloop/middleware"
	"mentorloop/models"
	"mentorloop/services/booking"
	"mentorloop/services/export"
	"mentorloop/utils"

	"github.com/gin-gonic/gin"
)

// ExportHandler renders the caller's visible bookings as downloadable files.
type ExportHandler struct {
	Repo   repository.BookingRepository
	Actors repository.ActorRepository
}

func NewExportHandler(repo repository.BookingRepository, actors repository.ActorRepository) *ExportHandler {
	return &ExportHandler{Repo: repo, Actors: actors}
}

func (h *ExportHandler) visibleWithNames(c *gin.Context) (models.Actor, []models.Booking, map[string]string, bool) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unknown actor", "")
		return models.Actor{}, nil, nil, false
	}

	all, err := h.Repo.FetchForActor(c.Request.Context(), actor.ID)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "store unavailable", err.Error())
		return models.Actor{}, nil, nil, false
	}
	visible := booking.VisibleBookings(actor, all)

	ids := make([]string, 0, 2*len(visible))
	for _, b := range visible {
		ids = append(ids, b.RequesterID, b.ProviderID)
	}
	names, err := h.Actors.ResolveNames(c.Request.Context(), ids)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "directory unavailable", err.Error())
		return models.Actor{}, nil, nil, false
	}
	return actor, visible, names, true
}

// ExportCSV streams the visible bookings as a CSV attachment.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	_, visible, names, ok := h.visibleWithNames(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, visible, names); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "export failed", err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.CSVFileName(time.Now())+`"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// ExportICal streams the approved visible bookings as an iCalendar feed.
func (h *ExportHandler) ExportICal(c *gin.Context) {
	actor, visible, names, ok := h.visibleWithNames(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteICal(&buf, visible, actor, names); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "export failed", err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="bookings.ics"`)
	c.Data(http.StatusOK, "text/calendar", buf.Bytes())
}
