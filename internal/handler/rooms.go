// Package handler exposes the HTTP handlers of the Flushfinder API. All
// routes are public; responses are JSON except the plain landing page.
// Handlers stay thin: parse parameters, call a repository or the
// aggregator, translate errors to status codes.
package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flushfinder/flushfinder/internal/service"
)

// RoomHandler serves room listings and per-room review summaries.
type RoomHandler struct {
	Agg *service.Aggregator
}

// roomResponse is a room as exposed on the wire. The internal record
// number is deliberately absent; clients only ever see the public room_id.
type roomResponse struct {
	RoomID     string  `json:"room_id"`
	RoomNumber string  `json:"room_number"`
	Floor      *string `json:"floor"`
}

// summaryResponse aggregates a room's reviews. AvgStars and LastReviewAt
// are null when the room has no reviews yet.
type summaryResponse struct {
	RoomID       string     `json:"room_id"`
	ReviewCount  int64      `json:"review_count"`
	AvgStars     *float64   `json:"avg_stars"`
	LastReviewAt *time.Time `json:"last_review_at"`
}

// GetRooms handles GET /rooms?brn=<BRN>. Rooms come back ordered by floor
// then room number, rooms without a floor first. A missing brn is a 400.
func (h *RoomHandler) GetRooms(c echo.Context) error {
	brn := c.QueryParam("brn")
	if brn == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing brn"})
	}
	rooms, err := h.Agg.ListRooms(c.Request().Context(), brn)
	if err != nil {
		return writeRepoError(c, err)
	}
	out := make([]roomResponse, 0, len(rooms))
	for _, rm := range rooms {
		out = append(out, roomResponse{RoomID: rm.PublicID, RoomNumber: rm.RoomNumber, Floor: rm.Floor})
	}
	return c.JSON(http.StatusOK, echo.Map{"rooms": out})
}

// GetRoomSummary handles GET /rooms/:roomId/summary.
func (h *RoomHandler) GetRoomSummary(c echo.Context) error {
	roomID := c.Param("roomId")
	s, err := h.Agg.SummarizeRoom(c.Request().Context(), roomID)
	if err != nil {
		return writeRepoError(c, err)
	}
	return c.JSON(http.StatusOK, summaryResponse{
		RoomID:       roomID,
		ReviewCount:  s.ReviewCount,
		AvgStars:     s.AvgStars,
		LastReviewAt: s.LastReviewAt,
	})
}
