package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flushfinder/flushfinder/internal/model"
	"github.com/flushfinder/flushfinder/internal/queue"
	"github.com/flushfinder/flushfinder/internal/repository"
	"github.com/flushfinder/flushfinder/internal/service"
)

// ReviewHandler serves review submission and the per-room review listing.
type ReviewHandler struct {
	Reviews *repository.ReviewRepo
	Rooms   *repository.RoomRepo
}

// submitRequest is the POST /reviews body. user_id is optional; when absent
// an identifier is derived from the username.
type submitRequest struct {
	RoomID     string `json:"room_id"`
	ReviewText string `json:"review_text"`
	Username   string `json:"username"`
	Stars      int    `json:"stars"`
	UserID     string `json:"user_id"`
}

// reviewResponse is a review as exposed on the wire. room_id is the public
// room token, never the internal key the reviews table stores.
type reviewResponse struct {
	ID         string    `json:"id"`
	RoomID     string    `json:"room_id"`
	UserID     string    `json:"user_id"`
	Username   string    `json:"username"`
	Stars      int       `json:"stars"`
	ReviewText string    `json:"review_text"`
	CreatedAt  time.Time `json:"created_at"`
}

func toReviewResponses(reviews []*model.Review) []reviewResponse {
	out := make([]reviewResponse, 0, len(reviews))
	for _, rv := range reviews {
		out = append(out, reviewResponse{
			ID:         rv.ID,
			RoomID:     rv.RoomID,
			UserID:     rv.UserID,
			Username:   rv.Username,
			Stars:      rv.Stars,
			ReviewText: rv.ReviewText,
			CreatedAt:  rv.CreatedAt,
		})
	}
	return out
}

// writeRepoError maps repository failures to status codes. Validation
// failures carry their message to the client; storage failures are logged
// in full but answered with a generic body so query text never leaks.
func writeRepoError(c echo.Context, err error) error {
	var ve *repository.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Error()})
	case errors.Is(err, repository.ErrRoomNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
	default:
		log.Printf("%s %s: %v", c.Request().Method, c.Path(), err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "DB error"})
	}
}

// PostReview handles POST /reviews. Validation happens in the repository
// before any storage access; a 400 therefore guarantees nothing was
// written. After a successful insert a review.submitted event is published
// best-effort.
func (h *ReviewHandler) PostReview(c echo.Context) error {
	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON"})
	}

	ctx := c.Request().Context()
	id, err := h.Reviews.Submit(ctx, repository.SubmitInput{
		RoomID:     req.RoomID,
		ReviewText: req.ReviewText,
		Username:   req.Username,
		Stars:      req.Stars,
		UserID:     req.UserID,
	})
	if err != nil {
		return writeRepoError(c, err)
	}

	ev := queue.ReviewSubmittedEvent{
		ReviewID:    id,
		RoomID:      req.RoomID,
		UserID:      req.UserID,
		Username:    req.Username,
		Stars:       req.Stars,
		SubmittedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if rm, lookupErr := h.Rooms.GetByPublicID(ctx, req.RoomID); lookupErr == nil {
		ev.BuildingBRN = rm.BuildingBRN
	}
	_ = service.PublishReviewSubmitted(ctx, ev)

	return c.JSON(http.StatusCreated, echo.Map{"ok": true, "id": id})
}

// GetRoomReviews handles GET /reviews/:roomId, most recent first. A room
// with no reviews (or an unknown room) yields an empty list.
func (h *ReviewHandler) GetRoomReviews(c echo.Context) error {
	roomID := c.Param("roomId")
	reviews, err := h.Reviews.ListByRoom(c.Request().Context(), roomID)
	if err != nil {
		return writeRepoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"room_id": roomID, "reviews": toReviewResponses(reviews)})
}
