// Package router wires the HTTP routes of the Flushfinder API onto an Echo
// instance. No business logic lives here; each route delegates to a handler.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/flushfinder/flushfinder/internal/handler"
)

// Register installs global middleware and every API route. CORS is wide
// open: the API is public and the map UI is served from another origin, so
// any origin may call it and OPTIONS preflights succeed on every path. The
// rate limiter is optional; pass nil to run without one.
func Register(e *echo.Echo, b *handler.BuildingHandler, rm *handler.RoomHandler, rv *handler.ReviewHandler, ratelimit echo.MiddlewareFunc) {
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType},
	}))
	if ratelimit != nil {
		e.Use(ratelimit)
	}

	// Landing page and health check.
	e.GET("/", handler.Root)
	e.GET("/healthz", handler.Health)

	// Rooms of a building, plus the per-room review summary.
	e.GET("/rooms", rm.GetRooms)
	e.GET("/rooms/:roomId/summary", rm.GetRoomSummary)

	// Review listing and submission.
	e.GET("/reviews/:roomId", rv.GetRoomReviews)
	e.POST("/reviews", rv.PostReview)

	// Building listing for the map, and all reviews across a building.
	e.GET("/building", b.GetBuildings)
	e.GET("/building/:brn/reviews", b.GetBuildingReviews)
}
