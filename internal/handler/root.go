package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Root serves a plain landing page so "/" isn't a 404. It lists the
// available routes with a couple of example calls.
func Root(c echo.Context) error {
	const page = `Flushfinder API

GET  /rooms?brn=<BUILDING_RECORD_NUMBER>
GET  /rooms/:roomId/summary
GET  /reviews/:roomId
GET  /building
GET  /building/:brn/reviews
POST /reviews  body: { room_id, review_text, username, stars, user_id? }

Try:
- /rooms?brn=1005092
- /building
`
	return c.String(http.StatusOK, page)
}
