package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flushfinder/flushfinder/internal/handler"
	"github.com/flushfinder/flushfinder/internal/repository"
	"github.com/flushfinder/flushfinder/internal/service"
)

func newTestServer(t *testing.T) (*echo.Echo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	users := repository.NewUserRepo(db)
	reviews := repository.NewReviewRepo(db, users)
	rooms := repository.NewRoomRepo(db)
	buildings := repository.NewBuildingRepo(db)
	agg := service.NewAggregator(buildings, rooms, reviews)

	e := echo.New()
	Register(e,
		&handler.BuildingHandler{Agg: agg},
		&handler.RoomHandler{Agg: agg},
		&handler.ReviewHandler{Reviews: reviews, Rooms: rooms},
		nil,
	)
	return e, mock
}

func TestUnmatchedRouteIs404(t *testing.T) {
	e, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPreflightSucceedsOnAnyPath(t *testing.T) {
	e, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodOptions, "/reviews", nil)
	req.Header.Set(echo.HeaderOrigin, "http://example.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestCORSHeaderOnSimpleRequest(t *testing.T) {
	e, mock := newTestServer(t)
	mock.ExpectQuery(`FROM building`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "building_record_number", "building_name", "building_address_number",
			"building_street", "building_lat", "building_long", "num_bathrooms",
		}))

	req := httptest.NewRequest(http.MethodGet, "/building", nil)
	req.Header.Set(echo.HeaderOrigin, "http://example.com")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestHealthz(t *testing.T) {
	e, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestLandingPageListsRoutes(t *testing.T) {
	e, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Flushfinder API")
	assert.Contains(t, rec.Body.String(), "POST /reviews")
}
