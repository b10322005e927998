package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flushfinder/flushfinder/internal/repository"
)

func sqlmockNow() time.Time {
	return time.Date(2025, 11, 2, 9, 0, 0, 0, time.UTC)
}

func setupReviewHandler(t *testing.T) (sqlmock.Sqlmock, *ReviewHandler, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	h := &ReviewHandler{
		Reviews: repository.NewReviewRepo(db, repository.NewUserRepo(db)),
		Rooms:   repository.NewRoomRepo(db),
	}
	return mock, h, func() { db.Close() }
}

func postReview(t *testing.T, h *ReviewHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.PostReview(e.NewContext(req, rec)))
	return rec
}

func TestPostReview_InvalidStars(t *testing.T) {
	mock, h, closeDB := setupReviewHandler(t)
	defer closeDB()

	for _, body := range []string{
		`{"room_id":"abc","review_text":"Clean","username":"Jane","stars":0}`,
		`{"room_id":"abc","review_text":"Clean","username":"Jane","stars":6}`,
	} {
		rec := postReview(t, h, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
	// Validation rejected both bodies before any storage access.
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostReview_MissingFields(t *testing.T) {
	mock, h, closeDB := setupReviewHandler(t)
	defer closeDB()

	rec := postReview(t, h, `{"room_id":"abc","stars":4}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "review_text")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostReview_MalformedJSON(t *testing.T) {
	mock, h, closeDB := setupReviewHandler(t)
	defer closeDB()

	rec := postReview(t, h, `{"room_id":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostReview_UnknownRoom(t *testing.T) {
	mock, h, closeDB := setupReviewHandler(t)
	defer closeDB()

	mock.ExpectQuery(`SELECT room_record_number FROM rooms`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	rec := postReview(t, h, `{"room_id":"ghost","review_text":"Clean","username":"Jane","stars":4}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostReview_Success(t *testing.T) {
	mock, h, closeDB := setupReviewHandler(t)
	defer closeDB()

	mock.ExpectQuery(`SELECT room_record_number FROM rooms`).
		WithArgs("abc").
		WillReturnRows(sqlmock.NewRows([]string{"room_record_number"}).AddRow(42))
	mock.ExpectExec(`INSERT INTO users`).
		WithArgs("jane-doe", "Jane Doe").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO reviews`).
		WithArgs(sqlmock.AnyArg(), uint64(42), "jane-doe", 4, "Clean").
		WillReturnResult(sqlmock.NewResult(0, 1))
	// The post-insert room lookup only feeds the published event.
	mock.ExpectQuery(`FROM rooms WHERE room_id`).
		WithArgs("abc").
		WillReturnRows(sqlmock.NewRows([]string{
			"room_record_number", "room_id", "room_number", "floor", "building_record_number",
		}).AddRow(42, "abc", "104", "1", "1005092"))

	rec := postReview(t, h, `{"room_id":"abc","review_text":"Clean","username":"Jane Doe","stars":4}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		OK bool   `json:"ok"`
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.NotEmpty(t, resp.ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostReview_StorageError(t *testing.T) {
	mock, h, closeDB := setupReviewHandler(t)
	defer closeDB()

	mock.ExpectQuery(`SELECT room_record_number FROM rooms`).
		WithArgs("abc").
		WillReturnError(sql.ErrConnDone)

	rec := postReview(t, h, `{"room_id":"abc","review_text":"Clean","username":"Jane","stars":4}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// The client gets a generic message, never the underlying detail.
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "DB error", resp["error"])

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRoomReviews(t *testing.T) {
	mock, h, closeDB := setupReviewHandler(t)
	defer closeDB()

	mock.ExpectQuery(`FROM reviews rv`).
		WithArgs("abc").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "room_id", "user_id", "username", "stars", "review_text", "created_at",
		}).AddRow("r1", "abc", "jane-doe", "Jane", 4, "Clean", sqlmockNow()))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/reviews/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/reviews/:roomId")
	c.SetParamNames("roomId")
	c.SetParamValues("abc")
	require.NoError(t, h.GetRoomReviews(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		RoomID  string `json:"room_id"`
		Reviews []struct {
			ID         string `json:"id"`
			Stars      int    `json:"stars"`
			ReviewText string `json:"review_text"`
		} `json:"reviews"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "abc", resp.RoomID)
	require.Len(t, resp.Reviews, 1)
	assert.Equal(t, "Clean", resp.Reviews[0].ReviewText)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRoomReviews_EmptyIsNotAnError(t *testing.T) {
	mock, h, closeDB := setupReviewHandler(t)
	defer closeDB()

	mock.ExpectQuery(`FROM reviews rv`).
		WithArgs("abc").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "room_id", "user_id", "username", "stars", "review_text", "created_at",
		}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/reviews/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/reviews/:roomId")
	c.SetParamNames("roomId")
	c.SetParamValues("abc")
	require.NoError(t, h.GetRoomReviews(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reviews":[]`)
	require.NoError(t, mock.ExpectationsWereMet())
}
