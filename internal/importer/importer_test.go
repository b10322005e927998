package importer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBathroom(t *testing.T) {
	cases := []struct {
		desc string
		want bool
	}{
		{"Restroom - Men", true},
		{"Toilet Room", true},
		{"Lavatory", true},
		{"All Gender Restroom", true},
		{"Gender Neutral", true},
		{"Mechanical Room", false},
		{"Electrical Closet", false},
		{"Janitor Closet w/ Toilet Drain", false},
		{"Custodial Restroom Supply", false},
		{"Classroom", false},
		{"", false},
	}
	for _, tc := range cases {
		got := IsBathroom(CampusRoom{RoomTypeDescription: tc.desc})
		assert.Equal(t, tc.want, got, "desc=%q", tc.desc)
	}
}

func TestFilterBathrooms(t *testing.T) {
	rooms := []CampusRoom{
		{RoomNumber: "104", RoomTypeDescription: "Restroom - Women"},
		{RoomNumber: "105", RoomTypeDescription: "Office"},
		{RoomNumber: "106", RoomTypeDescription: "Mechanical Room"},
	}
	got := FilterBathrooms(rooms)
	require.Len(t, got, 1)
	assert.Equal(t, "104", got[0].RoomNumber)
}

// newTestGateway fakes the campus API gateway: a token endpoint and one
// building's RoomInfo.
func newTestGateway(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/um/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "client-id" || pass != "client-secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.FormValue("grant_type"))
		assert.Equal(t, "buildings", r.FormValue("scope"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-123", "token_type": "Bearer", "expires_in": 3600,
		})
	})
	mux.HandleFunc("/um/bf/Buildings/v2/RoomInfo/1005092", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ListOfRooms": map[string]any{
				"Floor 1": []map[string]string{
					{"RoomRecordNumber": "9001", "RoomNumber": "104", "FloorNumber": "1", "RoomTypeDescription": "Restroom - Women"},
					{"RoomRecordNumber": "9002", "RoomNumber": "105", "FloorNumber": "1", "RoomTypeDescription": "Office"},
				},
				"Floor 2": []map[string]string{
					{"RoomRecordNumber": "9003", "RoomNumber": "204", "FloorNumber": "2", "RoomTypeDescription": "Restroom - Men"},
				},
			},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientTokenAndRoomInfo(t *testing.T) {
	srv := newTestGateway(t)
	client := NewClient(srv.URL, "client-id", "client-secret")
	ctx := context.Background()

	token, err := client.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)

	rooms, err := client.RoomInfo(ctx, token, "1005092")
	require.NoError(t, err)
	assert.Len(t, rooms, 3)
}

func TestClientTokenBadCredentials(t *testing.T) {
	srv := newTestGateway(t)
	client := NewClient(srv.URL, "client-id", "wrong")

	_, err := client.Token(context.Background())
	assert.Error(t, err)
}

func TestImportBuilding(t *testing.T) {
	srv := newTestGateway(t)
	client := NewClient(srv.URL, "client-id", "client-secret")

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Two bathrooms survive the filter; the upsert order follows the
	// flattened groups, so only the arguments are pinned, not the order.
	mock.MatchExpectationsInOrder(false)
	mock.ExpectExec(`INSERT INTO rooms`).
		WithArgs("1005092-9001", "104", "1", "1005092").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO rooms`).
		WithArgs("1005092-9003", "204", "2", "1005092").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec(`UPDATE building SET num_bathrooms`).
		WithArgs(2, "1005092").
		WillReturnResult(sqlmock.NewResult(0, 1))

	imp := NewImporter(db, client)
	n, err := imp.ImportBuilding(context.Background(), "tok-123", "1005092")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.NoError(t, mock.ExpectationsWereMet())
}
