package client_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/internal/cache"
	"tripplanner/internal/client"
	"tripplanner/internal/model"
)

const tripID = "c7c8d9e0-0000-4000-8000-000000000007"

func testTrip() model.Trip {
	return model.Trip{
		ID:          tripID,
		UserID:      1,
		Title:       "Weekend in Kandy",
		Destination: "Kandy, Sri Lanka",
		DailyPlans: []model.DayPlan{
			{Day: 1, Activities: []model.Activity{{Title: "Temple of the Tooth", Duration: "1 hr", EstimatedCost: "$10"}}},
		},
	}
}

func TestFetchTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/trips/"+tripID, r.URL.Path)
		json.NewEncoder(w).Encode(testTrip())
	}))
	defer srv.Close()

	c := client.New(srv.URL, nil)
	trip, err := c.FetchTrip(tripID)
	require.NoError(t, err)
	assert.Equal(t, "Weekend in Kandy", trip.Title)
	assert.Len(t, trip.DailyPlans, 1)
}

func TestFetchTripNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := client.New(srv.URL, nil)
	_, err := c.FetchTrip(tripID)
	assert.ErrorIs(t, err, client.ErrNotFound)
}

func TestFetchTripServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := client.New(srv.URL, nil)
	_, err := c.FetchTrip(tripID)
	var fe *client.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusInternalServerError, fe.StatusCode)
}

func TestCreateTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var draft model.TripDraft
		require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
		created := testTrip()
		created.Title = draft.Title
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}))
	defer srv.Close()

	c := client.New(srv.URL, nil)
	trip, err := c.CreateTrip(model.TripDraft{UserID: 1, Title: "New trip", Destination: "Galle"})
	require.NoError(t, err)
	// идентификатор назначается сервером
	assert.Equal(t, tripID, trip.ID)
	assert.Equal(t, "New trip", trip.Title)
}

func TestCreateTripRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := client.New(srv.URL, nil)
	_, err := c.CreateTrip(model.TripDraft{})
	var ce *client.CreateError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, http.StatusBadRequest, ce.StatusCode)
}

func TestUpdateTripFullReplace(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		var trip model.Trip
		require.NoError(t, json.NewDecoder(r.Body).Decode(&trip))
		assert.Len(t, trip.DailyPlans, 1, "передается весь маршрут целиком")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	trip := testTrip()
	c := client.New(srv.URL, nil)
	require.NoError(t, c.UpdateTrip(trip.ID, &trip))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/trips/"+tripID, gotPath)
}

// При отказе сервера DeleteTrip возвращает типизированную ошибку со
// статусом ответа, по которой вызывающий код решает, трогать ли свои данные.
func TestDeleteTripServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := client.New(srv.URL, nil)

	err := c.DeleteTrip(tripID)
	var de *client.DeleteError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, http.StatusInternalServerError, de.StatusCode)
}

func TestDeleteTripSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := client.New(srv.URL, nil)
	assert.NoError(t, c.DeleteTrip(tripID))
}

func TestListUserTrips(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/7/trips", r.URL.Path)
		json.NewEncoder(w).Encode([]model.Trip{testTrip()})
	}))
	defer srv.Close()

	c := client.New(srv.URL, nil)
	trips, err := c.ListUserTrips(7)
	require.NoError(t, err)
	assert.Len(t, trips, 1)
}

func TestDestinationUsesCache(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		json.NewEncoder(w).Encode(model.Destination{ID: 3, Name: "Sigiriya"})
	}))
	defer srv.Close()

	lru := cache.New(8)
	c := client.New(srv.URL, lru)

	for i := 0; i < 3; i++ {
		dest, err := c.Destination(3)
		require.NoError(t, err)
		assert.Equal(t, "Sigiriya", dest.Name)
	}
	assert.Equal(t, 1, hits, "повторные запросы обслуживаются кэшем")

	// явная инвалидация ведет к повторному походу на сервер
	lru.Remove("3")
	_, err := c.Destination(3)
	require.NoError(t, err)
	assert.Equal(t, 2, hits)
}
