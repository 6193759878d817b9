package main

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/internal/client"
	"tripplanner/internal/status"
)

// При отказе сервера локальные отметки остаются на месте: маршрут
// считается живым.
func TestDeleteTripFailureKeepsLocalState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	tracker, err := status.Open(filepath.Join(t.TempDir(), "planner.db"))
	require.NoError(t, err)
	defer tracker.Close()

	const tripID = "a4c8f2e6-1b3d-4f5a-9c7e-8d2b6a0e4f1c"
	require.NoError(t, tracker.Toggle(tripID, 0, 0))

	err = deleteTrip(client.New(srv.URL, nil), tracker, tripID)
	var de *client.DeleteError
	require.ErrorAs(t, err, &de)

	assert.True(t, tracker.Get(tripID, 0, 0), "отметки удаляются только после успеха на сервере")
}

func TestDeleteTripClearsLocalState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	tracker, err := status.Open(filepath.Join(t.TempDir(), "planner.db"))
	require.NoError(t, err)
	defer tracker.Close()

	const tripID = "a4c8f2e6-1b3d-4f5a-9c7e-8d2b6a0e4f1c"
	require.NoError(t, tracker.Toggle(tripID, 0, 0))

	require.NoError(t, deleteTrip(client.New(srv.URL, nil), tracker, tripID))
	assert.False(t, tracker.Get(tripID, 0, 0))
}
