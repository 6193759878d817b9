package status_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/internal/status"
)

const tripID = "a3a4e1f2-0000-4000-8000-000000000042"

func openTracker(t *testing.T, path string) *status.Tracker {
	t.Helper()
	tr, err := status.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { tr.Close() })
	return tr
}

func TestGetDefaultsToNotVisited(t *testing.T) {
	tr := openTracker(t, filepath.Join(t.TempDir(), "planner.db"))
	assert.False(t, tr.Get(tripID, 0, 0))
	// повторный вызов без изменений возвращает то же значение
	assert.False(t, tr.Get(tripID, 0, 0))
}

func TestToggleRoundTrip(t *testing.T) {
	tr := openTracker(t, filepath.Join(t.TempDir(), "planner.db"))

	require.NoError(t, tr.Toggle(tripID, 1, 2))
	assert.True(t, tr.Get(tripID, 1, 2))

	// двойное переключение возвращает исходное состояние
	require.NoError(t, tr.Toggle(tripID, 1, 2))
	assert.False(t, tr.Get(tripID, 1, 2))
}

func TestStateSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.db")

	tr, err := status.Open(path)
	require.NoError(t, err)
	require.NoError(t, tr.Toggle(tripID, 0, 1))
	require.NoError(t, tr.SetNotes(tripID, "take the early train"))
	require.NoError(t, tr.Close())

	tr2 := openTracker(t, path)
	assert.True(t, tr2.Get(tripID, 0, 1))
	assert.False(t, tr2.Get(tripID, 0, 0))

	notes, err := tr2.Notes(tripID)
	require.NoError(t, err)
	assert.Equal(t, "take the early train", notes)
}

func TestNotesDefaultEmpty(t *testing.T) {
	tr := openTracker(t, filepath.Join(t.TempDir(), "planner.db"))
	notes, err := tr.Notes(tripID)
	require.NoError(t, err)
	assert.Equal(t, "", notes)
}

func TestForgetClearsTripState(t *testing.T) {
	tr := openTracker(t, filepath.Join(t.TempDir(), "planner.db"))
	other := "b1b2c3d4-0000-4000-8000-000000000099"

	require.NoError(t, tr.Toggle(tripID, 0, 0))
	require.NoError(t, tr.Toggle(other, 0, 0))
	require.NoError(t, tr.SetNotes(tripID, "old notes"))

	require.NoError(t, tr.Forget(tripID))
	assert.False(t, tr.Get(tripID, 0, 0))
	assert.True(t, tr.Get(other, 0, 0), "чужой маршрут не затрагивается")

	notes, err := tr.Notes(tripID)
	require.NoError(t, err)
	assert.Equal(t, "", notes)
}

func TestStatusFuncReflectsToggles(t *testing.T) {
	tr := openTracker(t, filepath.Join(t.TempDir(), "planner.db"))
	fn := tr.StatusFunc(tripID)

	assert.False(t, fn(0, 0))
	require.NoError(t, tr.Toggle(tripID, 0, 0))
	assert.True(t, fn(0, 0))
}
