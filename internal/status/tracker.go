// Package status реализует локальный трекер статусов посещения активностей.
// Трекер - единственный источник истины о том, какая активность посещена;
// состояние переживает перезапуск без сохранения всего маршрута на сервере.
package status

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS activity_status (
    trip_id        TEXT NOT NULL,
    day_index      INTEGER NOT NULL,
    activity_index INTEGER NOT NULL,
    visited        INTEGER NOT NULL CHECK (visited IN (0,1)),
    PRIMARY KEY (trip_id, day_index, activity_index)
);

CREATE TABLE IF NOT EXISTS trip_notes (
    trip_id TEXT PRIMARY KEY,
    notes   TEXT NOT NULL DEFAULT ''
);
`

type statusKey struct {
	tripID string
	day    int
	act    int
}

// Tracker хранит статусы посещения в памяти и пишет каждое изменение
// насквозь в локальную базу SQLite, чтобы состояние переживало перезапуск.
type Tracker struct {
	db *sql.DB

	mu      sync.Mutex
	visited map[statusKey]bool
}

// DefaultPath возвращает путь локальной базы трекера (~/.tripplanner/planner.db).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("не удалось определить домашний каталог: %w", err)
	}
	return filepath.Join(home, ".tripplanner", "planner.db"), nil
}

// Open открывает (или создает) локальную базу трекера и загружает статусы в память.
func Open(path string) (*Tracker, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("не удалось создать каталог данных: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть локальную базу: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("локальная база недоступна: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("не удалось инициализировать схему: %w", err)
	}

	t := &Tracker{db: db, visited: make(map[statusKey]bool)}
	if err := t.load(); err != nil {
		db.Close()
		return nil, err
	}
	return t, nil
}

// load считывает все сохраненные статусы в память.
func (t *Tracker) load() error {
	rows, err := t.db.Query("SELECT trip_id, day_index, activity_index, visited FROM activity_status")
	if err != nil {
		return fmt.Errorf("не удалось загрузить статусы: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var k statusKey
		var v int
		if err := rows.Scan(&k.tripID, &k.day, &k.act, &v); err != nil {
			return fmt.Errorf("не удалось прочитать строку статуса: %w", err)
		}
		t.visited[k] = v == 1
	}
	return rows.Err()
}

// Get возвращает статус посещения активности. Отсутствие записи - не ошибка,
// а состояние по умолчанию: не посещена.
func (t *Tracker) Get(tripID string, dayIndex, activityIndex int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visited[statusKey{tripID, dayIndex, activityIndex}]
}

// Toggle переключает статус активности и немедленно сохраняет его локально.
// Сетевая запись не выполняется: удаленную долговечность трекер не гарантирует.
func (t *Tracker) Toggle(tripID string, dayIndex, activityIndex int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	k := statusKey{tripID, dayIndex, activityIndex}
	next := !t.visited[k]

	v := 0
	if next {
		v = 1
	}
	_, err := t.db.Exec(`INSERT INTO activity_status (trip_id, day_index, activity_index, visited)
	                     VALUES (?, ?, ?, ?)
	                     ON CONFLICT(trip_id, day_index, activity_index)
	                     DO UPDATE SET visited = excluded.visited`,
		tripID, dayIndex, activityIndex, v)
	if err != nil {
		return fmt.Errorf("не удалось сохранить статус активности: %w", err)
	}
	t.visited[k] = next
	return nil
}

// StatusFunc возвращает снимок-функцию статусов для подсчета прогресса маршрута.
func (t *Tracker) StatusFunc(tripID string) func(dayIndex, activityIndex int) bool {
	return func(dayIndex, activityIndex int) bool {
		return t.Get(tripID, dayIndex, activityIndex)
	}
}

// Notes возвращает локальные заметки по маршруту (пустая строка, если их нет).
func (t *Tracker) Notes(tripID string) (string, error) {
	var notes string
	err := t.db.QueryRow("SELECT notes FROM trip_notes WHERE trip_id = ?", tripID).Scan(&notes)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("не удалось прочитать заметки: %w", err)
	}
	return notes, nil
}

// SetNotes сохраняет локальные заметки по маршруту.
func (t *Tracker) SetNotes(tripID, notes string) error {
	_, err := t.db.Exec(`INSERT INTO trip_notes (trip_id, notes) VALUES (?, ?)
	                     ON CONFLICT(trip_id) DO UPDATE SET notes = excluded.notes`,
		tripID, notes)
	if err != nil {
		return fmt.Errorf("не удалось сохранить заметки: %w", err)
	}
	return nil
}

// Forget удаляет все локальное состояние маршрута (после удаления на сервере).
func (t *Tracker) Forget(tripID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, err := t.db.Exec("DELETE FROM activity_status WHERE trip_id = ?", tripID); err != nil {
		return fmt.Errorf("не удалось удалить статусы маршрута: %w", err)
	}
	if _, err := t.db.Exec("DELETE FROM trip_notes WHERE trip_id = ?", tripID); err != nil {
		return fmt.Errorf("не удалось удалить заметки маршрута: %w", err)
	}
	for k := range t.visited {
		if k.tripID == tripID {
			delete(t.visited, k)
		}
	}
	return nil
}

// Close закрывает локальную базу.
func (t *Tracker) Close() error {
	return t.db.Close()
}
