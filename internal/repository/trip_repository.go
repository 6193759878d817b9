package repository

import (
	"database/sql"
	"fmt"

	"tripplanner/internal/model"

	"github.com/jmoiron/sqlx"
)

// TripRepository обеспечивает доступ к данным маршрутов в базе данных.
// Маршрут хранится в трех таблицах: trips, day_plans и activities;
// порядок активностей задается колонкой order_index.
type TripRepository struct {
	db *sqlx.DB
}

// NewTripRepository создает новый репозиторий маршрутов.
func NewTripRepository(db *sqlx.DB) *TripRepository {
	return &TripRepository{db: db}
}

// activityRow - строка таблицы activities вместе с номером дня.
type activityRow struct {
	Day        int `db:"day"`
	OrderIndex int `db:"order_index"`
	model.Activity
}

// Create сохраняет новый маршрут целиком (идентификатор уже назначен сервисом).
func (r *TripRepository) Create(trip *model.Trip) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("не удалось начать транзакцию: %w", err)
	}
	if _, err := tx.Exec(`INSERT INTO trips (id, user_id, title, destination, duration, total_estimated_cost, estimated_walking_distance)
	                      VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		trip.ID, trip.UserID, trip.Title, trip.Destination, trip.Duration,
		trip.TotalEstimatedCost, trip.EstimatedWalkingDistance); err != nil {
		tx.Rollback()
		return fmt.Errorf("не удалось создать маршрут: %w", err)
	}
	if err := insertPlans(tx, trip); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// insertPlans записывает дни и активности маршрута в текущем порядке.
func insertPlans(tx *sqlx.Tx, trip *model.Trip) error {
	for _, day := range trip.DailyPlans {
		var dayPlanID int
		err := tx.QueryRow(`INSERT INTO day_plans (trip_id, day) VALUES ($1, $2) RETURNING id`,
			trip.ID, day.Day).Scan(&dayPlanID)
		if err != nil {
			return fmt.Errorf("не удалось сохранить день %d: %w", day.Day, err)
		}
		for idx, act := range day.Activities {
			_, err := tx.Exec(`INSERT INTO activities (day_plan_id, order_index, title, description, time_of_day, duration, estimated_cost, location, address, category)
			                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
				dayPlanID, idx+1, act.Title, act.Description, act.TimeOfDay,
				act.Duration, act.EstimatedCost, act.Location, act.Address, act.Category)
			if err != nil {
				return fmt.Errorf("не удалось сохранить активность дня %d: %w", day.Day, err)
			}
		}
	}
	return nil
}

// GetByID возвращает маршрут со всеми днями и активностями в текущем порядке.
func (r *TripRepository) GetByID(id string) (*model.Trip, error) {
	var trip model.Trip
	err := r.db.Get(&trip, "SELECT * FROM trips WHERE id=$1", id)
	if err != nil {
		return nil, err
	}
	if err := r.loadPlans(&trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

// loadPlans восстанавливает вложенную структуру дней и активностей маршрута.
func (r *TripRepository) loadPlans(trip *model.Trip) error {
	var days []int
	err := r.db.Select(&days, "SELECT day FROM day_plans WHERE trip_id=$1 ORDER BY day", trip.ID)
	if err != nil {
		return fmt.Errorf("ошибка при получении дней маршрута: %w", err)
	}
	rows := []activityRow{}
	err = r.db.Select(&rows,
		`SELECT dp.day, a.order_index, a.title, a.description, a.time_of_day, a.duration,
		        a.estimated_cost, a.location, a.address, a.category
		 FROM activities a
		 JOIN day_plans dp ON a.day_plan_id = dp.id
		 WHERE dp.trip_id=$1
		 ORDER BY dp.day, a.order_index`, trip.ID)
	if err != nil {
		return fmt.Errorf("ошибка при получении активностей маршрута: %w", err)
	}

	trip.DailyPlans = make([]model.DayPlan, 0, len(days))
	byDay := make(map[int]int, len(days))
	for i, day := range days {
		trip.DailyPlans = append(trip.DailyPlans, model.DayPlan{Day: day, Activities: []model.Activity{}})
		byDay[day] = i
	}
	for _, row := range rows {
		i := byDay[row.Day]
		trip.DailyPlans[i].Activities = append(trip.DailyPlans[i].Activities, row.Activity)
	}
	return nil
}

// Replace полностью заменяет содержимое маршрута (семантика PUT): шапка
// обновляется, дни и активности перезаписываются в одной транзакции.
func (r *TripRepository) Replace(trip *model.Trip) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("не удалось начать транзакцию: %w", err)
	}
	res, err := tx.Exec(`UPDATE trips SET title=$1, destination=$2, duration=$3,
	                     total_estimated_cost=$4, estimated_walking_distance=$5 WHERE id=$6`,
		trip.Title, trip.Destination, trip.Duration,
		trip.TotalEstimatedCost, trip.EstimatedWalkingDistance, trip.ID)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("не удалось обновить маршрут: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		tx.Rollback()
		return sql.ErrNoRows
	}
	// активности удаляются каскадно вместе с днями
	if _, err := tx.Exec("DELETE FROM day_plans WHERE trip_id=$1", trip.ID); err != nil {
		tx.Rollback()
		return fmt.Errorf("не удалось перезаписать дни маршрута: %w", err)
	}
	if err := insertPlans(tx, trip); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Delete удаляет маршрут. Возвращает sql.ErrNoRows, если маршрута нет.
func (r *TripRepository) Delete(id string) error {
	res, err := r.db.Exec("DELETE FROM trips WHERE id=$1", id)
	if err != nil {
		return fmt.Errorf("не удалось удалить маршрут: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListByUser возвращает все маршруты пользователя с полным содержимым.
func (r *TripRepository) ListByUser(userID int) ([]model.Trip, error) {
	trips := []model.Trip{}
	err := r.db.Select(&trips, "SELECT * FROM trips WHERE user_id=$1 ORDER BY title", userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении маршрутов пользователя: %w", err)
	}
	for i := range trips {
		if err := r.loadPlans(&trips[i]); err != nil {
			return nil, err
		}
	}
	return trips, nil
}
