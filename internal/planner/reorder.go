package planner

import (
	"fmt"

	"tripplanner/internal/model"
)

// MoveActivity перемещает активность с позиции (srcDay, srcIdx) на позицию
// (dstDay, dstIdx). Индексы дней и активностей нулевые. Перенос выполняется
// в два шага - удаление, затем вставка, - поэтому целевой индекс трактуется
// относительно последовательности уже без перемещаемой активности (при
// переносе внутри одного дня это снимает сдвиг индексов после удаления).
// Новый порядок становится долговечным только после сохранения маршрута.
func MoveActivity(trip *model.Trip, srcDay, srcIdx, dstDay, dstIdx int) error {
	if srcDay < 0 || srcDay >= len(trip.DailyPlans) {
		return fmt.Errorf("некорректный индекс исходного дня: %d", srcDay)
	}
	if dstDay < 0 || dstDay >= len(trip.DailyPlans) {
		return fmt.Errorf("некорректный индекс целевого дня: %d", dstDay)
	}
	src := &trip.DailyPlans[srcDay]
	if srcIdx < 0 || srcIdx >= len(src.Activities) {
		return fmt.Errorf("некорректный индекс активности %d в дне %d", srcIdx, srcDay+1)
	}

	// Шаг 1: удаляем активность из исходного дня; соседи сдвигаются ровно на один.
	act := src.Activities[srcIdx]
	src.Activities = append(src.Activities[:srcIdx], src.Activities[srcIdx+1:]...)

	dst := &trip.DailyPlans[dstDay]
	if dstIdx < 0 || dstIdx > len(dst.Activities) {
		// Откатываем удаление, маршрут остается без изменений.
		src.Activities = append(src.Activities[:srcIdx], append([]model.Activity{act}, src.Activities[srcIdx:]...)...)
		return fmt.Errorf("некорректная целевая позиция %d в дне %d", dstIdx, dstDay+1)
	}

	// Шаг 2: вставляем на целевую позицию, сдвигая последующие активности.
	dst.Activities = append(dst.Activities[:dstIdx], append([]model.Activity{act}, dst.Activities[dstIdx:]...)...)
	return nil
}
