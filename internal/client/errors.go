package client

import (
	"errors"
	"fmt"
)

// ErrNotFound возвращается, когда сервер отвечает 404 на запрос маршрута.
var ErrNotFound = errors.New("маршрут не найден")

// FetchError - ошибка чтения (сеть или не-2xx ответ). Вызывающий код
// показывает состояние ошибки с возможностью повторить запрос вручную.
type FetchError struct {
	URL        string
	StatusCode int // 0, если ответ не получен
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("ошибка получения данных (%s): статус %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("ошибка получения данных (%s): %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// CreateError - отказ сервера при создании маршрута. Повторная отправка
// автоматически не выполняется.
type CreateError struct {
	StatusCode int
	Err        error
}

func (e *CreateError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("не удалось создать маршрут: статус %d", e.StatusCode)
	}
	return fmt.Sprintf("не удалось создать маршрут: %v", e.Err)
}

func (e *CreateError) Unwrap() error { return e.Err }

// UpdateError - отказ сервера при сохранении маршрута.
type UpdateError struct {
	StatusCode int
	Err        error
}

func (e *UpdateError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("не удалось сохранить маршрут: статус %d", e.StatusCode)
	}
	return fmt.Sprintf("не удалось сохранить маршрут: %v", e.Err)
}

func (e *UpdateError) Unwrap() error { return e.Err }

// DeleteError - отказ сервера при удалении маршрута. При ошибке вызывающий
// код обязан оставить маршрут в локальном списке.
type DeleteError struct {
	StatusCode int
	Err        error
}

func (e *DeleteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("не удалось удалить маршрут: статус %d", e.StatusCode)
	}
	return fmt.Sprintf("не удалось удалить маршрут: %v", e.Err)
}

func (e *DeleteError) Unwrap() error { return e.Err }
