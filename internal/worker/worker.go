package worker

import (
	"context"
)

// Worker интерфейс для всех воркеров
type Worker interface {
	// Start запускает воркер и блокируется до остановки
	Start(ctx context.Context) error

	// Stop сигнализирует воркеру о завершении
	Stop() error

	// Name возвращает имя воркера
	Name() string
}
