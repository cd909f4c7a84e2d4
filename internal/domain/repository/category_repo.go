package repository

import (
	"github.com/yourusername/trivia-game-api/internal/domain/entity"
)

// CategoryRepository определяет методы для работы с категориями
type CategoryRepository interface {
	GetByID(id uint) (*entity.Category, error)
	// GetPage возвращает окно limit/offset списка категорий по возрастанию id.
	GetPage(limit, offset int) ([]entity.Category, error)
	GetAll() ([]entity.Category, error)
}
