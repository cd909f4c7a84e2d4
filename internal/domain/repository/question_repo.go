package repository

import (
	"github.com/yourusername/trivia-game-api/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами.
// Все выборки упорядочены по возрастанию id.
type QuestionRepository interface {
	Create(question *entity.Question) error
	CreateBatch(questions []entity.Question) error
	GetByID(id uint) (*entity.Question, error)
	// GetPage возвращает окно limit/offset полного списка вопросов.
	GetPage(limit, offset int) ([]entity.Question, error)
	// GetByCategory возвращает все вопросы категории без пагинации.
	GetByCategory(categoryID uint) ([]entity.Question, error)
	// GetByCategoryExcluding возвращает вопросы категории, id которых
	// не входят в excludeIDs. Пустой excludeIDs допустим.
	GetByCategoryExcluding(categoryID uint, excludeIDs []uint) ([]entity.Question, error)
	// SearchByText возвращает вопросы, текст которых содержит term
	// без учета регистра.
	SearchByText(term string) ([]entity.Question, error)
	Count() (int64, error)
	// Delete удаляет вопрос; возвращает ErrNotFound, если записи нет.
	Delete(id uint) error
}
