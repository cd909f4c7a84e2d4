package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/trivia-game-api/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-game-api/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает новый вопрос
func (r *QuestionRepo) Create(question *entity.Question) error {
	return r.db.Create(question).Error
}

// CreateBatch создает пакет вопросов в одной транзакции
func (r *QuestionRepo) CreateBatch(questions []entity.Question) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&questions).Error
	})
}

// GetByID возвращает вопрос по ID
func (r *QuestionRepo) GetByID(id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// GetPage возвращает окно limit/offset полного списка вопросов.
// Окно спускается в SQL, результат идентичен срезу полного списка в памяти.
func (r *QuestionRepo) GetPage(limit, offset int) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Order("id").Limit(limit).Offset(offset).Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// GetByCategory возвращает все вопросы заданной категории
func (r *QuestionRepo) GetByCategory(categoryID uint) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Where("category = ?", categoryID).Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// GetByCategoryExcluding возвращает вопросы категории, исключая уже показанные
func (r *QuestionRepo) GetByCategoryExcluding(categoryID uint, excludeIDs []uint) ([]entity.Question, error) {
	var questions []entity.Question

	query := r.db.Where("category = ?", categoryID)
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	err := query.Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// SearchByText возвращает вопросы, текст которых содержит term без учета регистра
func (r *QuestionRepo) SearchByText(term string) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Where("question ILIKE ?", "%"+term+"%").Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// Count возвращает общее количество вопросов
func (r *QuestionRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Question{}).Count(&count).Error
	return count, err
}

// Delete удаляет вопрос. Отсутствующая запись — ErrNotFound.
func (r *QuestionRepo) Delete(id uint) error {
	result := r.db.Delete(&entity.Question{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
