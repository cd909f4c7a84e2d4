package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/trivia-game-api/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-game-api/internal/pkg/errors"
)

// CategoryRepo реализует repository.CategoryRepository
type CategoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepo создает новый репозиторий категорий
func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// GetByID возвращает категорию по ID
func (r *CategoryRepo) GetByID(id uint) (*entity.Category, error) {
	var category entity.Category
	err := r.db.First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// GetPage возвращает окно limit/offset списка категорий
func (r *CategoryRepo) GetPage(limit, offset int) ([]entity.Category, error) {
	var categories []entity.Category
	err := r.db.Order("id").Limit(limit).Offset(offset).Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// GetAll возвращает все категории по возрастанию id
func (r *CategoryRepo) GetAll() ([]entity.Category, error) {
	var categories []entity.Category
	err := r.db.Order("id").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
