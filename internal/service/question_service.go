package service

import (
	"fmt"

	"github.com/yourusername/trivia-game-api/internal/domain/entity"
	"github.com/yourusername/trivia-game-api/internal/domain/repository"
	"github.com/yourusername/trivia-game-api/internal/pagination"
	apperrors "github.com/yourusername/trivia-game-api/internal/pkg/errors"
)

// QuestionService предоставляет операции чтения, поиска, создания и
// удаления вопросов. Пустая страница любой выборки — apperrors.ErrNotFound:
// это осознанное продуктовое решение, а не общая семантика пагинации,
// на нем завязаны все list-эндпоинты.
type QuestionService struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(
	questionRepo repository.QuestionRepository,
	categoryRepo repository.CategoryRepository,
) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
	}
}

// QuestionList — страница общего списка вопросов вместе со справочником категорий
type QuestionList struct {
	Questions  []entity.Question
	Total      int64
	Categories []entity.Category
}

// CategoryQuestionList — страница вопросов одной категории
type CategoryQuestionList struct {
	Questions []entity.Question
	Total     int
	Category  *entity.Category
}

// SearchResult — результат текстового поиска. В отличие от списков,
// пустой результат поиска — успех, а не ErrNotFound.
type SearchResult struct {
	Questions []entity.Question
	Total     int
}

// List возвращает страницу полного списка вопросов.
// Окно спускается в хранилище как limit/offset.
func (s *QuestionService) List(p pagination.Params) (*QuestionList, error) {
	total, err := s.questionRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}

	questions, err := s.questionRepo.GetPage(p.Limit, p.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to get questions page: %w", err)
	}
	if len(questions) == 0 {
		return nil, apperrors.ErrNotFound
	}

	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	return &QuestionList{
		Questions:  questions,
		Total:      total,
		Categories: categories,
	}, nil
}

// ListByCategory возвращает страницу вопросов категории.
// Категория без вопросов и страница за пределами выборки — ErrNotFound.
func (s *QuestionService) ListByCategory(categoryID uint, p pagination.Params) (*CategoryQuestionList, error) {
	candidates, err := s.questionRepo.GetByCategory(categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions by category: %w", err)
	}
	if len(candidates) == 0 {
		return nil, apperrors.ErrNotFound
	}

	page := pagination.Slice(candidates, p)
	if len(page) == 0 {
		return nil, apperrors.ErrNotFound
	}

	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, err
	}

	return &CategoryQuestionList{
		Questions: page,
		Total:     len(candidates),
		Category:  category,
	}, nil
}

// ListCategories возвращает страницу справочника категорий
func (s *QuestionService) ListCategories(p pagination.Params) ([]entity.Category, error) {
	categories, err := s.categoryRepo.GetPage(p.Limit, p.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to get categories page: %w", err)
	}
	if len(categories) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return categories, nil
}

// Search возвращает вопросы, текст которых содержит term (без учета
// регистра), постранично. Пустой term — это "без фильтра": отдается
// страница полного списка, а не буквальное совпадение со всем подряд.
func (s *QuestionService) Search(term string, p pagination.Params) (*SearchResult, error) {
	var result SearchResult

	if term == "" {
		total, err := s.questionRepo.Count()
		if err != nil {
			return nil, fmt.Errorf("failed to count questions: %w", err)
		}
		questions, err := s.questionRepo.GetPage(p.Limit, p.Offset())
		if err != nil {
			return nil, fmt.Errorf("failed to get questions page: %w", err)
		}
		result = SearchResult{Questions: questions, Total: int(total)}
	} else {
		candidates, err := s.questionRepo.SearchByText(term)
		if err != nil {
			return nil, fmt.Errorf("failed to search questions: %w", err)
		}
		result = SearchResult{
			Questions: pagination.Slice(candidates, p),
			Total:     len(candidates),
		}
	}

	// GORM оставляет срез nil при пустой выборке; клиенту уходит [], а не null
	if result.Questions == nil {
		result.Questions = []entity.Question{}
	}

	return &result, nil
}

// Get возвращает вопрос по id
func (s *QuestionService) Get(id uint) (*entity.Question, error) {
	return s.questionRepo.GetByID(id)
}

// Create сохраняет новый вопрос
func (s *QuestionService) Create(text, answer string, difficulty int, categoryID uint) (*entity.Question, error) {
	question := &entity.Question{
		Text:       text,
		Answer:     answer,
		Difficulty: difficulty,
		CategoryID: categoryID,
	}
	if err := s.questionRepo.Create(question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	return question, nil
}

// Delete удаляет вопрос. Отсутствующий id — ErrNotFound,
// ошибка удаления существующей записи — ErrUnprocessable.
func (s *QuestionService) Delete(id uint) error {
	if _, err := s.questionRepo.GetByID(id); err != nil {
		return err
	}
	if err := s.questionRepo.Delete(id); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrUnprocessable, err)
	}
	return nil
}
