package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-game-api/internal/domain/entity"
	"github.com/yourusername/trivia-game-api/internal/service"
)

// CategoryHandler обрабатывает запросы, связанные с категориями
type CategoryHandler struct {
	questionService *service.QuestionService
	defaultLimit    int
}

// NewCategoryHandler создает новый обработчик категорий
func NewCategoryHandler(questionService *service.QuestionService, defaultLimit int) *CategoryHandler {
	return &CategoryHandler{questionService: questionService, defaultLimit: defaultLimit}
}

// List возвращает страницу справочника категорий в виде словаря {id: type}
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.questionService.ListCategories(pageParams(c, h.defaultLimit))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": entity.CategoriesToMap(categories),
	})
}

// ListQuestions возвращает страницу вопросов выбранной категории
func (h *CategoryHandler) ListQuestions(c *gin.Context) {
	categoryID := c.MustGet("categoryID").(uint) // Получаем из контекста

	list, err := h.questionService.ListByCategory(categoryID, pageParams(c, h.defaultLimit))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        list.Questions,
		"total_questions":  list.Total,
		"current_category": list.Category.Type,
	})
}
