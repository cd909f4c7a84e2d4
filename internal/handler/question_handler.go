package handler

import (
	"encoding/csv"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/trivia-game-api/internal/domain/entity"
	"github.com/yourusername/trivia-game-api/internal/service"
)

// QuestionHandler обрабатывает запросы, связанные с вопросами
type QuestionHandler struct {
	questionService *service.QuestionService
	defaultLimit    int
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService, defaultLimit int) *QuestionHandler {
	return &QuestionHandler{questionService: questionService, defaultLimit: defaultLimit}
}

// List возвращает страницу полного списка вопросов
func (h *QuestionHandler) List(c *gin.Context) {
	list, err := h.questionService.List(pageParams(c, h.defaultLimit))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        list.Questions,
		"total_questions":  list.Total,
		"categories":       entity.CategoriesToMap(list.Categories),
		"current_category": nil,
	})
}

// Get возвращает один вопрос по id
func (h *QuestionHandler) Get(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint) // Получаем из контекста

	question, err := h.questionService.Get(questionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"question": question,
	})
}

// Delete удаляет вопрос по id
func (h *QuestionHandler) Delete(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint) // Получаем из контекста

	if err := h.questionService.Delete(questionID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// createOrSearchRequest — нетипизированное тело POST /questions.
// Вариант (поиск или создание) определяется по наличию поля searchTerm:
// даже пустая строка выбирает поиск. Это ветвление по присутствию поля,
// а не по истинности значения.
type createOrSearchRequest struct {
	SearchTerm *string     `json:"searchTerm"`
	Question   *string     `json:"question"`
	Answer     *string     `json:"answer"`
	Difficulty *int        `json:"difficulty"`
	Category   *flexibleID `json:"category"`
}

// CreateOrSearch обрабатывает двуцелевой эндпоинт POST /questions
func (h *QuestionHandler) CreateOrSearch(c *gin.Context) {
	var req createOrSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest)
		return
	}

	if req.SearchTerm != nil {
		h.search(c, *req.SearchTerm)
		return
	}
	h.create(c, &req)
}

func (h *QuestionHandler) search(c *gin.Context, term string) {
	result, err := h.questionService.Search(term, pageParams(c, h.defaultLimit))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// Ключи поиска исторически в camelCase, в отличие от списков
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"questions":       result.Questions,
		"totalQuestions":  result.Total,
		"currentCategory": nil,
	})
}

func (h *QuestionHandler) create(c *gin.Context, req *createOrSearchRequest) {
	// Неполное тело создания — это провал операции записи (422),
	// а не ошибка формата запроса: тело разобралось корректно
	if req.Question == nil || req.Answer == nil || req.Difficulty == nil || req.Category == nil {
		respondError(c, http.StatusUnprocessableEntity)
		return
	}
	categoryID, ok := req.Category.Uint()
	if !ok {
		respondError(c, http.StatusUnprocessableEntity)
		return
	}

	if _, err := h.questionService.Create(*req.Question, *req.Answer, *req.Difficulty, categoryID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Import создает вопросы из загруженного файла .xlsx или .csv
func (h *QuestionHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest)
		return
	}

	rows, err := readImportFile(fileHeader)
	if err != nil {
		respondError(c, http.StatusBadRequest)
		return
	}

	imported, err := h.questionService.ImportQuestions(rows)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"imported": imported,
	})
}

// readImportFile разбирает файл импорта в табличные строки
func readImportFile(fileHeader *multipart.FileHeader) ([][]string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".csv":
		reader := csv.NewReader(file)
		reader.FieldsPerRecord = -1 // строки валидируются по месту
		return reader.ReadAll()
	default:
		book, err := excelize.OpenReader(file)
		if err != nil {
			return nil, err
		}
		defer book.Close()
		return book.GetRows(book.GetSheetName(0))
	}
}
