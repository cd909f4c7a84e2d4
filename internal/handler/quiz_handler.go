package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-game-api/internal/service"
)

// QuizHandler обрабатывает запросы викторины
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик викторины
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// nextQuestionRequest — тело POST /quizzes
type nextQuestionRequest struct {
	PreviousQuestions []uint        `json:"previous_questions"`
	QuizCategory      *quizCategory `json:"quiz_category"`
}

type quizCategory struct {
	ID flexibleID `json:"id"`
}

// NextQuestion возвращает следующий вопрос викторины или null,
// когда пул кандидатов исчерпан
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req nextQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest)
		return
	}

	// Тело разобралось, но категории нет — выбор невозможен
	if req.QuizCategory == nil {
		respondError(c, http.StatusUnprocessableEntity)
		return
	}

	categoryID, ok := req.QuizCategory.ID.Uint()
	if !ok {
		// Непрозрачный id, который не приводится к числу, ничему не
		// соответствует — для клиента это неотличимо от исчерпания пула
		c.JSON(http.StatusOK, gin.H{"success": true, "question": nil})
		return
	}

	question, err := h.quizService.NextQuestion(categoryID, req.PreviousQuestions)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// question == nil сериализуется в null: викторина завершена
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"question": question,
	})
}
