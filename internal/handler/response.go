package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yourusername/trivia-game-api/internal/pkg/errors"
)

// Фиксированные сообщения конверта ошибки. Клиенты сверяются с этими
// строками, менять их нельзя.
var errorMessages = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusNotFound:            "Not Found",
	http.StatusMethodNotAllowed:    "Not Allowed Method",
	http.StatusUnprocessableEntity: "Unprocessable",
}

// respondError пишет конверт ошибки {success, error, message} и
// обрывает обработку запроса
func respondError(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error":   status,
		"message": errorMessages[status],
	})
}

// respondServiceError отображает ошибку сервиса на конверт.
// Сырые ошибки хранилища наружу не выходят: все, что не распознано,
// становится 422.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		respondError(c, http.StatusNotFound)
	case errors.Is(err, apperrors.ErrValidation):
		respondError(c, http.StatusBadRequest)
	default:
		respondError(c, http.StatusUnprocessableEntity)
	}
}

// NotFoundHandler возвращает обработчик для неизвестных маршрутов
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		respondError(c, http.StatusNotFound)
	}
}

// MethodNotAllowedHandler возвращает обработчик для неподдерживаемых методов
func MethodNotAllowedHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		respondError(c, http.StatusMethodNotAllowed)
	}
}
