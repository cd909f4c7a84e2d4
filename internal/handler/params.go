package handler

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-game-api/internal/pagination"
)

// pageParams извлекает параметры пагинации из query-строки.
// Отсутствующие и некорректные значения заменяются умолчаниями;
// размер страницы по умолчанию приходит из конфигурации.
func pageParams(c *gin.Context, defaultLimit int) pagination.Params {
	if defaultLimit < 1 {
		defaultLimit = pagination.DefaultLimit
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if limit < 1 {
		limit = defaultLimit
	}
	return pagination.New(page, limit)
}

// flexibleID принимает идентификатор категории как JSON-число или строку.
// Идентификатор непрозрачен: значение, которое не приводится к uint,
// не считается ошибкой — оно просто ничему не соответствует.
type flexibleID struct {
	raw string
	set bool
}

// UnmarshalJSON намеренно не возвращает ошибку на неожиданных типах:
// непригодное значение остается непустым "ничем"
func (f *flexibleID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.raw = s
		f.set = true
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		f.raw = n.String()
		f.set = true
		return nil
	}
	return nil
}

// Uint возвращает идентификатор как uint и признак успешного приведения
func (f flexibleID) Uint() (uint, bool) {
	if !f.set {
		return 0, false
	}
	id, err := strconv.ParseUint(f.raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
