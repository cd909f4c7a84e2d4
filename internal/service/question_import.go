package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yourusername/trivia-game-api/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-game-api/internal/pkg/errors"
)

// importColumns — ожидаемый порядок колонок файла импорта
const importColumns = 4 // question, answer, difficulty, category

// ImportQuestions создает вопросы из табличных строк (xlsx или csv).
// Первая строка пропускается, если выглядит как заголовок.
// Любая некорректная строка отклоняет весь файл (ErrValidation),
// чтобы не сохранять файл наполовину.
func (s *QuestionService) ImportQuestions(rows [][]string) (int, error) {
	if len(rows) > 0 && isHeaderRow(rows[0]) {
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return 0, fmt.Errorf("%w: file contains no question rows", apperrors.ErrValidation)
	}

	questions := make([]entity.Question, 0, len(rows))
	for i, row := range rows {
		q, err := parseImportRow(row)
		if err != nil {
			return 0, fmt.Errorf("%w: row %d: %v", apperrors.ErrValidation, i+1, err)
		}
		questions = append(questions, *q)
	}

	if err := s.questionRepo.CreateBatch(questions); err != nil {
		return 0, fmt.Errorf("failed to import questions: %w", err)
	}
	return len(questions), nil
}

func parseImportRow(row []string) (*entity.Question, error) {
	if len(row) < importColumns {
		return nil, fmt.Errorf("expected %d columns, got %d", importColumns, len(row))
	}

	text := strings.TrimSpace(row[0])
	answer := strings.TrimSpace(row[1])
	if text == "" || answer == "" {
		return nil, fmt.Errorf("question and answer must not be empty")
	}

	difficulty, err := strconv.Atoi(strings.TrimSpace(row[2]))
	if err != nil || difficulty < 1 {
		return nil, fmt.Errorf("invalid difficulty %q", row[2])
	}

	categoryID, err := strconv.ParseUint(strings.TrimSpace(row[3]), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid category id %q", row[3])
	}

	return &entity.Question{
		Text:       text,
		Answer:     answer,
		Difficulty: difficulty,
		CategoryID: uint(categoryID),
	}, nil
}

// isHeaderRow распознает строку заголовка по нечисловой колонке difficulty
func isHeaderRow(row []string) bool {
	if len(row) < importColumns {
		return false
	}
	_, err := strconv.Atoi(strings.TrimSpace(row[2]))
	return err != nil
}
