package service

import (
	"fmt"

	"github.com/yourusername/trivia-game-api/internal/domain/entity"
	"github.com/yourusername/trivia-game-api/internal/domain/repository"
)

// Rand — источник случайности для выбора вопроса. Интерфейс позволяет
// подменять math/rand детерминированным источником в тестах.
type Rand interface {
	Intn(n int) int
}

// QuizService выбирает следующий вопрос викторины.
// Состояние сессии (уже показанные вопросы) целиком живет у клиента
// и передается с каждым запросом.
type QuizService struct {
	questionRepo repository.QuestionRepository
	rnd          Rand
}

// NewQuizService создает новый сервис викторины
func NewQuizService(questionRepo repository.QuestionRepository, rnd Rand) *QuizService {
	return &QuizService{
		questionRepo: questionRepo,
		rnd:          rnd,
	}
}

// NextQuestion возвращает случайный вопрос категории, не входящий в
// previousIDs. Каждый оставшийся кандидат равновероятен. Исчерпанный пул
// и категория без вопросов неразличимы для вызывающего: оба дают (nil, nil),
// это нормальное завершение викторины, а не ошибка.
func (s *QuizService) NextQuestion(categoryID uint, previousIDs []uint) (*entity.Question, error) {
	candidates, err := s.questionRepo.GetByCategoryExcluding(categoryID, previousIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz candidates: %w", err)
	}

	if len(candidates) == 0 {
		return nil, nil
	}

	question := candidates[s.rnd.Intn(len(candidates))]
	return &question, nil
}
