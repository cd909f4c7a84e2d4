package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-game-api/internal/domain/entity"
	"github.com/yourusername/trivia-game-api/internal/middleware"
	"github.com/yourusername/trivia-game-api/internal/pagination"
	"github.com/yourusername/trivia-game-api/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ============================================================================
// Моки репозиториев. Обработчики собираются с настоящими сервисами,
// подменяется только слой хранилища.
// ============================================================================

// mockQuestionRepo реализует repository.QuestionRepository
type mockQuestionRepo struct {
	mock.Mock
}

func (m *mockQuestionRepo) Create(question *entity.Question) error {
	args := m.Called(question)
	return args.Error(0)
}

func (m *mockQuestionRepo) CreateBatch(questions []entity.Question) error {
	args := m.Called(questions)
	return args.Error(0)
}

func (m *mockQuestionRepo) GetByID(id uint) (*entity.Question, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

func (m *mockQuestionRepo) GetPage(limit, offset int) ([]entity.Question, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *mockQuestionRepo) GetByCategory(categoryID uint) ([]entity.Question, error) {
	args := m.Called(categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *mockQuestionRepo) GetByCategoryExcluding(categoryID uint, excludeIDs []uint) ([]entity.Question, error) {
	args := m.Called(categoryID, excludeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *mockQuestionRepo) SearchByText(term string) ([]entity.Question, error) {
	args := m.Called(term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *mockQuestionRepo) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockQuestionRepo) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// mockCategoryRepo реализует repository.CategoryRepository
type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) GetByID(id uint) (*entity.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *mockCategoryRepo) GetPage(limit, offset int) ([]entity.Category, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Category), args.Error(1)
}

func (m *mockCategoryRepo) GetAll() ([]entity.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Category), args.Error(1)
}

// stubRand — детерминированный источник случайности для теста викторины
type stubRand struct {
	value int
}

func (s stubRand) Intn(n int) int {
	return s.value % n
}

// testEnv собирает роутер с маршрутами как в main и моками хранилища
type testEnv struct {
	router       *gin.Engine
	questionRepo *mockQuestionRepo
	categoryRepo *mockCategoryRepo
}

func newTestEnv() *testEnv {
	return newTestEnvWithLimit(pagination.DefaultLimit)
}

// newTestEnvWithLimit собирает окружение с заданным размером страницы по умолчанию
func newTestEnvWithLimit(defaultLimit int) *testEnv {
	questionRepo := new(mockQuestionRepo)
	categoryRepo := new(mockCategoryRepo)

	questionService := service.NewQuestionService(questionRepo, categoryRepo)
	quizService := service.NewQuizService(questionRepo, stubRand{value: 0})

	questionHandler := NewQuestionHandler(questionService, defaultLimit)
	categoryHandler := NewCategoryHandler(questionService, defaultLimit)
	quizHandler := NewQuizHandler(quizService)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoRoute(NotFoundHandler())
	router.NoMethod(MethodNotAllowedHandler())

	router.GET("/categories", categoryHandler.List)
	router.GET("/categories/:id/questions",
		middleware.ExtractUintParam("id", "categoryID"), categoryHandler.ListQuestions)
	router.GET("/questions", questionHandler.List)
	router.POST("/questions", questionHandler.CreateOrSearch)
	router.POST("/questions/import", questionHandler.Import)
	router.GET("/questions/:id",
		middleware.ExtractUintParam("id", "questionID"), questionHandler.Get)
	router.DELETE("/questions/:id",
		middleware.ExtractUintParam("id", "questionID"), questionHandler.Delete)
	router.POST("/quizzes", quizHandler.NextQuestion)

	return &testEnv{
		router:       router,
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
	}
}

// do выполняет запрос с опциональным JSON-телом
func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// parseJSONResponse парсит JSON ответ из *httptest.ResponseRecorder
func parseJSONResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err, "Response body should be valid JSON: %s", w.Body.String())
	return resp
}

// requireErrorEnvelope проверяет фиксированный конверт ошибки
func requireErrorEnvelope(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	require.Equal(t, status, w.Code)

	resp := parseJSONResponse(t, w)
	require.Equal(t, false, resp["success"])
	require.Equal(t, float64(status), resp["error"])
	require.Equal(t, message, resp["message"])
}
