package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/yourusername/trivia-game-api/internal/config"
	"github.com/yourusername/trivia-game-api/internal/domain/entity"
	"github.com/yourusername/trivia-game-api/pkg/database"
)

// seedFile описывает фикстуру стартовых данных
type seedFile struct {
	Categories []entity.Category `json:"categories"`
	Questions  []entity.Question `json:"questions"`
}

// Утилита заливает стартовые категории и вопросы из JSON-файла.
// Запускается вручную после первого применения миграций.
func main() {
	var (
		configPath = flag.String("config", "config/config.yaml", "путь к файлу конфигурации")
		seedPath   = flag.String("seed", "data/trivia_seed.json", "путь к файлу с данными")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	raw, err := os.ReadFile(*seedPath)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}

	var seed seedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		log.Fatalf("Failed to parse seed file: %v", err)
	}

	if len(seed.Categories) > 0 {
		if err := db.Create(&seed.Categories).Error; err != nil {
			log.Fatalf("Failed to seed categories: %v", err)
		}
		log.Printf("Seeded %d categories", len(seed.Categories))
	}

	if len(seed.Questions) > 0 {
		if err := db.Create(&seed.Questions).Error; err != nil {
			log.Fatalf("Failed to seed questions: %v", err)
		}
		log.Printf("Seeded %d questions", len(seed.Questions))
	}

	log.Println("Seed completed")
}
