package entity

import "time"

// Question представляет вопрос викторины.
// Текст вопроса намеренно сериализуется под ключом "question" —
// этого формата ожидает фронтенд.
type Question struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Text       string    `gorm:"column:question;size:1000;not null" json:"question"`
	Answer     string    `gorm:"size:500;not null" json:"answer"`
	Difficulty int       `gorm:"not null;default:1" json:"difficulty"`
	CategoryID uint      `gorm:"column:category;not null;index" json:"category"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}
