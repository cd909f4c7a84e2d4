package entity

import "strconv"

// Category представляет категорию вопросов.
// Категории читаются из справочника, API их не создает и не удаляет.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"size:100;not null" json:"type"`
}

// TableName определяет имя таблицы для GORM
func (Category) TableName() string {
	return "categories"
}

// CategoriesToMap сворачивает список категорий в словарь {"id": "type"},
// в том виде, в котором его отдают все read-эндпоинты.
func CategoriesToMap(categories []Category) map[string]string {
	result := make(map[string]string, len(categories))
	for _, c := range categories {
		result[strconv.FormatUint(uint64(c.ID), 10)] = c.Type
	}
	return result
}
