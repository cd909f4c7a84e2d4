// Package pagination реализует оконную пагинацию результатов выборки.
// Страница — полуоткрытое окно [(page-1)*limit, page*limit) упорядоченного
// списка; окно либо вырезается из списка в памяти, либо спускается
// в хранилище как limit/offset — результат обязан совпадать.
package pagination

// DefaultLimit — размер страницы по умолчанию
const DefaultLimit = 10

// Params задает 1-базную страницу и ее размер
type Params struct {
	Page  int
	Limit int
}

// New нормализует параметры: page < 1 заменяется на 1,
// limit < 1 — на DefaultLimit.
func New(page, limit int) Params {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return Params{Page: page, Limit: limit}
}

// Offset возвращает смещение начала окна
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Window возвращает границы окна [start, end), обрезанные по total.
// Для страницы за пределами списка start == end.
func (p Params) Window(total int) (start, end int) {
	start = p.Offset()
	if start > total {
		start = total
	}
	end = start + p.Limit
	if end > total {
		end = total
	}
	return start, end
}

// Slice вырезает страницу из материализованного списка
func Slice[T any](items []T, p Params) []T {
	start, end := p.Window(len(items))
	return items[start:end]
}
