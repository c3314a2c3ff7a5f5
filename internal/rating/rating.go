package rating

import (
	"fmt"
	"strings"
)

const maxStars = 5

// Widget — сессионное состояние звёздного рейтинга магазина.
// Preview соответствует наведению курсора в исходном виджете: временная
// подсветка, которая не меняет выбранную оценку.
type Widget struct {
	rating  int
	preview int
}

// New возвращает виджет без выставленной оценки.
func New() *Widget {
	return &Widget{}
}

// Rate фиксирует оценку, ограничивая её диапазоном 1..5.
func (w *Widget) Rate(value int) {
	if value < 1 {
		value = 1
	}
	if value > maxStars {
		value = maxStars
	}
	w.rating = value
	w.preview = 0
}

// Preview временно подсвечивает value звёзд, не меняя оценку.
func (w *Widget) Preview(value int) {
	if value < 0 {
		value = 0
	}
	if value > maxStars {
		value = maxStars
	}
	w.preview = value
}

// ClearPreview снимает подсветку и возвращает отображение к выбранной оценке.
func (w *Widget) ClearPreview() {
	w.preview = 0
}

// Rating возвращает выбранную оценку; 0 — оценки ещё нет.
func (w *Widget) Rating() int {
	return w.rating
}

// Stars возвращает строку из пяти звёзд с учётом активной подсветки.
func (w *Widget) Stars() string {
	lit := w.rating
	if w.preview > 0 {
		lit = w.preview
	}

	var b strings.Builder
	for i := 1; i <= maxStars; i++ {
		if i <= lit {
			b.WriteRune('★')
		} else {
			b.WriteRune('☆')
		}
	}
	return b.String()
}

// Result возвращает текст под звёздами.
func (w *Widget) Result() string {
	if w.rating == 0 {
		return "No rating yet"
	}
	return fmt.Sprintf("You rated this shop %d out of %d! Thank you!", w.rating, maxStars)
}
