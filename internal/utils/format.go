package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// FormatPoints форматирует количество баллов для отображения
func FormatPoints(points int) string {
	if points == 1 {
		return "1 point"
	}
	return fmt.Sprintf("%s points", groupThousands(points))
}

// groupThousands вставляет разделители тысяч
func groupThousands(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return s
}

// FormatDate форматирует дату для отображения (Jan 2, 2006)
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatRelativeTime форматирует относительное время ("2 days ago")
func FormatRelativeTime(t time.Time, now time.Time) string {
	diff := now.Sub(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%d days ago", int(diff.Hours()/24))
	case diff < 28*24*time.Hour:
		return fmt.Sprintf("%d weeks ago", int(diff.Hours()/(24*7)))
	default:
		return FormatDate(t)
	}
}

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapse = regexp.MustCompile(`[\s_-]+`)
)

// Slug превращает текст в URL-дружественный слаг
func Slug(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
