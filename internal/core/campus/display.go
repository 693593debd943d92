package campus

import (
	"strings"
	"time"

	"github.com/example/printadmin/internal/models"
)

// DisplayName renders "name • location".
func DisplayName(c models.Campus) string {
	return c.Name + " • " + c.Location
}

// Summary renders a one-line sentence about the campus.
func Summary(c models.Campus) string {
	return c.Name + " is located at " + c.Location
}

// timestampLayouts are the created_at shapes the backend emits; naive
// timestamps carry no zone.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// FormatDate renders a backend timestamp as "Jan 2, 2006".
// Unparseable input is returned unchanged.
func FormatDate(createdAt string) string {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, createdAt); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return createdAt
}

// Code builds a short code from the initials of up to three words.
func Code(name string) string {
	var initials []rune
	for _, word := range strings.Fields(name) {
		if len(initials) == 3 {
			break
		}
		initials = append(initials, []rune(word)[0])
	}
	return strings.ToUpper(string(initials))
}

// Icon picks an emoji from direction keywords in the location.
func Icon(c models.Campus) string {
	loc := strings.ToLower(c.Location)
	switch {
	case strings.Contains(loc, "downtown"):
		return "🏙️"
	case strings.Contains(loc, "north"):
		return "⬆️"
	case strings.Contains(loc, "south"):
		return "⬇️"
	case strings.Contains(loc, "east"):
		return "➡️"
	case strings.Contains(loc, "west"):
		return "⬅️"
	}
	return "🏫"
}
