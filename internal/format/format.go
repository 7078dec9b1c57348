// Package format renders profession reports as text.
package format

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/gbasileGP/profgetter/internal/model"
	"github.com/gbasileGP/profgetter/internal/resolver"
)

// TitleCase upper-cases the first letter of every whitespace separated word
// and leaves everything else as is.
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	atWordStart := true
	for _, r := range s {
		if unicode.IsSpace(r) {
			atWordStart = true
			b.WriteRune(r)
			continue
		}
		if atWordStart {
			r = unicode.ToUpper(r)
			atWordStart = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// XP formats an experience percentage without exponent or trailing zeros.
func XP(xp float64) string {
	return strconv.FormatFloat(xp, 'f', -1, 64)
}

// ProfessionLine renders a single "Name: Level L, XP X%" line without newline.
func ProfessionLine(name string, stats model.ProfessionStats) string {
	var b strings.Builder
	b.WriteString(TitleCase(name))
	b.WriteString(": Level ")
	b.WriteString(strconv.Itoa(stats.Level))
	b.WriteString(", XP ")
	b.WriteString(XP(stats.XP))
	b.WriteString("%")
	return b.String()
}

// Professions renders the profession block of one character, in the order the
// professions appeared in the response.
func Professions(player, characterID string, ch model.CharacterRecord, style Style) string {
	var b strings.Builder
	b.WriteString(style.Colorize("Profession levels for "+player+"'s character "+characterID+":", Gold))
	b.WriteByte('\n')
	for _, e := range ch.Professions.Entries() {
		b.WriteString(ProfessionLine(e.Key, e.Value))
		b.WriteByte('\n')
	}
	return b.String()
}

// CharacterList renders the numbered selection list of a player.
func CharacterList(player string, choices []resolver.Choice, style Style) string {
	var b strings.Builder
	b.WriteString(style.Colorize("Characters for player "+player+":", Gold))
	b.WriteByte('\n')
	for i, c := range choices {
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". ")
		b.WriteString(c.Label)
		b.WriteString(" - ")
		b.WriteString(c.ID)
		b.WriteByte('\n')
	}
	return b.String()
}

// NotFound renders the message for a character id missing from a player.
func NotFound(err *model.NotFoundError, style Style) string {
	return style.Colorize(err.Error(), Red)
}

// Failure renders a single error line.
func Failure(player string, err error, style Style) string {
	msg := "Error fetching data for player " + player + ": " + err.Error()
	return style.Colorize(firstLine(msg), Red)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
