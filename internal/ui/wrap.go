package ui

import (
	"strings"

	"golang.org/x/image/font"
)

// Wrap разбивает текст на строки не шире maxWidth пикселей.
// Слово длиннее строки остаётся целым.
func Wrap(face font.Face, s string, maxWidth int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if font.MeasureString(face, candidate).Ceil() > maxWidth {
			lines = append(lines, line)
			line = w
			continue
		}
		line = candidate
	}
	return append(lines, line)
}
