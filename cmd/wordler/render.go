package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/JYunth/wordler/wordler"
)

var (
	tileExact   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("28")).Padding(0, 1)
	tilePresent = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("136")).Padding(0, 1)
	tileAbsent  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("240")).Padding(0, 1)
)

// renderRow draws one guess as a row of colored tiles.
func renderRow(guess wordler.Word, fb wordler.Pattern) string {
	tiles := make([]string, len(fb))
	for i, m := range fb {
		letter := strings.ToUpper(string(rune(guess[i])))
		switch m {
		case wordler.Exact:
			tiles[i] = tileExact.Render(letter)
		case wordler.Present:
			tiles[i] = tilePresent.Render(letter)
		default:
			tiles[i] = tileAbsent.Render(letter)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

func joinWords(words []wordler.Word) string {
	ss := make([]string, len(words))
	for i, w := range words {
		ss[i] = string(w)
	}
	return strings.Join(ss, ", ")
}
