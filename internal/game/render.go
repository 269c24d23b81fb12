package game

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// ScoreRow is one line of the scoreboard
type ScoreRow struct {
	Name  string
	Score int
}

// maskLetters returns the set of distinct alphabetic runes of the answer.
// Masking works on character identity, not position: every occurrence of a
// letter is hidden or revealed together. Spaces and punctuation never hide.
func maskLetters(answer string) map[rune]struct{} {
	mask := make(map[rune]struct{})
	for _, r := range answer {
		if unicode.IsLetter(r) {
			mask[r] = struct{}{}
		}
	}
	return mask
}

// renderPhrase draws the bordered phrase box with the category below it.
// Runes still in the mask are replaced by a filler block.
func renderPhrase(answer, category string, mask map[rune]struct{}) string {
	runes := []rune(answer)
	bars := make([]string, 0, len(runes))
	cells := make([]string, 0, len(runes))
	for _, r := range runes {
		bars = append(bars, "═")
		if _, hidden := mask[r]; hidden {
			cells = append(cells, "█")
		} else {
			cells = append(cells, string(r))
		}
	}

	var b strings.Builder
	b.WriteString("```\n")
	b.WriteString("╔" + strings.Join(bars, "╤") + "╗\n")
	b.WriteString("║" + strings.Join(cells, "│") + "║\n")
	b.WriteString("╚" + strings.Join(bars, "╧") + "╝\n")
	b.WriteString("\n" + category + "\n```")
	return b.String()
}

// sortScores orders rows by descending score, ties by name so the
// output is stable between renders.
func sortScores(rows []ScoreRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		return rows[i].Name < rows[j].Name
	})
}

// renderScores draws the score table as a diff code block
func renderScores(rows []ScoreRow) string {
	sortScores(rows)

	var b strings.Builder
	b.WriteString("```diff\n+ Results:\n\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "+ %s\t%d\n", row.Name, row.Score)
	}
	b.WriteString("```")
	return b.String()
}
