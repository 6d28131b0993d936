package moderation

import (
	"dynamic-voice/contract"
	"log/slog"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

var _ contract.NameFilter = (*Moderator)(nil)

// Moderator masks forbidden words in channel names, matching through leet speak and separators.
type Moderator struct {
	matcher  *goahocorasick.Machine
	maskRune rune
	log      *slog.Logger
}

// folded is a name reduced to its matchable runes.
// positions[i] is the rune index in the raw name that produced runes[i].
type folded struct {
	runes     []rune
	positions []int
}

// NewModerator builds the automaton from words folded the same way names are.
// Words made only of separators fold to nothing and are skipped.
func NewModerator(words []string, maskRune rune, log *slog.Logger) (*Moderator, error) {
	patterns := lo.FilterMap(words, func(word string, _ int) ([]rune, bool) {
		f := fold(word)
		return f.runes, len(f.runes) > 0
	})

	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, err
	}
	log.Debug("Moderation automaton built", "patterns", len(patterns))
	return &Moderator{matcher: machine, maskRune: maskRune, log: log}, nil
}

// Clean masks every forbidden word of a channel name.
func (m *Moderator) Clean(name string) string {
	cleaned, words := m.Censor(name)
	if len(words) > 0 {
		m.log.Info("Channel name censored", "words", len(words))
	}
	return cleaned
}

// Censor returns name with each match masked rune for rune, separators inside a match included,
// and the matched words in folded form.
func (m *Moderator) Censor(name string) (string, []string) {
	f := fold(name)
	if len(f.runes) == 0 {
		return name, nil
	}
	hits := m.matcher.MultiPatternSearch(f.runes, false)
	if len(hits) == 0 {
		return name, nil
	}

	raw := []rune(name)
	words := make([]string, 0, len(hits))
	for _, hit := range hits {
		last := hit.Pos + len(hit.Word) - 1
		if hit.Pos < 0 || last >= len(f.positions) {
			continue
		}
		for i := f.positions[hit.Pos]; i <= f.positions[last]; i++ {
			raw[i] = m.maskRune
		}
		words = append(words, string(hit.Word))
	}
	return string(raw), words
}

func fold(s string) folded {
	raw := []rune(s)
	f := folded{runes: make([]rune, 0, len(raw)), positions: make([]int, 0, len(raw))}
	for i, r := range raw {
		r = unleet(r)
		if isSeparator(r) {
			continue
		}
		f.runes = append(f.runes, unicode.ToLower(r))
		f.positions = append(f.positions, i)
	}
	return f
}

func unleet(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	}
	return r
}

func isSeparator(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
