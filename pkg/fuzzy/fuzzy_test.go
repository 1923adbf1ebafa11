package fuzzy

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContains(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		pattern string
		want    bool
	}{
		{"exact", "hello", "hello", true},
		{"subsequence", "hello world", "hlwld", true},
		{"case insensitive", "Hello World", "helloworld", true},
		{"case insensitive pattern upper", "hello", "HLO", true},
		{"out of order", "hello", "olh", false},
		{"pattern longer than subject", "hi", "hello", false},
		{"missing letter", "hello", "hex", false},
		{"empty pattern non-empty subject", "hello", "", true},
		{"empty pattern empty subject", "", "", false},
		{"non-empty pattern empty subject", "", "h", false},
		{"separators in subject", "hello_world test", "hwt", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Contains([]rune(tt.subject), []rune(tt.pattern))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			assert.Equal(t, tt.want, ContainsString(tt.subject, tt.pattern))
		})
	}
}

func TestContainsNilSequence(t *testing.T) {
	_, err := Contains(nil, []rune("a"))
	require.ErrorIs(t, err, ErrNilSequence)

	_, err = Contains([]rune("a"), nil)
	require.ErrorIs(t, err, ErrNilSequence)

	_, err = Contains(nil, nil)
	require.ErrorIs(t, err, ErrNilSequence)
}

func TestMatchNilSequence(t *testing.T) {
	_, _, err := Match(nil, []rune("a"))
	require.ErrorIs(t, err, ErrNilSequence)

	_, _, err = DefaultWeights().Match([]rune("a"), nil)
	require.ErrorIs(t, err, ErrNilSequence)
}

// Score values below are the reference values for the default constants.
// They are part of the compatibility contract, not implementation detail:
// frontends persist and compare them across processes.
func TestMatchScores(t *testing.T) {
	tests := []struct {
		subject     string
		pattern     string
		wantPresent bool
		wantScore   int
	}{
		{"hworld", "hw", true, 11},
		{"hiworld", "hw", true, 5},
		{"hello_world", "hw", true, 11},
		{"helloWorld", "hW", true, 12},
		{"tests", "sts", true, 8},
		{"solutions to systems", "sts", true, 5},
		{"FileSystemManager", "fsm", true, 22},
		{"FuzzyStringMatcher", "fsm", true, 15},
		{"FastSorterModule", "fsm", true, 17},
		{"FunctionalStringManipulator", "fsm", true, 6},
	}

	for _, tt := range tests {
		t.Run(tt.subject+"/"+tt.pattern, func(t *testing.T) {
			present, score, err := Match([]rune(tt.subject), []rune(tt.pattern))
			require.NoError(t, err)
			assert.Equal(t, tt.wantPresent, present)
			assert.Equal(t, tt.wantScore, score)

			present, score = MatchString(tt.subject, tt.pattern)
			assert.Equal(t, tt.wantPresent, present)
			assert.Equal(t, tt.wantScore, score)
		})
	}
}

func TestMatchAdjacencyBeatsGaps(t *testing.T) {
	_, adjacent := MatchString("hworld", "hw")
	_, gapped := MatchString("hiworld", "hw")
	assert.Greater(t, adjacent, gapped)
}

func TestMatchSeparatorBonus(t *testing.T) {
	_, score := MatchString("hello_world", "hw")
	assert.GreaterOrEqual(t, score, 10)
}

func TestMatchCamelBonus(t *testing.T) {
	_, score := MatchString("helloWorld", "hW")
	assert.GreaterOrEqual(t, score, 10)
}

func TestMatchEmptyPattern(t *testing.T) {
	present, score := MatchString("hello", "")
	assert.True(t, present)
	assert.Zero(t, score)

	present, score = MatchString("", "")
	assert.False(t, present)
	assert.Zero(t, score)
}

func TestMatchNotPresent(t *testing.T) {
	present, score := MatchString("hello", "xyz")
	assert.False(t, present)
	assert.Negative(t, score)
}

func TestMatchRanking(t *testing.T) {
	candidates := []string{
		"FuzzyStringMatcher",
		"FunctionalStringManipulator",
		"FileSystemManager",
		"FastSorterModule",
	}

	best := ""
	bestScore := 0

	for i, c := range candidates {
		present, score := MatchString(c, "fsm")
		require.True(t, present, c)

		if i == 0 || score > bestScore {
			best = c
			bestScore = score
		}
	}

	assert.Equal(t, "FileSystemManager", best)

	for _, c := range candidates {
		if c == best {
			continue
		}

		_, score := MatchString(c, "fsm")
		assert.Less(t, score, bestScore, c)
	}
}

// A repeated subject letter must land on the occurrence with the best
// local score, not the first one seen.
func TestMatchRepeatedLetterPicksBest(t *testing.T) {
	_, wordStart := MatchString("hello_lang", "l")
	_, plain := MatchString("hellolang", "l")
	assert.Greater(t, wordStart, plain)
}

func TestApplyBonuses(t *testing.T) {
	w := DefaultWeights()

	tests := []struct {
		name          string
		prevMatched   bool
		prevLower     bool
		prevSeparator bool
		cur           rune
		want          int
	}{
		{"no bonus", false, false, false, 'a', 0},
		{"adjacency", true, false, false, 'a', 5},
		{"separator", false, false, true, 'a', 10},
		{"camel", false, true, false, 'A', 10},
		{"camel needs uppercase", false, true, false, 'a', 0},
		{"camel needs alphabetic", false, true, false, '1', 0},
		{"all stacked", true, true, true, 'A', 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := w.ApplyBonuses(tt.prevMatched, tt.prevLower, tt.prevSeparator,
				tt.cur, unicode.ToLower(tt.cur), unicode.ToUpper(tt.cur), 0)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrefixPenalty(t *testing.T) {
	w := Weights{UnmatchedPrefixPenalty: -3, MaxPrefixPenalty: -9}

	assert.Equal(t, 0, w.PrefixPenalty(0, 0, 0))
	assert.Equal(t, -3, w.PrefixPenalty(0, 0, 1))
	assert.Equal(t, -9, w.PrefixPenalty(0, 0, 4), "capped by MaxPrefixPenalty")
	assert.Equal(t, 7, w.PrefixPenalty(7, 1, 4), "no-op past the first pattern character")

	// Defaults keep the hook a no-op.
	assert.Equal(t, 3, DefaultWeights().PrefixPenalty(3, 0, 100))
}

func TestCustomWeights(t *testing.T) {
	// All-zero weights still decide presence, just without scoring.
	present, score := Weights{}.MatchString("hello_world", "hw")
	assert.True(t, present)
	assert.Zero(t, score)

	// Doubling the separator bonus shifts the separator case only.
	w := DefaultWeights()
	w.SeparatorBonus *= 2

	_, score = w.MatchString("hello_world", "hw")
	assert.Equal(t, 31, score)
}

func TestMatchDoesNotMutateInputs(t *testing.T) {
	subject := []rune("Hello_World")
	pattern := []rune("HW")

	_, _, err := Match(subject, pattern)
	require.NoError(t, err)

	assert.Equal(t, "Hello_World", string(subject))
	assert.Equal(t, "HW", string(pattern))
}
