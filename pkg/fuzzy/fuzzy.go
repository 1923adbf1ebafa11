package fuzzy

import (
	"errors"
	"unicode"
)

// ErrNilSequence is returned when subject or pattern is a nil slice.
// A nil sequence is a caller bug, distinct from a well-formed no-match.
var ErrNilSequence = errors.New("fuzzy: nil sequence")

// Weights holds the scoring constants. The zero value disables every
// bonus and penalty; use DefaultWeights for the reference behavior.
type Weights struct {
	// AdjacencyBonus is added when the previous subject character was
	// itself matched.
	AdjacencyBonus int

	// SeparatorBonus is added when the previous subject character was an
	// underscore or a space. Start of subject counts as a separator.
	SeparatorBonus int

	// CamelBonus is added when a lowercase letter is followed by a
	// matched uppercase letter.
	CamelBonus int

	// UnmatchedPenalty is added once per subject character that is
	// neither matched nor held as the pending candidate.
	UnmatchedPenalty int

	// UnmatchedPrefixPenalty is applied per subject character skipped
	// before the first pattern character matches.
	UnmatchedPrefixPenalty int

	// MaxPrefixPenalty caps the total prefix penalty.
	MaxPrefixPenalty int
}

// DefaultWeights returns the reference constants. Scores produced with
// these are stable across releases and may be persisted or compared
// between processes.
func DefaultWeights() Weights {
	return Weights{
		AdjacencyBonus:         5,
		SeparatorBonus:         10,
		CamelBonus:             10,
		UnmatchedPenalty:       -1,
		UnmatchedPrefixPenalty: 0,
		MaxPrefixPenalty:       0,
	}
}

// Contains reports whether pattern is a case-insensitive subsequence of
// subject. An empty pattern matches any non-empty subject; an empty
// subject matches nothing, including the empty pattern. Runs in
// O(len(subject)) with no allocation.
func Contains(subject, pattern []rune) (bool, error) {
	if subject == nil || pattern == nil {
		return false, ErrNilSequence
	}

	return containsScan(subject, pattern), nil
}

// ContainsString is Contains for callers holding strings.
func ContainsString(subject, pattern string) bool {
	return containsScan([]rune(subject), []rune(pattern))
}

// Match reports whether pattern is fully present in subject and scores
// the match with DefaultWeights. The present flag is independent of the
// score's sign; a present match over a long subject can score negative.
func Match(subject, pattern []rune) (bool, int, error) {
	return DefaultWeights().Match(subject, pattern)
}

// MatchString is Match for callers holding strings.
func MatchString(subject, pattern string) (bool, int) {
	return DefaultWeights().scan([]rune(subject), []rune(pattern))
}

// Match scores pattern against subject using w.
func (w Weights) Match(subject, pattern []rune) (bool, int, error) {
	if subject == nil || pattern == nil {
		return false, 0, ErrNilSequence
	}

	present, score := w.scan(subject, pattern)

	return present, score, nil
}

// MatchString is Match for callers holding strings.
func (w Weights) MatchString(subject, pattern string) (bool, int) {
	return w.scan([]rune(subject), []rune(pattern))
}

// ApplyBonuses adds the positional bonuses a tentative match at the
// current character earns: adjacency when the previous character was
// matched, separator when it was '_' or ' ', camelCase when a lowercase
// letter is followed by this uppercase one. Exported so frontends can
// tune and test scoring in isolation.
func (w Weights) ApplyBonuses(prevMatched, prevLower, prevSeparator bool, cur, curLower, curUpper rune, score int) int {
	if prevMatched {
		score += w.AdjacencyBonus
	}

	if prevSeparator {
		score += w.SeparatorBonus
	}

	if prevLower && cur == curUpper && curLower != curUpper {
		score += w.CamelBonus
	}

	return score
}

// PrefixPenalty charges for subject characters skipped before the very
// first pattern character matches. It only applies while patternIdx is 0
// and is a no-op with the default constants.
func (w Weights) PrefixPenalty(score, patternIdx, strIdx int) int {
	if patternIdx != 0 {
		return score
	}

	return score + max(strIdx*w.UnmatchedPrefixPenalty, w.MaxPrefixPenalty)
}

func containsScan(subject, pattern []rune) bool {
	if len(pattern) == 0 {
		return len(subject) > 0
	}

	patternIdx := 0

	for _, r := range subject {
		if unicode.ToLower(r) == unicode.ToLower(pattern[patternIdx]) {
			patternIdx++

			if patternIdx == len(pattern) {
				return true
			}
		}
	}

	return false
}

// scan is the scoring core: one pass over subject, holding at most one
// pending candidate so runs of a repeated letter commit the occurrence
// with the best local score rather than the first one. The ordering of
// commit, displace and penalty below is load-bearing: changing it changes
// absolute score values.
func (w Weights) scan(subject, pattern []rune) (bool, int) {
	if len(pattern) == 0 {
		return len(subject) > 0, 0
	}

	var (
		score      int
		patternIdx int

		prevMatched   bool
		prevLower     bool
		prevSeparator = true // start of subject acts as a separator

		pending      bool
		pendingLower rune
		pendingScore int
	)

	for strIdx, strChar := range subject {
		strLower := unicode.ToLower(strChar)
		strUpper := unicode.ToUpper(strChar)

		havePattern := patternIdx < len(pattern)

		var patternLower rune
		if havePattern {
			patternLower = unicode.ToLower(pattern[patternIdx])
		}

		nextMatch := havePattern && patternLower == strLower
		rematch := pending && pendingLower == strLower

		// Commit the pending candidate once the scan moves past it:
		// a later pattern position matched, or the pattern repeats the
		// pending letter and needs the slot again.
		if pending && (nextMatch || (havePattern && patternLower == pendingLower)) {
			score += pendingScore
			pending = false
			pendingScore = 0
		}

		switch {
		case nextMatch || rematch:
			tentative := w.PrefixPenalty(0, patternIdx, strIdx)
			tentative = w.ApplyBonuses(prevMatched, prevLower, prevSeparator, strChar, strLower, strUpper, tentative)

			if tentative >= pendingScore {
				if pending {
					// The displaced occurrence counts as unmatched.
					score += w.UnmatchedPenalty
				}

				pending = true
				pendingLower = strLower
				pendingScore = tentative
			}

			if nextMatch {
				patternIdx++
			}

			prevMatched = true
		default:
			score += w.UnmatchedPenalty
			prevMatched = false
		}

		prevLower = strChar == strLower && strLower != strUpper
		prevSeparator = strChar == '_' || strChar == ' '
	}

	if pending {
		score += pendingScore
	}

	return patternIdx == len(pattern), score
}
