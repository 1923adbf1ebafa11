// Package filter ranks candidate collections against a single pattern.
package filter

import (
	"sort"

	"github.com/ferret-sh/ferret/pkg/fuzzy"
)

// Item is one candidate. Data travels through ranking untouched so
// callers can attach whatever they select on.
type Item struct {
	Text string
	Data any
}

// Match is a ranked candidate.
type Match struct {
	Item
	Score int
}

type Options struct {
	// MinScore drops matches scoring below it. Present matches with a
	// negative score are noise in ranked lists, so the default is 1.
	MinScore int

	// Weights are the scoring constants handed to the matcher.
	Weights fuzzy.Weights

	// Boost, when set, adds an external score per candidate after fuzzy
	// scoring, before the MinScore gate. Used for usage history.
	Boost func(text string) int
}

func DefaultOptions() Options {
	return Options{
		MinScore: 1,
		Weights:  fuzzy.DefaultWeights(),
	}
}

// Rank scores every item against pattern and returns the present matches
// at or above MinScore, best first; ties order by text for deterministic
// output. An empty pattern returns all items unscored in input order,
// mirroring the matcher's empty-pattern semantics.
func Rank(pattern string, items []Item, opts Options) []Match {
	if pattern == "" {
		all := make([]Match, len(items))
		for i, item := range items {
			all[i] = Match{Item: item}
		}

		return all
	}

	matches := make([]Match, 0, len(items))

	for _, item := range items {
		present, score := opts.Weights.MatchString(item.Text, pattern)
		if !present {
			continue
		}

		if opts.Boost != nil {
			score += opts.Boost(item.Text)
		}

		if score < opts.MinScore {
			continue
		}

		matches = append(matches, Match{Item: item, Score: score})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}

		return matches[i].Text < matches[j].Text
	})

	return matches
}

// RankStrings is Rank over plain strings.
func RankStrings(pattern string, candidates []string, opts Options) []Match {
	items := make([]Item, len(candidates))
	for i, c := range candidates {
		items[i] = Item{Text: c}
	}

	return Rank(pattern, items, opts)
}
