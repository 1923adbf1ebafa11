// Package fuzzy implements subsequence matching and scoring for
// search-as-you-type interfaces.
//
// A pattern matches a subject when the pattern's characters appear in the
// subject in order, not necessarily adjacent, compared case-insensitively.
// [Contains] answers only that question; [Match] additionally produces a
// score for ranking candidates against the same pattern.
//
// Scoring rewards adjacent matches, matches following a separator
// (underscore or space) and matches landing on a camelCase boundary, and
// penalizes every subject character left unmatched. When a subject letter
// repeats, the scan holds the best-scoring occurrence as a pending
// candidate instead of greedily committing the first one, so "l" against
// "hello_lang" lands on the occurrence opening the second word. The
// constants live in [Weights]; [DefaultWeights] must be used wherever
// score values are compared across processes, since only the default
// constants are guaranteed stable.
//
// Scores have no absolute scale. Only the ordering of scores produced with
// the same pattern and the same [Weights] is meaningful; no-match scans
// still return a (usually negative) score next to a false present flag.
//
// All functions are pure and reentrant: inputs are never mutated, no state
// is shared, and calls may run concurrently without coordination.
package fuzzy
