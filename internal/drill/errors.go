package drill

import "errors"

// Sentinel errors for session selection.
// Use errors.Is to check: errors.Is(err, drill.ErrEmptyDeck)
var (
	ErrEmptyDeck              = errors.New("drill: deck has no cards")
	ErrInsufficientVocabulary = errors.New("drill: not enough words for a paragraph session")
)
