package domain

// GenerationSource records whether a generated artifact came from the
// model or from the deterministic fallback generator. Fallback results
// must stay detectable after persistence.
type GenerationSource string

const (
	SourceModel    GenerationSource = "model"
	SourceFallback GenerationSource = "fallback"
)

// RatingLevel is the three-step scale used across generated artifacts
// (weakness severity, opportunity potential, threat risk, tactic priority)
type RatingLevel string

const (
	RatingLow    RatingLevel = "low"
	RatingMedium RatingLevel = "medium"
	RatingHigh   RatingLevel = "high"
)

// NormalizeRating maps unknown rating strings to medium, the default the
// model fallback path uses as well.
func NormalizeRating(s string) RatingLevel {
	switch RatingLevel(s) {
	case RatingLow, RatingMedium, RatingHigh:
		return RatingLevel(s)
	default:
		return RatingMedium
	}
}
