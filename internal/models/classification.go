package models

// Tier identifies which classification tier produced a result.
type Tier string

const (
	TierLocal          Tier = "LOCAL"
	TierRemoteFallback Tier = "REMOTE_FALLBACK"
	TierDefault        Tier = "DEFAULT"
)

// String implements fmt.Stringer.
func (t Tier) String() string {
	return string(t)
}

// ClassificationResult is the outcome of classifying one description.
type ClassificationResult struct {
	SubcategoryName string
	// Score is the local score; zero for the remote and default tiers.
	Score int
	Tier  Tier
	// SubcategoryID is set only when the remote store returned the match.
	SubcategoryID string
}

// DefaultClassification is the result of the DEFAULT tier.
func DefaultClassification() ClassificationResult {
	return ClassificationResult{
		SubcategoryName: SubcategoryUncategorized,
		Tier:            TierDefault,
	}
}
