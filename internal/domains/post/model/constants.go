package model

// Publication status
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

const (
	// Related-post selection
	RelatedLimit         = 4 // total candidates returned
	RelatedCategoryLimit = 3 // cap for the category tier

	// Featured / trending sections
	FeaturedLimit = 6
	TrendingLimit = 6

	// Listing defaults
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)
