package models

// Skill swap offer statuses
const (
	OfferStatusOpen    = "open"
	OfferStatusPending = "pending"
	OfferStatusMatched = "matched"
)

// Swap request statuses
const (
	SwapStatusPending   = "pending"
	SwapStatusAccepted  = "accepted"
	SwapStatusCompleted = "completed"
	SwapStatusCancelled = "cancelled"
)

// DSA progress statuses
const (
	DSAStatusSolved     = "solved"
	DSAStatusBookmarked = "bookmarked"
)

// Recent activity types
const (
	ActivityTypeQuiz  = "quiz"
	ActivityTypeBadge = "badge"
	ActivityTypeSwap  = "swap"
)
