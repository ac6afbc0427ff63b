package models

// SkillOffer is a posted skill-for-skill trade listing.
//
// While an offer is pending or matched, MatchedWith holds the id of the
// paired offer and the paired offer points back here with the same status.
// An open offer always has MatchedWith empty.
type SkillOffer struct {
	ID          string `dynamodbav:"id" json:"id"`
	UserID      string `dynamodbav:"userId" json:"userId"`
	Offer       string `dynamodbav:"offer" json:"offer"`
	Request     string `dynamodbav:"request" json:"request"`
	Status      string `dynamodbav:"status" json:"status"`
	MatchedWith string `dynamodbav:"matchedWith,omitempty" json:"matchedWith,omitempty"`
	CreatedAt   string `dynamodbav:"createdAt" json:"createdAt"`

	// User is populated from the Users table on read paths; never persisted.
	User *UserSummary `dynamodbav:"-" json:"user,omitempty"`
}

// SkillSwapsTable is the DynamoDB table name for skill swap offers
const SkillSwapsTable = "SkillSwaps"

// GSIs keyed on offer status and owning user
const (
	SkillSwapStatusIndex = "status-index"
	SkillSwapUserIndex   = "userId-index"
)
