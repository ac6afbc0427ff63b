package models

// Endorsement is a rating and comment attached to a completed swap
type Endorsement struct {
	Comment    string `dynamodbav:"comment" json:"comment"`
	Rating     int    `dynamodbav:"rating" json:"rating"`
	EndorsedBy string `dynamodbav:"endorsedBy" json:"endorsedBy"`
	Date       string `dynamodbav:"date" json:"date"`
}

// Swap is a one-shot skill exchange between a requester and a responder
type Swap struct {
	ID          string       `dynamodbav:"id" json:"id"`
	RequesterID string       `dynamodbav:"requesterId" json:"requesterId"`
	ResponderID string       `dynamodbav:"responderId" json:"responderId"`
	Skill       string       `dynamodbav:"skill" json:"skill"`
	Status      string       `dynamodbav:"status" json:"status"`
	Hours       int          `dynamodbav:"hours" json:"hours"`
	Endorsement *Endorsement `dynamodbav:"endorsement,omitempty" json:"endorsement,omitempty"`
	CreatedAt   string       `dynamodbav:"createdAt" json:"createdAt"`

	// Populated from the Users table on read paths; never persisted.
	Requester *UserSummary `dynamodbav:"-" json:"requester,omitempty"`
	Responder *UserSummary `dynamodbav:"-" json:"responder,omitempty"`
}

// SwapsTable is the DynamoDB table name for swap requests
const SwapsTable = "Swaps"

// GSIs keyed on the two participant ids
const (
	SwapRequesterIndex = "requesterId-index"
	SwapResponderIndex = "responderId-index"
)
