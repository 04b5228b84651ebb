package notifications

// EventType identifies the three mutations that trigger a fan-out.
type EventType string

const (
	EventItemCreated   EventType = "item_created"
	EventClaimCreated  EventType = "claim_created"
	EventClaimApproved EventType = "claim_approved"
)

// Event is the snapshot a mutation hands to the fan-out worker. It carries
// everything needed to build payloads so the worker only has to resolve
// recipients, never re-read the mutated documents.
type Event struct {
	Type EventType

	ItemID       string
	ItemTitle    string
	ItemLocation string
	OwnerUid     string

	ClaimID    string
	ClaimerUid string
}
