package models

// LeadStatusNew is the status every lead starts in; the field is free text
// reserved for future pipeline states.
const LeadStatusNew = "new"

// Lead is a single contact-form submission. Leads are immutable after
// creation: no update or delete operation exists.
type Lead struct {
	ID        string  `json:"id" dynamodbav:"id"`
	Name      string  `json:"name" dynamodbav:"name"`
	Email     string  `json:"email" dynamodbav:"email"`
	Message   string  `json:"message" dynamodbav:"message"`
	Source    *string `json:"source" dynamodbav:"source"`
	Status    string  `json:"status" dynamodbav:"status"`
	CreatedAt string  `json:"createdAt" dynamodbav:"createdAt"`
}

// SourceOrUnknown returns the origin tag used in notification payloads.
func (l *Lead) SourceOrUnknown() string {
	if l.Source == nil || *l.Source == "" {
		return "unknown"
	}
	return *l.Source
}
