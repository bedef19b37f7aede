package domain

import "github.com/google/uuid"

// Principal is the authenticated identity attached to a request. Its capabilities are the
// snapshot carried by the presented token, or a fresh lookup for Basic credentials.
type Principal struct {
	SubjectID    uuid.UUID
	Capabilities Capabilities
}

// NewPrincipal creates a principal holding its own copy of the capabilities.
func NewPrincipal(subjectID uuid.UUID, capabilities Capabilities) *Principal {
	return &Principal{SubjectID: subjectID, Capabilities: capabilities.Clone()}
}

// Can reports whether the principal holds the action.
func (p *Principal) Can(action Action) bool {
	return p != nil && p.Capabilities.Has(action)
}
