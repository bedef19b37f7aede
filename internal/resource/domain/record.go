// Package domain defines the records served by the generic resource endpoints and the
// schemas that describe each registered resource type.
package domain

import (
	"encoding/json"
	"maps"
	"time"

	"github.com/google/uuid"
)

// IDField is the wire name of the record identifier.
const IDField = "_id"

// Record is one stored document of a resource type.
type Record struct {
	// ID is assigned by the store on creation (UUIDv7).
	ID uuid.UUID
	// Type is the canonical resource type name, e.g. "categories".
	Type string
	// Fields holds the schema fields decoded from JSON.
	Fields map[string]any
	// CreatedAt is the UTC timestamp when the record was first stored.
	CreatedAt time.Time
	// UpdatedAt is the UTC timestamp of the last modification.
	UpdatedAt time.Time
}

// MarshalJSON encodes the record as a flat object: the fields plus "_id".
func (r *Record) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Fields)+1)
	maps.Copy(out, r.Fields)
	out[IDField] = r.ID.String()
	return json.Marshal(out)
}

// Clone returns a copy whose Fields map can be modified without touching r.
func (r *Record) Clone() *Record {
	clone := *r
	clone.Fields = maps.Clone(r.Fields)
	if clone.Fields == nil {
		clone.Fields = map[string]any{}
	}
	return &clone
}
