package domain

import (
	"encoding/json"
	"strings"
)

// Capabilities is a set of actions. The zero value is an empty set.
type Capabilities map[Action]struct{}

// NewCapabilities builds a set from the given actions, ignoring duplicates.
func NewCapabilities(actions ...Action) Capabilities {
	c := make(Capabilities, len(actions))
	for _, a := range actions {
		c[a] = struct{}{}
	}
	return c
}

// ParseCapabilities builds a set from action names. Unknown names are rejected.
func ParseCapabilities(names []string) (Capabilities, error) {
	c := make(Capabilities, len(names))
	for _, name := range names {
		a, err := ParseAction(name)
		if err != nil {
			return nil, err
		}
		c[a] = struct{}{}
	}
	return c, nil
}

// Has reports whether the set contains the action.
func (c Capabilities) Has(action Action) bool {
	_, ok := c[action]
	return ok
}

// Slice returns the members in canonical order (create, read, update, delete).
func (c Capabilities) Slice() []Action {
	out := make([]Action, 0, len(c))
	for _, a := range allActions {
		if c.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// Strings returns the member names in canonical order.
func (c Capabilities) Strings() []string {
	actions := c.Slice()
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = string(a)
	}
	return out
}

// Clone returns an independent copy of the set.
func (c Capabilities) Clone() Capabilities {
	out := make(Capabilities, len(c))
	for a := range c {
		out[a] = struct{}{}
	}
	return out
}

// String renders the set as a comma separated list.
func (c Capabilities) String() string {
	return strings.Join(c.Strings(), ",")
}

// MarshalJSON encodes the set as a JSON array in canonical order.
func (c Capabilities) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Strings())
}

// UnmarshalJSON decodes a JSON array of action names.
func (c *Capabilities) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	parsed, err := ParseCapabilities(names)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
