package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator produces identifiers for goals, subjects and topics.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random v4 UUIDs. Two ids created in the same instant
// never collide, unlike timestamp-derived ids.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.New().String() }

// CounterIDs issues Prefix-1, Prefix-2, ... and is safe for concurrent use.
// Deterministic output makes it the generator of choice in tests.
type CounterIDs struct {
	Prefix string
	n      atomic.Int64
}

func (c *CounterIDs) NewID() string {
	return fmt.Sprintf("%s-%d", c.Prefix, c.n.Add(1))
}

// looseID decodes an id written as a JSON string or number. Numbers keep
// their literal text, so 1700000000001 becomes "1700000000001".
type looseID string

func (id *looseID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = looseID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %s", data)
	}
	*id = looseID(n.String())
	return nil
}
