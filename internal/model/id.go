package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// IDScheme names an id generation strategy.
type IDScheme string

const (
	// IDSchemeTimestamp issues decimal Unix-millisecond ids.
	IDSchemeTimestamp IDScheme = "timestamp"
	// IDSchemeUUID issues random version 4 UUIDs.
	IDSchemeUUID IDScheme = "uuid"
)

// ErrUnknownIDScheme is returned for an unrecognized id scheme name.
var ErrUnknownIDScheme = errors.New("unknown id scheme")

// IDGenerator issues task ids. The returned id is never held by existing.
type IDGenerator interface {
	NewID(existing TaskList) string
}

// NewIDGenerator returns the generator for a scheme name.
// An empty name selects the timestamp scheme.
func NewIDGenerator(scheme IDScheme) (IDGenerator, error) {
	switch IDScheme(strings.ToLower(string(scheme))) {
	case "", IDSchemeTimestamp:
		return NewTimestampIDs(time.Now), nil
	case IDSchemeUUID:
		return UUIDs{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (expected %q or %q)", ErrUnknownIDScheme, scheme, IDSchemeTimestamp, IDSchemeUUID)
	}
}

// TimestampIDs issues ids from the clock in milliseconds. Two ids created
// within the same millisecond, or a clock that steps backwards, still yield
// distinct values: each id is at least one greater than the previous one.
type TimestampIDs struct {
	now  func() time.Time
	last int64
}

// NewTimestampIDs returns a generator reading the given clock.
func NewTimestampIDs(now func() time.Time) *TimestampIDs {
	return &TimestampIDs{now: now}
}

// NewID returns the next id.
func (g *TimestampIDs) NewID(existing TaskList) string {
	n := g.now().UnixMilli()
	if n <= g.last {
		n = g.last + 1
	}
	for existing.Has(strconv.FormatInt(n, 10)) {
		n++
	}
	g.last = n
	return strconv.FormatInt(n, 10)
}

// UUIDs issues random UUID ids.
type UUIDs struct{}

// NewID returns a fresh UUID string.
func (UUIDs) NewID(existing TaskList) string {
	for {
		id := uuid.NewString()
		if !existing.Has(id) {
			return id
		}
	}
}
