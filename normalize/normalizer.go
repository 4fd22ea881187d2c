package normalize

import (
	"time"

	"github.com/subwaylive/mta-ingest/static"
)

// Normalizer derives normalized records from decoded feed messages using the
// injected static reference tables. The clock is replaceable for tests.
type Normalizer struct {
	static *static.Data
	now    func() time.Time
}

// New creates a Normalizer over the given reference data.
func New(data *static.Data) *Normalizer {
	return &Normalizer{static: data, now: time.Now}
}

// NewWithClock creates a Normalizer with a fixed time oracle.
func NewWithClock(data *static.Data, now func() time.Time) *Normalizer {
	return &Normalizer{static: data, now: now}
}
