package types

import "time"

// Key identifies a point-in-time market data lookup for one instrument on one
// venue. It is a comparable value type so it can be used directly as a map key;
// all three fields participate in equality.
type Key struct {
	Site       string
	Instrument string
	Timestamp  time.Time
}

// NewKey creates a Key for the given site, instrument and timestamp.
func NewKey(site string, instrument string, timestamp time.Time) Key {
	return Key{
		Site:       site,
		Instrument: instrument,
		Timestamp:  timestamp,
	}
}
