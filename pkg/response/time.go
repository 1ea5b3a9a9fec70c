package response

import (
	"encoding/json"
	"time"
)

// Timestamp marshals as an RFC 3339 string in UTC.
type Timestamp time.Time

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).UTC().Format(time.RFC3339))
}
