package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// timestampLayout is fixed width so that lexical order equals chronological order.
const timestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// Timestamp is a UTC instant encoded as an ISO-8601 string in JSON and as a
// native datetime in BSON.
type Timestamp struct {
	time.Time
}

// NewTimestamp converts t to UTC with millisecond precision, the resolution
// every supported store can round-trip.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Millisecond)}
}

// String renders the ISO-8601 form.
func (t Timestamp) String() string {
	return t.UTC().Format(timestampLayout)
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode timestamp: %w", err)
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("parse timestamp %q: %w", raw, err)
	}
	t.Time = parsed.UTC()
	return nil
}

// MarshalBSONValue implements bson.ValueMarshaler.
func (t Timestamp) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(t.UTC())
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (t *Timestamp) UnmarshalBSONValue(typ bsontype.Type, data []byte) error {
	if typ == bsontype.Null {
		return nil
	}
	ms, ok := bson.RawValue{Type: typ, Value: data}.DateTimeOK()
	if !ok {
		return fmt.Errorf("decode timestamp: expected datetime, got %s", typ)
	}
	t.Time = time.UnixMilli(ms).UTC()
	return nil
}
