package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"sync"
)

type memoryDocument struct {
	seq  int64
	body map[string]any
}

// MemoryDocumentStore keeps documents in process. It backs the memory://
// store URL used for local runs and tests.
type MemoryDocumentStore struct {
	mu          sync.RWMutex
	seq         int64
	collections map[string][]memoryDocument
}

// NewMemoryDocumentStore returns an empty store.
func NewMemoryDocumentStore() *MemoryDocumentStore {
	return &MemoryDocumentStore{collections: make(map[string][]memoryDocument)}
}

var _ DocumentStore = (*MemoryDocumentStore)(nil)

// Insert stores a JSON copy of doc so later caller mutations are not visible.
func (s *MemoryDocumentStore) Insert(_ context.Context, collection string, doc any) (string, error) {
	body, err := toMap(doc)
	if err != nil {
		return "", fmt.Errorf("marshal %s document: %w", collection, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	key := strconv.FormatInt(s.seq, 10)
	body["_id"] = key
	s.collections[collection] = append(s.collections[collection], memoryDocument{seq: s.seq, body: body})
	return key, nil
}

// FindSorted returns documents ordered by sort.Field, ties in insertion order.
func (s *MemoryDocumentStore) FindSorted(ctx context.Context, collection string, sort Sort, limit int64, out any) error {
	return s.FindProjected(ctx, collection, nil, nil, sort, limit, out)
}

// FindProjected returns the named fields of documents matching filter. A nil
// field list returns whole documents.
func (s *MemoryDocumentStore) FindProjected(_ context.Context, collection string, filter Filter, fields []string, order Sort, limit int64, out any) error {
	s.mu.RLock()
	matched := make([]memoryDocument, 0, len(s.collections[collection]))
	for _, doc := range s.collections[collection] {
		if matches(doc.body, filter) {
			matched = append(matched, doc)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		c := compareValues(matched[i].body[order.Field], matched[j].body[order.Field])
		if c == 0 {
			return matched[i].seq < matched[j].seq
		}
		if order.Direction == Descending {
			return c > 0
		}
		return c < 0
	})
	if limit > 0 && int64(len(matched)) > limit {
		matched = matched[:limit]
	}

	docs := make([]map[string]any, 0, len(matched))
	for _, doc := range matched {
		docs = append(docs, project(doc.body, fields))
	}

	raw, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("encode %s batch: %w", collection, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s batch: %w", collection, err)
	}
	return nil
}

// DeleteByKey removes the oldest document whose key field equals value.
func (s *MemoryDocumentStore) DeleteByKey(_ context.Context, collection, key string, value any) (int64, error) {
	want, err := normalize(value)
	if err != nil {
		return 0, fmt.Errorf("marshal %s key: %w", collection, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.collections[collection]
	for i, doc := range docs {
		if reflect.DeepEqual(doc.body[key], want) {
			s.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *MemoryDocumentStore) Ping(context.Context) error { return nil }

func (s *MemoryDocumentStore) Close(context.Context) error { return nil }

func toMap(doc any) (map[string]any, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	body := map[string]any{}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	return body, nil
}

// normalize converts v to the representation encoding/json decodes it to,
// so it compares equal with stored values.
func normalize(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func matches(body map[string]any, filter Filter) bool {
	for k, v := range filter {
		want, err := normalize(v)
		if err != nil || !reflect.DeepEqual(body[k], want) {
			return false
		}
	}
	return true
}

func project(body map[string]any, fields []string) map[string]any {
	if fields == nil {
		return body
	}
	out := map[string]any{"_id": body["_id"]}
	for _, f := range fields {
		if v, ok := body[f]; ok {
			out[f] = v
		}
	}
	return out
}

// compareValues orders strings lexically and numbers numerically. Missing
// values sort first.
func compareValues(a, b any) int {
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		}
	case float64:
		if bv, ok := b.(float64); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		}
	case nil:
		if b == nil {
			return 0
		}
		return -1
	}
	if b == nil {
		return 1
	}
	return 0
}
