package store

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryDatabase keeps collections in process memory, roundtripping every
// document through bson so stored shapes match what the mongo driver would
// return. It backs local runs without a configured Mongo URI and the tests.
type MemoryDatabase struct {
	mu   sync.Mutex
	cols map[string]*memoryCollection
}

func NewMemoryDatabase() *MemoryDatabase {
	return &MemoryDatabase{cols: make(map[string]*memoryCollection)}
}

func (d *MemoryDatabase) Collection(name string) Collection {
	d.mu.Lock()
	defer d.mu.Unlock()
	c, ok := d.cols[name]
	if !ok {
		c = &memoryCollection{}
		d.cols[name] = c
	}
	return c
}

type memoryCollection struct {
	mu   sync.RWMutex
	docs []bson.M
}

func (c *memoryCollection) InsertOne(ctx context.Context, v any) (primitive.ObjectID, error) {
	doc, err := toDocument(v)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id := primitive.NewObjectID()
	ts := timestamp()
	doc["_id"] = id
	doc["createdAt"] = ts
	doc["updatedAt"] = ts

	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs = append(c.docs, doc)
	return id, nil
}

func (c *memoryCollection) FindByID(ctx context.Context, id primitive.ObjectID, out any) error {
	return c.FindOne(ctx, Filter{"_id": id}, out)
}

func (c *memoryCollection) FindOne(ctx context.Context, filter Filter, out any) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, doc := range c.docs {
		if matches(doc, filter) {
			return decodeDocument(doc, out)
		}
	}
	return ErrNoDocuments
}

func (c *memoryCollection) Find(ctx context.Context, filter Filter, opts FindOptions, out any) (int64, error) {
	opts = opts.Clamp()

	c.mu.RLock()
	matched := c.match(filter)
	c.mu.RUnlock()

	if opts.SortBy != "" {
		field, desc := ParseSort(opts.SortBy)
		sort.SliceStable(matched, func(i, j int) bool {
			cmp := compareValues(matched[i][field], matched[j][field])
			if desc {
				return cmp > 0
			}
			return cmp < 0
		})
	}

	total := int64(len(matched))
	start := (opts.Page - 1) * opts.Limit
	if start > total {
		start = total
	}
	end := start + opts.Limit
	if end > total {
		end = total
	}
	if err := decodeList(matched[start:end], out); err != nil {
		return 0, err
	}
	return total, nil
}

func (c *memoryCollection) FindAll(ctx context.Context, filter Filter, out any) error {
	c.mu.RLock()
	matched := c.match(filter)
	c.mu.RUnlock()
	return decodeList(matched, out)
}

func (c *memoryCollection) UpdateByID(ctx context.Context, id primitive.ObjectID, set map[string]any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, doc := range c.docs {
		if sameValue(doc["_id"], id) {
			for k, v := range set {
				doc[k] = v
			}
			doc["updatedAt"] = timestamp()
			return nil
		}
	}
	return ErrNoDocuments
}

func (c *memoryCollection) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, doc := range c.docs {
		if sameValue(doc["_id"], id) {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return nil
		}
	}
	return ErrNoDocuments
}

// match returns copies of the documents matching filter in insertion
// order. Copying under the lock lets callers sort and decode after
// releasing it while UpdateByID mutates the live maps.
// Callers must hold at least the read lock.
func (c *memoryCollection) match(filter Filter) []bson.M {
	var matched []bson.M
	for _, doc := range c.docs {
		if matches(doc, filter) {
			cp := make(bson.M, len(doc))
			for k, v := range doc {
				cp[k] = v
			}
			matched = append(matched, cp)
		}
	}
	return matched
}

func matches(doc bson.M, filter Filter) bool {
	for field, want := range filter {
		got, ok := doc[field]
		if !ok || !sameValue(got, want) {
			return false
		}
	}
	return true
}

// sameValue compares a stored bson value with a filter value, tolerating
// the representation differences a bson roundtrip introduces.
func sameValue(a, b any) bool {
	return reflect.DeepEqual(normalize(a), normalize(b))
}

func normalize(v any) any {
	switch t := v.(type) {
	case primitive.ObjectID:
		return t.Hex()
	case primitive.DateTime:
		return t.Time().UTC()
	case time.Time:
		return t.UTC()
	case int:
		return int64(t)
	case int32:
		return int64(t)
	default:
		return v
	}
}

// compareValues orders two bson values for sorting. Mixed or unknown types
// fall back to their string forms.
func compareValues(a, b any) int {
	a, b = normalize(a), normalize(b)

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
	case int64:
		if bv, ok := b.(int64); ok {
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
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			switch {
			case av.Before(bv):
				return -1
			case av.After(bv):
				return 1
			}
			return 0
		}
	}

	as, bs := fmt.Sprint(a), fmt.Sprint(b)
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	}
	return 0
}

func decodeDocument(doc bson.M, out any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

// decodeList decodes documents into out, which must be a pointer to a slice.
func decodeList(docs []bson.M, out any) error {
	slice := reflect.ValueOf(out).Elem()
	slice.Set(reflect.MakeSlice(slice.Type(), 0, len(docs)))
	elemType := slice.Type().Elem()
	for _, doc := range docs {
		elem := reflect.New(elemType)
		if err := decodeDocument(doc, elem.Interface()); err != nil {
			return err
		}
		slice.Set(reflect.Append(slice, elem.Elem()))
	}
	return nil
}
