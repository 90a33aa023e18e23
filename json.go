package nodit

import (
	"cmp"
	"encoding/json"
	"fmt"
)

// The JSON form of a map is the ordered sequence of its entries:
//
//	[{"range": ..., "value": ...}, ...]
//
// A set is the ordered sequence of its ranges. Decoding rebuilds the
// container through InsertStrict, so input whose ranges overlap fails
// with ErrOverlap. Decode into a container created with one of the
// constructors; the zero value has no TryFromBounds conversion.

type jsonBound struct {
	Type  string          `json:"type"`
	Point json.RawMessage `json:"point,omitempty"`
}

const (
	jsonIncluded  = "included"
	jsonExcluded  = "excluded"
	jsonUnbounded = "unbounded"
)

// MarshalJSON encodes the bound as {"type": "included", "point": p},
// {"type": "excluded", "point": p} or {"type": "unbounded"}.
func (b Bound[I]) MarshalJSON() ([]byte, error) {
	if b.kind == unbounded {
		return json.Marshal(jsonBound{Type: jsonUnbounded})
	}
	point, err := json.Marshal(b.point)
	if err != nil {
		return nil, err
	}
	typ := jsonIncluded
	if b.kind == excluded {
		typ = jsonExcluded
	}
	return json.Marshal(jsonBound{Type: typ, Point: point})
}

// UnmarshalJSON decodes the form produced by MarshalJSON.
func (b *Bound[I]) UnmarshalJSON(data []byte) error {
	var raw jsonBound
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Type {
	case jsonIncluded, jsonExcluded:
		var point I
		if err := json.Unmarshal(raw.Point, &point); err != nil {
			return err
		}
		if raw.Type == jsonIncluded {
			*b = Included(point)
		} else {
			*b = Excluded(point)
		}
	case jsonUnbounded:
		*b = Unbounded[I]()
	default:
		return fmt.Errorf("nodit: unknown bound type %q", raw.Type)
	}
	return nil
}

type jsonRange[I cmp.Ordered] struct {
	Start Bound[I] `json:"start"`
	End   Bound[I] `json:"end"`
}

// MarshalJSON encodes the range as {"start": ..., "end": ...}.
func (r Range[I]) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonRange[I]{Start: r.start, End: r.end})
}

// UnmarshalJSON decodes the form produced by MarshalJSON.
func (r *Range[I]) UnmarshalJSON(data []byte) error {
	var raw jsonRange[I]
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.start = raw.Start
	r.end = raw.End
	return nil
}

type jsonEntry[K, V any] struct {
	Range K `json:"range"`
	Value V `json:"value"`
}

// MarshalJSON encodes the map as the ordered sequence of its entries.
func (m *Map[I, K, V]) MarshalJSON() ([]byte, error) {
	entries := make([]jsonEntry[K, V], 0, m.Len())
	m.inner.scan(func(e *entry[I, K, V]) bool {
		entries = append(entries, jsonEntry[K, V]{Range: e.key, Value: e.value})
		return true
	})
	return json.Marshal(entries)
}

// UnmarshalJSON decodes an entry sequence into the map through
// InsertStrict. Input containing overlapping ranges fails with
// ErrOverlap.
func (m *Map[I, K, V]) UnmarshalJSON(data []byte) error {
	var entries []jsonEntry[K, V]
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	for _, e := range entries {
		if !IsValid[I](e.Range) {
			return fmt.Errorf("nodit: invalid range %s in input", formatRange[I](e.Range))
		}
		if err := m.InsertStrict(e.Range, e.Value); err != nil {
			return err
		}
	}
	return nil
}

// MarshalJSON encodes the set as the ordered sequence of its ranges.
func (s *Set[I, K]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Ranges())
}

// UnmarshalJSON decodes a range sequence into the set through
// InsertStrict. Input containing overlapping ranges fails with
// ErrOverlap.
func (s *Set[I, K]) UnmarshalJSON(data []byte) error {
	var ranges []K
	if err := json.Unmarshal(data, &ranges); err != nil {
		return err
	}
	for _, rng := range ranges {
		if !IsValid[I](rng) {
			return fmt.Errorf("nodit: invalid range %s in input", formatRange[I](rng))
		}
		if err := s.InsertStrict(rng); err != nil {
			return err
		}
	}
	return nil
}
