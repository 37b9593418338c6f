package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Metadata keys written when a dataset is first created.
const (
	MetaCreated   = "created"
	MetaApp       = "app"
	MetaDatasetID = "dataset_id"
)

// CreatedLayout is the layout of the "created" metadata field.
const CreatedLayout = "2006-01-02 15:04:05.000000"

// Dataset is the whole persisted state of one session.
type Dataset struct {
	Students *Table[string, string]    // roll -> name
	Subjects *Table[string, string]    // code -> name
	Grades   *Table[GradeKey, float64] // (roll, code) -> marks
	Metadata *Table[string, string]
}

// NewDataset returns a dataset with empty tables and no metadata.
func NewDataset() *Dataset {
	return &Dataset{
		Students: NewTable[string, string](),
		Subjects: NewTable[string, string](),
		Grades:   NewTable[GradeKey, float64](),
		Metadata: NewTable[string, string](),
	}
}

// NewStampedDataset returns an empty dataset whose metadata records when and
// by which application version it was created.
func NewStampedDataset(created time.Time, app, datasetID string) *Dataset {
	ds := NewDataset()
	ds.Metadata.Set(MetaCreated, created.Format(CreatedLayout))
	ds.Metadata.Set(MetaApp, app)
	if datasetID != "" {
		ds.Metadata.Set(MetaDatasetID, datasetID)
	}
	return ds
}

// MarshalJSON writes the four sections in a fixed order, each object keeping
// the table's insertion order.
func (d *Dataset) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"students":`)
	if err := encodeTable(&buf, d.Students, identity); err != nil {
		return nil, fmt.Errorf("students: %w", err)
	}
	buf.WriteString(`,"subjects":`)
	if err := encodeTable(&buf, d.Subjects, identity); err != nil {
		return nil, fmt.Errorf("subjects: %w", err)
	}
	buf.WriteString(`,"grades":`)
	if err := encodeTable(&buf, d.Grades, GradeKey.String); err != nil {
		return nil, fmt.Errorf("grades: %w", err)
	}
	buf.WriteString(`,"metadata":`)
	if err := encodeTable(&buf, d.Metadata, identity); err != nil {
		return nil, fmt.Errorf("metadata: %w", err)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a persisted dataset. The students, subjects and grades
// sections are required; metadata is optional. Object key order in the input
// becomes the storage order.
func (d *Dataset) UnmarshalJSON(data []byte) error {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(data, &sections); err != nil {
		return err
	}
	for _, name := range []string{"students", "subjects", "grades"} {
		if _, ok := sections[name]; !ok {
			return fmt.Errorf("missing %q section", name)
		}
	}

	out := NewDataset()
	if err := decodeStrings(sections["students"], out.Students); err != nil {
		return fmt.Errorf("students: %w", err)
	}
	if err := decodeStrings(sections["subjects"], out.Subjects); err != nil {
		return fmt.Errorf("subjects: %w", err)
	}
	err := decodeObject(sections["grades"], func(key string, value json.RawMessage) error {
		gk, ok := ParseGradeKey(key, out.Students.Has)
		if !ok {
			return fmt.Errorf("key %q has no %q separator", key, GradeKeySeparator)
		}
		var marks float64
		if isNull(value) {
			return fmt.Errorf("key %q: marks are null", key)
		}
		if err := json.Unmarshal(value, &marks); err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		if marks < 0 || marks > 100 {
			return fmt.Errorf("key %q: marks %v out of range", key, marks)
		}
		out.Grades.Set(gk, marks)
		return nil
	})
	if err != nil {
		return fmt.Errorf("grades: %w", err)
	}
	if raw, ok := sections["metadata"]; ok && !isNull(raw) {
		err := decodeObject(raw, func(key string, value json.RawMessage) error {
			var s string
			if json.Unmarshal(value, &s) == nil {
				out.Metadata.Set(key, s)
				return nil
			}
			out.Metadata.Set(key, string(bytes.TrimSpace(value)))
			return nil
		})
		if err != nil {
			return fmt.Errorf("metadata: %w", err)
		}
	}

	*d = *out
	return nil
}

func identity(s string) string { return s }

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func encodeTable[K comparable, V any](buf *bytes.Buffer, t *Table[K, V], keyText func(K) string) error {
	buf.WriteByte('{')
	if t != nil {
		first := true
		for k, v := range t.All() {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			kb, err := marshalPlain(keyText(k))
			if err != nil {
				return err
			}
			vb, err := marshalPlain(v)
			if err != nil {
				return fmt.Errorf("key %q: %w", keyText(k), err)
			}
			buf.Write(kb)
			buf.WriteByte(':')
			buf.Write(vb)
		}
	}
	buf.WriteByte('}')
	return nil
}

// marshalPlain is json.Marshal without HTML escaping, so names such as
// "R&D <Lab>" stay readable in the data file.
func marshalPlain(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func decodeStrings(raw json.RawMessage, dst *Table[string, string]) error {
	return decodeObject(raw, func(key string, value json.RawMessage) error {
		var s string
		if isNull(value) {
			return fmt.Errorf("key %q: value is null", key)
		}
		if err := json.Unmarshal(value, &s); err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		dst.Set(key, s)
		return nil
	})
}

// decodeObject walks a JSON object in document order.
func decodeObject(raw json.RawMessage, fn func(key string, value json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("expected a JSON object")
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return err
		}
		if err := fn(key, value); err != nil {
			return err
		}
	}
	_, err = dec.Token()
	return err
}
