package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStampedDataset(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 30, 15, 123456000, time.Local)
	ds := NewStampedDataset(created, "SGMS v1.0", "id-1")

	assert.Zero(t, ds.Students.Len())
	assert.Zero(t, ds.Subjects.Len())
	assert.Zero(t, ds.Grades.Len())
	assert.Equal(t, []string{MetaCreated, MetaApp, MetaDatasetID}, ds.Metadata.Keys())

	v, _ := ds.Metadata.Get(MetaCreated)
	assert.Equal(t, "2026-03-01 09:30:15.123456", v)
}

func TestDataset_JSONRoundTripKeepsOrder(t *testing.T) {
	ds := NewDataset()
	ds.Students.Set("CS02", "Bob")
	ds.Students.Set("CS01", "Alice")
	ds.Students.Set("A_B", "Underscore Roll")
	ds.Subjects.Set("PHY", "Physics")
	ds.Subjects.Set("MATH", "Mathematics")
	ds.Grades.Set(GradeKey{"CS01", "PHY"}, 70)
	ds.Grades.Set(GradeKey{"CS02", "MATH"}, 39.5)
	ds.Grades.Set(GradeKey{"A_B", "MATH"}, 100)
	ds.Metadata.Set(MetaApp, "SGMS v1.0")

	data, err := json.Marshal(ds)
	require.NoError(t, err)

	var got Dataset
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, ds.Students.Keys(), got.Students.Keys())
	assert.Equal(t, ds.Subjects.Keys(), got.Subjects.Keys())
	assert.Equal(t, ds.Grades.Keys(), got.Grades.Keys())
	for k, v := range ds.Grades.All() {
		gv, ok := got.Grades.Get(k)
		require.True(t, ok, k.String())
		assert.Equal(t, v, gv)
	}
	app, _ := got.Metadata.Get(MetaApp)
	assert.Equal(t, "SGMS v1.0", app)
}

func TestDataset_MarshalSectionOrder(t *testing.T) {
	ds := NewDataset()
	ds.Students.Set("CS01", "Alice")
	ds.Grades.Set(GradeKey{"CS01", "MATH"}, 88)

	data, err := json.Marshal(ds)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"students":{"CS01":"Alice"},"subjects":{},"grades":{"CS01_MATH":88},"metadata":{}}`,
		string(data))
}

func TestDataset_MarshalKeepsHTMLCharacters(t *testing.T) {
	ds := NewDataset()
	ds.Students.Set("CS<1>", "Tom & Jerry")
	ds.Subjects.Set("RD", "R&D <Lab>")

	data, err := ds.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t,
		`{"students":{"CS<1>":"Tom & Jerry"},"subjects":{"RD":"R&D <Lab>"},"grades":{},"metadata":{}}`,
		string(data))

	var got Dataset
	require.NoError(t, json.Unmarshal(data, &got))
	name, _ := got.Subjects.Get("RD")
	assert.Equal(t, "R&D <Lab>", name)
}

func TestDataset_UnmarshalMetadata(t *testing.T) {
	var ds Dataset
	err := json.Unmarshal([]byte(`{
		"students": {}, "subjects": {}, "grades": {},
		"metadata": {"created": "2024-01-01 10:00:00.000000", "revision": 3}
	}`), &ds)
	require.NoError(t, err)

	rev, ok := ds.Metadata.Get("revision")
	require.True(t, ok)
	assert.Equal(t, "3", rev)
}

func TestDataset_UnmarshalWithoutMetadata(t *testing.T) {
	var ds Dataset
	require.NoError(t, json.Unmarshal([]byte(`{"students":{"X":"Y"},"subjects":{},"grades":{},"metadata":null}`), &ds))
	assert.Equal(t, 1, ds.Students.Len())
	assert.Zero(t, ds.Metadata.Len())
}

func TestDataset_UnmarshalRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: `{{{`},
		{name: "array", data: `[]`},
		{name: "missing grades", data: `{"students":{},"subjects":{}}`},
		{name: "students not object", data: `{"students":[],"subjects":{},"grades":{}}`},
		{name: "student name not string", data: `{"students":{"A":1},"subjects":{},"grades":{}}`},
		{name: "null subject name", data: `{"students":{},"subjects":{"M":null},"grades":{}}`},
		{name: "grade key without separator", data: `{"students":{},"subjects":{},"grades":{"AMATH":50}}`},
		{name: "marks not number", data: `{"students":{},"subjects":{},"grades":{"A_M":"50"}}`},
		{name: "marks null", data: `{"students":{},"subjects":{},"grades":{"A_M":null}}`},
		{name: "marks out of range", data: `{"students":{},"subjects":{},"grades":{"A_M":101}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ds Dataset
			assert.Error(t, json.Unmarshal([]byte(tt.data), &ds))
		})
	}
}
