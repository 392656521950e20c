package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDTimestampMs(t *testing.T) {
	before := time.Now().UnixMilli()
	id := uuid.Must(uuid.NewV7())
	after := time.Now().UnixMilli()

	ts := UUIDTimestampMs(id)

	assert.GreaterOrEqual(t, ts, before)
	assert.LessOrEqual(t, ts, after)
}

func TestUUIDTimestampMs_IsMonotonicForOrderedUUIDs(t *testing.T) {
	first := uuid.Must(uuid.NewV7())
	time.Sleep(2 * time.Millisecond)
	second := uuid.Must(uuid.NewV7())

	require.LessOrEqual(t, UUIDTimestampMs(first), UUIDTimestampMs(second))
}

func TestAttributeLongValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int64
		ok    bool
	}{
		{name: "int64", value: int64(42), want: 42, ok: true},
		{name: "int", value: 42, want: 42, ok: true},
		{name: "float64", value: float64(42), want: 42, ok: true},
		{name: "string", value: "42", ok: false},
		{name: "bool", value: true, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Attribute{Value: tt.value}.LongValue()
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
