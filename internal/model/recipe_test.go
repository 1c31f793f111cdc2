package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeStringList(t *testing.T) {
	assert.Equal(t, "[]", EncodeStringList(nil))
	assert.Equal(t, "[]", EncodeStringList([]string{}))
	assert.Equal(t, `["s1","s2"]`, EncodeStringList([]string{"s1", "s2"}))
}

func TestDecodeStringList(t *testing.T) {
	assert.Equal(t, []string{}, DecodeStringList(""))
	assert.Equal(t, []string{}, DecodeStringList("[]"))
	assert.Equal(t, []string{}, DecodeStringList("not json"))
	assert.Equal(t, []string{"a", "b"}, DecodeStringList(`["a","b"]`))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tags := []string{"vegetarian", "gluten-free"}
	assert.Equal(t, tags, DecodeStringList(EncodeStringList(tags)))
}

func TestTimestamp(t *testing.T) {
	ts, err := time.Parse(time.RFC3339, Timestamp())
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, 5*time.Second)
}
