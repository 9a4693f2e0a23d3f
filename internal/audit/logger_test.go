package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeMetadata(t *testing.T) {
	assert.Equal(t, "", encodeMetadata(nil))
	assert.JSONEq(t, `{"dentist_id":"d1"}`, encodeMetadata(map[string]any{"dentist_id": "d1"}))

	out := encodeMetadata(map[string]any{"bad": make(chan int)})
	assert.Contains(t, out, `"metadata_error"`)
	assert.Contains(t, out, "chan int")
}
