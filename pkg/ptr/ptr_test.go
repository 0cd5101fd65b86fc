package ptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPtrValue(t *testing.T) {
	p := Ptr(int64(981))
	assert.Equal(t, int64(981), *p)
	assert.Equal(t, int64(981), Value(p))

	var missing *string
	assert.Equal(t, "", Value(missing))
}
