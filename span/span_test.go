package span_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/ixml/span"
)

func TestNewAndAccessors(t *testing.T) {
	s := span.New(3, 7)
	assert.Equal(t, 3, s.From())
	assert.Equal(t, 7, s.To())
	assert.Equal(t, 4, s.Len())
	assert.False(t, s.IsNull())
}

func TestIsNullForZeroValue(t *testing.T) {
	var s span.Span
	assert.True(t, s.IsNull())
}

func TestExtendGrowsToCoverBoth(t *testing.T) {
	a := span.New(2, 5)
	b := span.New(4, 9)
	assert.Equal(t, span.New(2, 9), a.Extend(b))

	c := span.New(0, 1)
	d := span.New(-3, 10)
	assert.Equal(t, span.New(-3, 10), c.Extend(d))
}

func TestString(t *testing.T) {
	assert.Equal(t, "(3…7)", span.New(3, 7).String())
}
