package logger

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// Tests proper fields allocation.
func TestCorrectFields(t *testing.T) {
	r := withFields("f1", "f1", "f2", "f2")
	assert.Len(t, r, 2)

	r = withFields("f1", "f1", "f2", "f2", "f3")
	assert.Len(t, r, 2)

	r = withFields(appendError([]string{"f1", "v1"}, errors.New("boom"))...)
	assert.Equal(t, "boom", r["error"])

	assert.Len(t, appendError(nil, nil), 0)
}

// Tests that console output is stable.
func TestConsoleFormat(t *testing.T) {
	out := format("message", withFields("b", "2", "a", "1"))
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[0], "message"))
	assert.Equal(t, "a: 1", strings.TrimSpace(lines[1]))
	assert.Equal(t, "b: 2", strings.TrimSpace(lines[2]))
}
