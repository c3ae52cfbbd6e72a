package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFull(t *testing.T) {
	assert.True(t, strings.HasPrefix(Full(), "brigade/"))
	assert.NotEmpty(t, Commit())
}

func TestShortRev(t *testing.T) {
	assert.Equal(t, "abcd1234", shortRev("abcd1234ffff0000"))
	assert.Equal(t, "dev", shortRev("dev"))
}
