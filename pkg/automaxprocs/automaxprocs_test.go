package automaxprocs

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitUndo(t *testing.T) {
	before := runtime.GOMAXPROCS(0)

	require.NoError(t, Init())
	assert.GreaterOrEqual(t, runtime.GOMAXPROCS(0), 1)

	assert.Equal(t, before, Undo())
	assert.Equal(t, before, Undo())
}
