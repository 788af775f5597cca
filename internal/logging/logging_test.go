package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	logger, sync, err := New(false)
	require.NoError(t, err)
	defer sync()
	assert.True(t, logger.V(0).Enabled())
	assert.False(t, logger.V(1).Enabled())

	debugLogger, debugSync, err := New(true)
	require.NoError(t, err)
	defer debugSync()
	assert.True(t, debugLogger.V(1).Enabled())
}
