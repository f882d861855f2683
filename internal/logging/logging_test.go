package logging

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapter(t *testing.T) {
	logger := NewLogrusAdapter("debug", "json")
	require.NotNil(t, logger)

	adapter, ok := logger.(*LogrusAdapter)
	require.True(t, ok)
	assert.Equal(t, logrus.DebugLevel, adapter.logger.GetLevel())
}

func TestNewLogrusAdapterInvalidLevel(t *testing.T) {
	logger := NewLogrusAdapter("loud", "text")
	adapter, ok := logger.(*LogrusAdapter)
	require.True(t, ok)
	// Falls back to info rather than failing.
	assert.Equal(t, logrus.InfoLevel, adapter.logger.GetLevel())
}

func TestMockLoggerRecords(t *testing.T) {
	mock := &MockLogger{}
	mock.Info("extracted statement operations", Field{Key: FieldCount, Value: 7})
	mock.Warn("balance drift")

	assert.True(t, mock.HasMessage("extracted statement operations"))
	assert.True(t, mock.HasMessage("balance drift"))
	assert.False(t, mock.HasMessage("never logged"))
}

func TestMockLoggerWithError(t *testing.T) {
	mock := &MockLogger{}
	mock.WithError(errors.New("boom")).Error("extraction failed")
	assert.True(t, mock.HasMessage("extraction failed"))
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger())
}
