package events_test

import (
	"testing"

	"go-empms/internal/events"

	"github.com/stretchr/testify/assert"
)

func TestFormatMessage(t *testing.T) {
	assert.Equal(t, "CREATE: 42", events.FormatMessage(events.EventCreate, 42))
	assert.Equal(t, "READ: 1", events.FormatMessage(events.EventRead, 1))
}

func TestParseMessage(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		eventType, entityID, err := events.ParseMessage("CREATE: 42")
		assert.NoError(t, err)
		assert.Equal(t, "CREATE", eventType)
		assert.Equal(t, "42", entityID)
	})

	t.Run("missing delimiter", func(t *testing.T) {
		_, _, err := events.ParseMessage("garbage")
		assert.Error(t, err)
	})

	t.Run("too many parts", func(t *testing.T) {
		_, _, err := events.ParseMessage("A: B: C")
		assert.Error(t, err)
	})

	t.Run("empty message", func(t *testing.T) {
		_, _, err := events.ParseMessage("")
		assert.Error(t, err)
	})
}
