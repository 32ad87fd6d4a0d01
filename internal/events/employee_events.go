package events

import (
	"fmt"
	"strings"
)

// EmployeeEventsTopic carries the plain-text audit messages. The format is
// fixed for wire compatibility with existing consumers: "{EVENT_TYPE}: {ID}".
const (
	EmployeeEventsTopic = "employee_events"
	AuditConsumerGroup  = "empms-audit-log"
)

const (
	EventCreate = "CREATE"
	EventUpdate = "UPDATE"
	EventDelete = "DELETE"
	EventRead   = "READ"
)

// delimiter separates event type from entity id. An id or event type
// containing it cannot be represented; ParseMessage rejects such messages.
const delimiter = ": "

func FormatMessage(eventType string, id uint) string {
	return fmt.Sprintf("%s%s%d", eventType, delimiter, id)
}

// ParseMessage splits an audit message into event type and entity id.
// The message must contain the delimiter exactly once.
func ParseMessage(message string) (eventType, entityID string, err error) {
	if !strings.Contains(message, delimiter) {
		return "", "", fmt.Errorf("message does not contain the expected delimiter %q", delimiter)
	}

	parts := strings.Split(message, delimiter)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid message format: expected 2 parts, got %d", len(parts))
	}

	return parts[0], parts[1], nil
}
