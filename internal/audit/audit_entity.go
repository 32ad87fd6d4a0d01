package audit

// EntityName is the only entity this system audits.
const EntityName = "Employee"

// AuditLog records one consumed employee event. Timestamp is the moment
// the consumer processed the message, not the moment of the original
// operation. EntityID is kept as text and is never checked against the
// employees table: entries outlive the records they describe.
type AuditLog struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	EventType  string `gorm:"not null"`
	EntityName string `gorm:"not null"`
	EntityID   string `gorm:"not null"`
	Timestamp  string `gorm:"not null"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
