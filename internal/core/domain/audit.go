package domain

import "time"

const (
	AuditActionBlock      = "block"
	AuditActionUnblock    = "unblock"
	AuditActionRoleChange = "role_change"
)

// AuditEvent records a single authorization transition applied to a user.
type AuditEvent struct {
	UserID    string
	Action    string
	Detail    string // e.g. the new role for role_change
	Timestamp time.Time
}
