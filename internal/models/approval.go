package models

import "database/sql"

// Approval is one row of payment.get_approvals.
type Approval struct {
	PaymentID  int64        `db:"payment_id"`
	UserID     int64        `db:"user_id"`
	UserName   string       `db:"user_name"`
	IsActive   bool         `db:"is_active_approval"`
	IsApproved sql.NullBool `db:"is_approved"`
	DecidedAt  sql.NullTime `db:"decided_at"`
}
