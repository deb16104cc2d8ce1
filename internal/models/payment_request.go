package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRequest is one row of the composed listing statement.
// Nullable joined columns use sql.Null* and are flattened by the mapping layer.
type PaymentRequest struct {
	ID                 int64           `db:"id"`
	InitiatorID        int64           `db:"user_id"`
	InitiatorName      string          `db:"short_user_name"`
	MVZ                string          `db:"mvz_sap"`
	MVZName            string          `db:"mvz_name"`
	Office             string          `db:"service_name"`
	CategoryID         int64           `db:"category_id"`
	CategoryName       string          `db:"category_name"`
	Counterparty       sql.NullString  `db:"contragent"`
	CSP                sql.NullString  `db:"csp"`
	PlannedDate        time.Time       `db:"date_planed"`
	SumExcludingTax    decimal.Decimal `db:"sum_no_tax"`
	TaxRate            decimal.Decimal `db:"tax"`
	Description        sql.NullString  `db:"description"`
	StatusID           int             `db:"status_id"`
	StatusName         string          `db:"value_name"`
	CreatedAt          time.Time       `db:"date_created"`
	ActiveApproverID   sql.NullInt64   `db:"approver_id"`
	ActiveApproverName sql.NullString  `db:"approver_name"`
}
