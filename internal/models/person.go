package models

import "github.com/shopspring/decimal"

// Person is a row of payment.people.
type Person struct {
	UserID      int64               `db:"user_id"`
	ShortName   string              `db:"short_user_name"`
	UserName    string              `db:"user_name"`
	AccessType  int                 `db:"access_type"`
	IsSuperUser bool                `db:"is_super_user"`
	Limit       decimal.NullDecimal `db:"user_create_request_limit"`
	ResetLimit  bool                `db:"reset_create_request_limit"`
}
