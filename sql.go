package decimal

import (
	"database/sql/driver"
	"fmt"
)

// Value implements [driver.Valuer], storing d as its canonical string.
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements [sql.Scanner]. TEXT and BLOB columns go through Parse,
// INTEGER columns convert exactly, and REAL columns are reformatted from
// float64 first. Any other source type fails with ErrInvalidValue.
func (d *Decimal) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return d.setFromString(v)
	case []byte:
		return d.setFromString(string(v))
	case int64:
		d.val = FromInt64(v).val
		return nil
	case float64:
		return d.setFromFloat(v)
	default:
		return fmt.Errorf("%w: expected a Decimal value, got %T", ErrInvalidValue, src)
	}
}
