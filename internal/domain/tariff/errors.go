package tariff

import "fmt"

// OutOfRangeError reports a value no bracket of a table contains. With a
// validated tariff this cannot happen for positive values; it is checked
// anyway rather than assumed.
type OutOfRangeError struct {
	Table string
	Value float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("value %v outside every bracket of the %s table", e.Value, e.Table)
}
