package numberutils

import (
	"fmt"
	"strconv"
)

// ToInt64WithError converts the given string to an int64 and returns any error that occurred during conversion.
func ToInt64WithError(str string) (int64, error) {
	return strconv.ParseInt(str, 10, 64)
}

// ToPositiveInt64 converts the given string to an int64 greater than zero.
// Path identifiers use it so that "0", "-3" and "abc" are rejected alike.
func ToPositiveInt64(str string) (int64, error) {
	value, err := ToInt64WithError(str)
	if err != nil {
		return 0, err
	}
	if value <= 0 {
		return 0, fmt.Errorf("value %d must be greater than zero", value)
	}
	return value, nil
}
