package bgs

import (
	"fmt"
	"strconv"
)

// Params maps parameter names to textual values. It is the uniform
// configuration surface for every algorithm: booleans encode as the literal
// strings "true"/"false", integers and floats as standard decimal text.
type Params map[string]string

// ParseError reports a parameter value that could not be parsed as its
// expected type. The instance keeps its prior value for that key.
type ParseError struct {
	Key   string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parameter %q: invalid value %q: %v", e.Key, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseBool interprets a parameter value as a boolean. Only the literal
// "true" is true; any other value is false.
func ParseBool(value string) bool {
	return value == "true"
}

// ParseInt parses a parameter value as a decimal integer.
func ParseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &ParseError{Key: key, Value: value, Err: err}
	}
	return n, nil
}

// ParseFloat parses a parameter value as a decimal floating-point number.
func ParseFloat(key, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &ParseError{Key: key, Value: value, Err: err}
	}
	return f, nil
}

// FormatBool renders a boolean parameter value.
func FormatBool(b bool) string {
	return strconv.FormatBool(b)
}

// FormatInt renders an integer parameter value.
func FormatInt(n int) string {
	return strconv.Itoa(n)
}

// FormatFloat renders a floating-point parameter value in the shortest
// decimal form that round-trips.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
