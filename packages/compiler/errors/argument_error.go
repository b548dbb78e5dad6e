package errors

import "fmt"

// ArgumentError reports a nil or otherwise unusable required argument. It is a
// programmer error and is raised with panic rather than returned.
type ArgumentError struct {
	Name string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("value cannot be nil: %s", e.Name)
}

// PanicIfNil panics with an *ArgumentError naming the argument when isNil is true.
func PanicIfNil(isNil bool, name string) {
	if isNil {
		panic(&ArgumentError{Name: name})
	}
}
