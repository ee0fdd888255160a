package assembly

import "fmt"

// MissingInputError reports a required piece of taxpayer information that was
// absent or blank when assembling the return.
type MissingInputError struct {
	Field string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing required taxpayer information: %s", e.Field)
}
