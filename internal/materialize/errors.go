package materialize

import "fmt"

// ScaffoldMissingError is returned when the package manager reported success
// but the project directory does not exist afterwards.
type ScaffoldMissingError struct {
	Dir string
}

func (e *ScaffoldMissingError) Error() string {
	return fmt.Sprintf("project directory %s was not created by the scaffold step", e.Dir)
}
