package game

import "fmt"

// EntityNotFoundError reports a missing player, store, product, competitor
// or decision id.
type EntityNotFoundError struct {
	Kind string
	ID   string
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("%s %s: not found", e.Kind, e.ID)
}
