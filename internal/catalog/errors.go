package catalog

import (
	"fmt"

	"brickset/internal/domain"
)

// EmptyNameError identifies the set that broke a name-prefix scan
type EmptyNameError struct {
	ID string
}

func (e *EmptyNameError) Error() string {
	return fmt.Sprintf("set %s: %v", e.ID, domain.ErrEmptyName)
}

func (e *EmptyNameError) Unwrap() error {
	return domain.ErrEmptyName
}
