package repository

import (
	"errors"
	"fmt"
	"property_quote/internal/domain/entities"
)

// unavailable tags a source failure as entities.ErrDataUnavailable while
// keeping the cause for logs.
func unavailable(what string, err error) error {
	if errors.Is(err, entities.ErrDataUnavailable) {
		return fmt.Errorf("load %s: %w", what, err)
	}
	return fmt.Errorf("load %s: %w: %w", what, entities.ErrDataUnavailable, err)
}
