package backend

import (
	"encoding/json"
	"fmt"

	"github.com/OscarMG4/space-booking-app/internal/core/domain"
	"github.com/OscarMG4/space-booking-app/internal/core/ports"
)

// decodePage normalizes the backend's two paginated shapes into a single
// items+meta pair. Some endpoints nest items under data with meta alongside,
// others return a bare item array with meta as an envelope sibling.
func decodePage[T any](env *envelope) ([]T, ports.PageMeta, error) {
	var meta ports.PageMeta
	if env.Meta != nil {
		meta = *env.Meta
	}
	if len(env.Data) == 0 {
		return nil, meta, nil
	}

	if env.Data[0] == '[' {
		var items []T
		if err := json.Unmarshal(env.Data, &items); err != nil {
			return nil, meta, fmt.Errorf("%w: decode page: %v", domain.ErrBackendUnavailable, err)
		}
		return items, meta, nil
	}

	var nested struct {
		Data []T             `json:"data"`
		Meta *ports.PageMeta `json:"meta"`
	}
	if err := json.Unmarshal(env.Data, &nested); err != nil {
		return nil, meta, fmt.Errorf("%w: decode page: %v", domain.ErrBackendUnavailable, err)
	}
	if nested.Meta != nil {
		meta = *nested.Meta
	}
	return nested.Data, meta, nil
}
