package list_slots

import (
	"strconv"
	"strings"

	"github.com/vetacasa/VetACasa-BookingService/internal/domain"
	"github.com/vetacasa/VetACasa-BookingService/pkg/types"
)

// ToSlotFilter builds the storage filter from the raw query parameters.
// Dates keep their lexical form; bounds are inclusive.
func ToSlotFilter(comunaIDsStr, startDateStr, endDateStr, veterinarioID, disponibleStr string) (domain.SlotFilter, error) {
	var filter domain.SlotFilter

	if comunaIDsStr != "" {
		parts := strings.Split(comunaIDsStr, ",")
		ids := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				ids = append(ids, p)
			}
		}
		filter.ComunaIDs = ids
	}

	if startDateStr != "" {
		startDate, err := types.NewDateStringFromString(startDateStr)
		if err != nil {
			return filter, err
		}
		filter.StartDate = &startDate
	}

	if endDateStr != "" {
		endDate, err := types.NewDateStringFromString(endDateStr)
		if err != nil {
			return filter, err
		}
		filter.EndDate = &endDate
	}

	if veterinarioID != "" {
		filter.VeterinarioID = &veterinarioID
	}

	if disponibleStr != "" {
		disponible, err := strconv.ParseBool(disponibleStr)
		if err != nil {
			return filter, err
		}
		filter.Disponible = &disponible
	}

	return filter, nil
}
