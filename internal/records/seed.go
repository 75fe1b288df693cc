// File path: internal/records/seed.go
package records

import (
	"time"

	"github.com/immensecng/cylinder-retest/internal/catalog"
)

// SeedRecords returns the demonstration entries the tracker shows on a fresh
// session.
func SeedRecords() []Record {
	return []Record{
		{
			ID:              "CYL-2023-001",
			Type:            catalog.Oxygen,
			Status:          catalog.StatusIdentified,
			DegassingStatus: catalog.DegassingNotRequired,
			Date:            day(2023, time.May, 15),
			Technician:      "John Doe",
			Notes:           "Medical grade cylinder",
		},
		{
			ID:              "CYL-2023-002",
			Type:            catalog.Acetylene,
			Status:          catalog.StatusDegassed,
			DegassingStatus: catalog.DegassingCompleted,
			Date:            day(2023, time.May, 16),
			Technician:      "Jane Smith",
			Notes:           "Required full degassing procedure",
		},
		{
			ID:              "CYL-2023-003",
			Type:            catalog.Nitrogen,
			Status:          catalog.StatusPendingDegassing,
			DegassingStatus: catalog.DegassingInProgress,
			Date:            day(2023, time.May, 17),
			Technician:      "Mike Johnson",
			Notes:           "Partial pressure remaining",
		},
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
