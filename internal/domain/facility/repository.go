package facility

import "context"

// Repository describes facility persistence needs from use cases. List
// returns facilities in id order so auto-schedule candidate scans are
// reproducible.
type Repository interface {
	List(ctx context.Context) ([]Facility, error)
	GetByID(ctx context.Context, facilityID string) (Facility, bool, error)
}
