package usecase

import "context"

// ShelfDrift reports a shelf whose stored item count disagrees with its devices.
type ShelfDrift struct {
	ShelfID   string
	ShelfName string
	Stored    int
	Actual    int
	Repaired  bool
}

// AuditUsecase checks shelf counters against the devices that reference each shelf.
type AuditUsecase interface {
	// VerifyShelves recounts each shelf and returns the ones that drifted.
	// Unknown shelf ids are skipped.
	VerifyShelves(ctx context.Context, shelfIDs []string) ([]ShelfDrift, error)
}
