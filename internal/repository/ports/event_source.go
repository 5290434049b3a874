package ports

import (
	"context"

	"github.com/holidaydesk/backoffice/internal/domain"
)

// EventSource fetches the billable line items of a persisted package from
// the external events collaborator. Callers treat a failure as "total
// unknown" for that one package and degrade to zero.
type EventSource interface {
	EventsForPackage(ctx context.Context, packageID int64) ([]domain.PackageEvent, error)
}
