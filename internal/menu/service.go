package menu

import (
	"context"
	"time"
)

// Service builds menu views for the HTTP host. Each request gets its own
// session; the open set and query travel as request parameters.
type Service struct {
	provider SnapshotProvider
	now      func() time.Time
}

func NewService(provider SnapshotProvider, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{provider: provider, now: now}
}

// BuildView loads a snapshot and derives the render model. openIDs == nil
// keeps the default seeding (first category open); otherwise the client's
// open set is restored.
func (s *Service) BuildView(
	ctx context.Context,
	restaurantID, query string,
	openIDs []string,
) (View, error) {

	session := NewSession(s.provider, s.now)

	err := session.Load(ctx, restaurantID)
	if err != nil {
		return session.View(), err
	}

	session.SetQuery(query)
	if openIDs != nil {
		session.RestoreOpen(openIDs)
	}

	return session.View(), nil
}
