package group

import (
	"context"

	"github.com/circleapp/circles/internal/database"
)

// Visible reports whether actorID may read a private group's profile,
// member list, or content. Public groups are visible to everyone, including
// unauthenticated callers (actorID zero). Private groups are visible to
// members only.
//
// External features serving group-scoped content call this before returning
// data.
func (s *Service) Visible(ctx context.Context, q database.Querier, actorID int64, g *Group) (bool, error) {
	if !g.IsPrivate {
		return true, nil
	}
	if actorID == 0 {
		return false, nil
	}
	m, err := s.members.Get(ctx, q, actorID, g.ID)
	if err != nil {
		return false, err
	}
	return m != nil, nil
}
