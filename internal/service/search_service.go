package service

import (
	"context"
	"time"

	"github.com/Rev0212/meeting/internal/models"
	"github.com/Rev0212/meeting/internal/repo"
)

// SearchService answers "which rooms are free for this window". Read-only;
// it never reserves anything, so it needs no lock — the admission path
// re-checks conflicts under the room lock anyway.
type SearchService interface {
	FindAvailable(ctx context.Context, minCapacity int, start, end time.Time) ([]models.Room, error)
}

type searchService struct{ rooms repo.RoomRepo }

func NewSearchService(r repo.RoomRepo) SearchService {
	return &searchService{rooms: r}
}

func (s *searchService) FindAvailable(ctx context.Context, minCapacity int, start, end time.Time) ([]models.Room, error) {
	if minCapacity < 1 { minCapacity = 1 }
	return s.rooms.FindAvailable(ctx, minCapacity, start, end)
}
