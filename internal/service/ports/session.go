package ports

import (
	"context"

	"github.com/stpnv0/LazyReserve/internal/domain"
)

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Session, error)
	Update(ctx context.Context, s *domain.Session) error
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}
