package repository

import (
	"CivicPulseAPI/ent"
	"CivicPulseAPI/ent/user"
	"context"

	"github.com/google/uuid"
)

type UserRepository struct {
	client *ent.Client
}

func NewUserRepository(client *ent.Client) *UserRepository {
	return &UserRepository{
		client: client,
	}
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.User, error) {
	return r.client.User.Query().
		Where(user.ID(id), user.IsActive(true)).
		Only(ctx)
}

// AddTrustScore applies a score delta as an atomic increment so concurrent
// votes by the same user never clobber each other.
func (r *UserRepository) AddTrustScore(ctx context.Context, id uuid.UUID, delta int) error {
	if delta == 0 {
		return nil
	}
	return r.client.User.UpdateOneID(id).AddTrustScore(delta).Exec(ctx)
}
