package contract

import (
	"context"

	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/repository/specification"
)

type UserProfileRepository interface {
	Create(ctx context.Context, profile *entity.UserProfile) error
	// CreateIfAbsent inserts unless the user already has a profile; created is
	// false when a concurrent writer got there first.
	CreateIfAbsent(ctx context.Context, profile *entity.UserProfile) (created bool, err error)
	Update(ctx context.Context, profile *entity.UserProfile) error
	// FindOne preloads favourite topics.
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserProfile, error)
}
