package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	authDomain "github.com/allisson/resourceapi/internal/auth/domain"
	eventDomain "github.com/allisson/resourceapi/internal/event/domain"
)

type roleUseCase struct {
	roleRepo  RoleRepository
	publisher EventPublisher
	logger    *slog.Logger
}

// Capabilities looks the role up on every call. There is no cache.
func (r *roleUseCase) Capabilities(ctx context.Context, role string) (authDomain.Capabilities, error) {
	found, err := r.roleRepo.Get(ctx, role)
	if err != nil {
		if errors.Is(err, authDomain.ErrRoleNotFound) {
			r.logger.Warn("role not found, granting no capabilities", slog.String("role", role))
			return authDomain.NewCapabilities(), nil
		}
		return nil, err
	}

	r.publisher.Publish(ctx, eventDomain.ChannelDatabase, eventDomain.TopicRead, map[string]string{
		"model": "roles",
		"role":  found.Name,
	})

	return found.Capabilities.Clone(), nil
}

func (r *roleUseCase) Create(ctx context.Context, role *authDomain.Role) error {
	now := time.Now().UTC()
	role.CreatedAt = now
	role.UpdatedAt = now

	if err := r.roleRepo.Create(ctx, role); err != nil {
		return err
	}

	r.publisher.Publish(ctx, eventDomain.ChannelDatabase, eventDomain.TopicCreate, map[string]string{
		"model": "roles",
		"role":  role.Name,
	})
	return nil
}

func (r *roleUseCase) List(ctx context.Context) ([]*authDomain.Role, error) {
	return r.roleRepo.List(ctx)
}

// NewRoleUseCase creates a new RoleUseCase.
func NewRoleUseCase(roleRepo RoleRepository, publisher EventPublisher, logger *slog.Logger) RoleUseCase {
	return &roleUseCase{
		roleRepo:  roleRepo,
		publisher: publisher,
		logger:    logger,
	}
}
