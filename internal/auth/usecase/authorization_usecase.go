package usecase

import (
	"context"

	authDomain "github.com/allisson/resourceapi/internal/auth/domain"
	eventDomain "github.com/allisson/resourceapi/internal/event/domain"
)

type authorizationUseCase struct {
	publisher EventPublisher
}

// Authorize is pure set membership on the principal's snapshot.
func (a *authorizationUseCase) Authorize(
	ctx context.Context,
	principal *authDomain.Principal,
	action authDomain.Action,
) error {
	if principal.Can(action) {
		return nil
	}

	err := authDomain.NewForbiddenError(action)
	a.publisher.Publish(ctx, eventDomain.ChannelDatabase, eventDomain.TopicError, map[string]string{
		"error": err.Error(),
	})
	return err
}

// NewAuthorizationUseCase creates a new AuthorizationUseCase.
func NewAuthorizationUseCase(publisher EventPublisher) AuthorizationUseCase {
	return &authorizationUseCase{publisher: publisher}
}
