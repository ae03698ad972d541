package invites

import (
	"context"

	"github.com/grupodoporao/mesa/internal/models"
)

// Directory finds players by their public tag
type Directory interface {
	FindByTag(ctx context.Context, tag string) (*models.PlayerProfile, error)
}

// Repository defines the interface for the master's invited players
type Repository interface {
	// ListInvites returns invited players in invitation order
	ListInvites(ctx context.Context) ([]models.InvitedPlayer, error)

	// InvitePlayer looks a tag up in the directory and adds a pending invite
	InvitePlayer(ctx context.Context, input *InvitePlayerInput) (*models.InvitedPlayer, error)

	// UpdateInvite changes status, limits, attributes or equipment of an invite
	UpdateInvite(ctx context.Context, input *UpdateInviteInput) (*models.InvitedPlayer, error)

	// RemoveInvite drops an invited player
	RemoveInvite(ctx context.Context, input *RemoveInviteInput) error
}
