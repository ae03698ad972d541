package invites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/grupodoporao/mesa/internal/common/clock"
	"github.com/grupodoporao/mesa/internal/common/sequence"
	"github.com/grupodoporao/mesa/internal/models"
	"github.com/grupodoporao/mesa/internal/repositories/storage"
)

var (
	// ErrPlayerNotFound is returned when no player has the tag
	ErrPlayerNotFound = errors.New("player not found")

	// ErrAlreadyInvited is returned when the tag was already invited
	ErrAlreadyInvited = errors.New("player already invited")

	// ErrInviteNotFound is returned when an invite id does not exist
	ErrInviteNotFound = errors.New("invite not found")

	// ErrInvalidStatus is returned for an unknown invite status
	ErrInvalidStatus = errors.New("invalid invite status")

	// ErrInvalidEquipmentIndex is returned when removing equipment that is not there
	ErrInvalidEquipmentIndex = errors.New("invalid equipment index")
)

type repository struct {
	mu        sync.Mutex
	storage   storage.Store
	directory Directory
	clock     clock.Clock
	ids       sequence.Generator
}

// New creates an invites repository backed by a durable store
func New(cfg *Config) (*repository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Storage == nil {
		return nil, errors.New("storage cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}
	if cfg.IDs == nil {
		return nil, errors.New("id generator cannot be nil")
	}

	var directory Directory = NewSampleDirectory()
	if cfg.Directory != nil {
		directory = cfg.Directory
	}

	return &repository{
		storage:   cfg.Storage,
		directory: directory,
		clock:     cfg.Clock,
		ids:       cfg.IDs,
	}, nil
}

// ListInvites returns invited players in invitation order
func (r *repository) ListInvites(ctx context.Context) ([]models.InvitedPlayer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

// InvitePlayer adds a pending invite with a starter sheet
func (r *repository) InvitePlayer(ctx context.Context, input *InvitePlayerInput) (*models.InvitedPlayer, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	tag := strings.TrimSpace(input.Tag)
	if tag == "" {
		return nil, ErrPlayerNotFound
	}

	profile, err := r.directory.FindByTag(ctx, tag)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		if p.Tag == profile.Tag {
			return nil, ErrAlreadyInvited
		}
	}

	invited := models.InvitedPlayer{
		ID:            r.ids.Next(),
		PlayerProfile: *profile,
		InvitedAt:     r.clock.Now(),
		Status:        models.InviteStatusPending,
		Character:     starterCharacter(*profile),
		Limits:        DefaultLimits(),
	}

	if err := r.save(ctx, append(list, invited)); err != nil {
		return nil, err
	}
	return &invited, nil
}

// UpdateInvite applies the requested changes to one invite
func (r *repository) UpdateInvite(ctx context.Context, input *UpdateInviteInput) (*models.InvitedPlayer, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.Status != nil && !input.Status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *input.Status)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	i := slices.IndexFunc(list, func(p models.InvitedPlayer) bool { return p.ID == input.InviteID })
	if i < 0 {
		return nil, ErrInviteNotFound
	}

	updated, err := applyUpdate(list[i], input)
	if err != nil {
		return nil, err
	}
	list[i] = updated

	if err := r.save(ctx, list); err != nil {
		return nil, err
	}
	return &updated, nil
}

// RemoveInvite drops an invited player
func (r *repository) RemoveInvite(ctx context.Context, input *RemoveInviteInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return err
	}

	i := slices.IndexFunc(list, func(p models.InvitedPlayer) bool { return p.ID == input.InviteID })
	if i < 0 {
		return ErrInviteNotFound
	}
	return r.save(ctx, slices.Delete(list, i, i+1))
}

func applyUpdate(p models.InvitedPlayer, input *UpdateInviteInput) (models.InvitedPlayer, error) {
	if input.Status != nil {
		p.Status = *input.Status
	}
	if input.Limits != nil {
		p.Limits = *input.Limits
	}
	if input.HP != nil {
		p.Character.HP = *input.HP
	}
	if input.XP != nil {
		p.Character.XP = *input.XP
	}
	if len(input.Attributes) > 0 {
		attrs := maps.Clone(p.Character.Attributes)
		if attrs == nil {
			attrs = make(map[string]int, len(input.Attributes))
		}
		maps.Copy(attrs, input.Attributes)
		p.Character.Attributes = attrs
	}

	equipment := slices.Clone(p.Character.Equipment)
	if input.RemoveEquipment != nil {
		idx := *input.RemoveEquipment
		if idx < 0 || idx >= len(equipment) {
			return p, ErrInvalidEquipmentIndex
		}
		equipment = slices.Delete(equipment, idx, idx+1)
	}
	if item := strings.TrimSpace(input.AddEquipment); item != "" {
		equipment = append(equipment, item)
	}
	p.Character.Equipment = equipment

	return p, nil
}

func (r *repository) load(ctx context.Context) ([]models.InvitedPlayer, error) {
	raw, err := r.storage.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return []models.InvitedPlayer{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read invites: %w", err)
	}

	var list []models.InvitedPlayer
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("failed to decode invites: %w", err)
	}
	if list == nil {
		list = []models.InvitedPlayer{}
	}
	return list, nil
}

func (r *repository) save(ctx context.Context, list []models.InvitedPlayer) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode invites: %w", err)
	}
	if err := r.storage.Set(ctx, StorageKey, string(data)); err != nil {
		return fmt.Errorf("failed to save invites: %w", err)
	}
	return nil
}
