package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-pos/internal/audit"
	"github.com/BruksfildServices01/salon-pos/internal/config"
	domain "github.com/BruksfildServices01/salon-pos/internal/domain/availability"
	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/usecase"
)

// ======================================================
// INPUT
// ======================================================

type BlockInput struct {
	StaffID string
	Type    string
	Start   time.Time
	End     time.Time
	Note    string
}

type UpdateBlockInput struct {
	BlockID string
	Type    string
	Start   time.Time
	End     time.Time
	Note    string

	// ExpectedVersion > 0 rejects the update when the block changed since
	// the caller read it. Zero means last write wins.
	ExpectedVersion int
}

// ======================================================
// CREATE
// ======================================================

type CreateBlock struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBlock(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBlock {
	return &CreateBlock{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateBlock) Execute(
	ctx context.Context,
	actor usecase.Actor,
	in BlockInput,
) (*models.AvailabilityBlock, error) {

	if !actor.CanManageStaff(in.StaffID) {
		return nil, httperr.ErrForbidden("forbidden")
	}

	if _, err := usecase.FindStaff(ctx, uc.repo, actor.SalonID, in.StaffID); err != nil {
		return nil, err
	}

	loc, err := salonLocation(ctx, uc.repo, actor.SalonID)
	if err != nil {
		return nil, err
	}

	b := &models.AvailabilityBlock{
		SalonID: actor.SalonID,
		StaffID: in.StaffID,
		Type:    in.Type,
		Start:   in.Start,
		End:     in.End,
		Note:    in.Note,
		Version: 1,
	}
	if err := domain.PrepareBlock(b, loc); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateBlock(ctx, b); err != nil {
		return nil, fmt.Errorf("create block: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  actor.SalonID,
		UserID:   &actor.UserID,
		Action:   "block_created",
		Entity:   "availability_block",
		EntityID: &b.ID,
		Metadata: map[string]any{
			"staff_id": b.StaffID,
			"type":     b.Type,
		},
	})

	return b, nil
}

// ======================================================
// UPDATE
// ======================================================

type UpdateBlock struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBlock(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBlock {
	return &UpdateBlock{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateBlock) Execute(
	ctx context.Context,
	actor usecase.Actor,
	in UpdateBlockInput,
) (*models.AvailabilityBlock, error) {

	b, err := loadBlock(ctx, uc.repo, actor, in.BlockID)
	if err != nil {
		return nil, err
	}

	loc, err := salonLocation(ctx, uc.repo, actor.SalonID)
	if err != nil {
		return nil, err
	}

	b.Type = in.Type
	b.Start = in.Start
	b.End = in.End
	b.Note = in.Note
	if err := domain.PrepareBlock(b, loc); err != nil {
		return nil, err
	}

	ok, err := uc.repo.UpdateBlock(ctx, b, in.ExpectedVersion)
	if err != nil {
		return nil, fmt.Errorf("update block: %w", err)
	}
	if !ok {
		if in.ExpectedVersion > 0 {
			return nil, httperr.ErrConflict("stale_block")
		}
		return nil, httperr.ErrNotFound("block_not_found")
	}

	updated, err := uc.repo.GetBlock(ctx, actor.SalonID, b.ID)
	if err != nil {
		return nil, fmt.Errorf("reload block: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  actor.SalonID,
		UserID:   &actor.UserID,
		Action:   "block_updated",
		Entity:   "availability_block",
		EntityID: &updated.ID,
		Metadata: map[string]any{
			"version": updated.Version,
		},
	})

	return updated, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteBlock struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBlock(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBlock {
	return &DeleteBlock{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteBlock) Execute(
	ctx context.Context,
	actor usecase.Actor,
	blockID string,
) error {

	b, err := loadBlock(ctx, uc.repo, actor, blockID)
	if err != nil {
		return err
	}

	ok, err := uc.repo.DeleteBlock(ctx, actor.SalonID, b.ID)
	if err != nil {
		return fmt.Errorf("delete block: %w", err)
	}
	if !ok {
		return httperr.ErrNotFound("block_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  actor.SalonID,
		UserID:   &actor.UserID,
		Action:   "block_deleted",
		Entity:   "availability_block",
		EntityID: &b.ID,
	})

	return nil
}

// ======================================================
// HELPERS
// ======================================================

// loadBlock fetches a block of the caller's salon the caller may edit.
func loadBlock(
	ctx context.Context,
	repo domain.Repository,
	actor usecase.Actor,
	blockID string,
) (*models.AvailabilityBlock, error) {

	b, err := repo.GetBlock(ctx, actor.SalonID, blockID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("block_not_found")
		}
		return nil, fmt.Errorf("load block: %w", err)
	}
	if b.SalonID != actor.SalonID {
		return nil, httperr.ErrNotFound("block_not_found")
	}
	if !actor.CanManageStaff(b.StaffID) {
		return nil, httperr.ErrForbidden("forbidden")
	}
	return b, nil
}

func salonLocation(
	ctx context.Context,
	repo domain.Repository,
	salonID string,
) (*time.Location, error) {

	salon, err := repo.GetSalon(ctx, salonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("salon_not_found")
		}
		return nil, fmt.Errorf("load salon: %w", err)
	}
	return config.SettingsFor(salon).Location, nil
}
