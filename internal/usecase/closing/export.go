package closing

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/salon-pos/internal/config"
	domain "github.com/BruksfildServices01/salon-pos/internal/domain/closing"
	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/report"
	"github.com/BruksfildServices01/salon-pos/internal/usecase"
)

// Archiver stores exported files outside the database.
type Archiver interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
}

type Export struct {
	Filename   string
	Data       []byte
	ArchiveKey string
}

type ExportClosings struct {
	repo     domain.Repository
	archiver Archiver
}

// NewExportClosings builds the use case. A nil archiver only renders.
func NewExportClosings(
	repo domain.Repository,
	archiver Archiver,
) *ExportClosings {
	return &ExportClosings{
		repo:     repo,
		archiver: archiver,
	}
}

func (uc *ExportClosings) Execute(
	ctx context.Context,
	actor usecase.Actor,
	from time.Time,
	to time.Time,
) (*Export, error) {

	if !actor.IsAdmin() {
		return nil, httperr.ErrForbidden("forbidden")
	}
	if !from.Before(to) {
		return nil, httperr.ErrValidation("invalid_range")
	}

	salon, err := loadSalon(ctx, uc.repo, actor.SalonID)
	if err != nil {
		return nil, err
	}

	rows, err := uc.repo.ListClosings(ctx, actor.SalonID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list closings: %w", err)
	}

	data, err := report.Closings(rows, config.SettingsFor(salon).Location)
	if err != nil {
		return nil, fmt.Errorf("render closings: %w", err)
	}

	name := fmt.Sprintf("%s_%s.xlsx", from.UTC().Format("20060102"), to.UTC().Format("20060102"))
	out := &Export{
		Filename: "closings_" + name,
		Data:     data,
	}

	if uc.archiver != nil {
		key := fmt.Sprintf("closings/%s/%s", actor.SalonID, name)
		if err := uc.archiver.Put(ctx, key, data, report.ContentTypeXLSX); err != nil {
			// the download still succeeds without the archive copy
			zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("closing export archive failed")
		} else {
			out.ArchiveKey = key
		}
	}

	return out, nil
}
