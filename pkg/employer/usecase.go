package employer

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"employer-hub/pkg/upload"
)

// CreateInput carries the form fields of a new employer record.
type CreateInput struct {
	Name            string
	Email           string
	CompanyName     string
	CompanySize     string
	Industry        string
	CompanyLocation string
}

// UseCase coordinates employer records with their stored logo files.
//
// Logo files arrive already stored (the HTTP layer writes the upload before
// the workflow runs), so every failure path here must remove the fresh file
// to avoid leaving an orphan. There is no transaction spanning the record
// store and the file store: failures after the file write are compensated by
// deleting the file. A crash between the two steps can still orphan a file;
// no reconciliation sweep is performed.
type UseCase interface {
	Create(ctx context.Context, in CreateInput, logoRef string, actorID uuid.UUID) (Employer, error)
	Get(ctx context.Context, rawID string) (Employer, error)
	List(ctx context.Context) ([]Employer, error)
	Update(ctx context.Context, rawID string, upd Update, logoRef string) (Employer, error)
	Delete(ctx context.Context, rawID string) (Employer, error)
}

type service struct {
	repo  Repository
	store upload.Store
	log   *slog.Logger
}

func NewService(repo Repository, store upload.Store, log *slog.Logger) UseCase {
	return &service{repo: repo, store: store, log: log}
}

// requiredFields in the order they are validated and reported.
var requiredFields = []struct {
	label string
	value func(CreateInput) string
}{
	{"Name", func(in CreateInput) string { return in.Name }},
	{"Email", func(in CreateInput) string { return in.Email }},
	{"Company Name", func(in CreateInput) string { return in.CompanyName }},
	{"Company Size", func(in CreateInput) string { return in.CompanySize }},
	{"Industry", func(in CreateInput) string { return in.Industry }},
	{"Company Location", func(in CreateInput) string { return in.CompanyLocation }},
}

func (s *service) Create(ctx context.Context, in CreateInput, logoRef string, actorID uuid.UUID) (Employer, error) {
	for _, f := range requiredFields {
		if strings.TrimSpace(f.value(in)) == "" {
			s.discard(ctx, logoRef)
			return Employer{}, ErrValidation(f.label + " is required.")
		}
	}
	if logoRef == "" {
		return Employer{}, ErrValidation("Company logo is required.")
	}

	// Fast pre-check; the unique constraint on email catches concurrent
	// writers that slip past it.
	if _, err := s.repo.GetByEmail(ctx, in.Email); err == nil {
		s.discard(ctx, logoRef)
		return Employer{}, ErrEmailTaken
	}

	e := Employer{
		ID:              uuid.New(),
		Name:            in.Name,
		Email:           in.Email,
		CompanyName:     in.CompanyName,
		CompanySize:     in.CompanySize,
		Industry:        in.Industry,
		CompanyLocation: in.CompanyLocation,
		CompanyLogo:     logoRef,
		CreatedBy:       actorID,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, e); err != nil {
		s.discard(ctx, logoRef)
		return Employer{}, err
	}
	return e, nil
}

func (s *service) Get(ctx context.Context, rawID string) (Employer, error) {
	id, err := parseID(rawID)
	if err != nil {
		return Employer{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]Employer, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, rawID string, upd Update, logoRef string) (Employer, error) {
	id, err := parseID(rawID)
	if err != nil {
		s.discard(ctx, logoRef)
		return Employer{}, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.discard(ctx, logoRef)
		return Employer{}, err
	}

	if upd.Email != "" && upd.Email != existing.Email {
		if other, err := s.repo.GetByEmail(ctx, upd.Email); err == nil && other.ID != id {
			s.discard(ctx, logoRef)
			return Employer{}, ErrEmailTaken
		}
	}

	upd.CompanyLogo = logoRef
	if upd.IsEmpty() {
		return Employer{}, ErrValidation("No update data provided.")
	}

	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		s.discard(ctx, logoRef)
		return Employer{}, err
	}

	// The previous logo is removed only after the update committed, so a
	// failed update never leaves the record pointing at a deleted file.
	if logoRef != "" && existing.CompanyLogo != "" {
		s.discard(ctx, existing.CompanyLogo)
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, rawID string) (Employer, error) {
	id, err := parseID(rawID)
	if err != nil {
		return Employer{}, err
	}
	snapshot, err := s.repo.Delete(ctx, id)
	if err != nil {
		return Employer{}, err
	}
	// Record deletion is authoritative; the file removal is best-effort.
	s.discard(ctx, snapshot.CompanyLogo)
	return snapshot, nil
}

// discard removes a stored file, logging failures instead of propagating
// them. Cleanup must never change the outcome of the primary operation.
func (s *service) discard(ctx context.Context, ref string) {
	if ref == "" {
		return
	}
	if err := s.store.Remove(ctx, ref); err != nil {
		s.log.Warn("failed to remove logo file", "ref", ref, "error", err)
	}
}

func parseID(rawID string) (uuid.UUID, error) {
	rawID = strings.TrimSpace(rawID)
	if rawID == "" {
		return uuid.Nil, ErrValidation("Employer ID is required.")
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, ErrValidation("Invalid Employer ID format.")
	}
	return id, nil
}
