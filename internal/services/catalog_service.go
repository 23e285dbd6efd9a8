package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync/atomic"

	"go.uber.org/zap"

	"thisorthat/internal/dataset"
	"thisorthat/internal/metrics"
	"thisorthat/internal/models/db_models"
	"thisorthat/internal/models/response_models"
	"thisorthat/internal/preference"
	"thisorthat/internal/repositories"
	"thisorthat/pkg/utils"
)

// Catalog is an immutable snapshot of the design store.
type Catalog struct {
	index   preference.DesignIndex
	ordered []preference.Design
}

func NewCatalog(designs []preference.Design) *Catalog {
	index := preference.NewDesignIndex(designs)
	ordered := make([]preference.Design, 0, len(index))
	for _, d := range index {
		ordered = append(ordered, d)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })
	return &Catalog{index: index, ordered: ordered}
}

func (c *Catalog) Design(id string) (preference.Design, bool) {
	return c.index.Design(id)
}

func (c *Catalog) Len() int {
	return len(c.ordered)
}

// At returns the design at position i in id order.
func (c *Catalog) At(i int) preference.Design {
	return c.ordered[i]
}

type CatalogServiceInterface interface {
	Snapshot() *Catalog
	Reload(ctx context.Context) error
	Import(ctx context.Context, designs []preference.Design) error
	// ImportDocument normalizes a raw dataset document and imports it.
	ImportDocument(ctx context.Context, r io.Reader) (*dataset.Report, error)
	// SeedIfEmpty imports the dataset at path when the store has no designs.
	SeedIfEmpty(ctx context.Context, path string) error
	ListDesigns(ctx context.Context, page, pageSize int) (response_models.DesignPage, error)
	GetDesign(ctx context.Context, id string) (*response_models.DesignResponse, error)
}

type CatalogService struct {
	designRepo repositories.DesignRepositoryInterface
	loader     *dataset.Loader
	metrics    *metrics.Metrics
	logger     *zap.Logger
	current    atomic.Pointer[Catalog]
}

func NewCatalogService(
	designRepo repositories.DesignRepositoryInterface,
	loader *dataset.Loader,
	m *metrics.Metrics,
	logger *zap.Logger,
) *CatalogService {
	s := &CatalogService{
		designRepo: designRepo,
		loader:     loader,
		metrics:    m,
		logger:     logger.Named("catalog"),
	}
	s.current.Store(NewCatalog(nil))
	return s
}

func (s *CatalogService) Snapshot() *Catalog {
	return s.current.Load()
}

func (s *CatalogService) Reload(ctx context.Context) error {
	rows, err := s.designRepo.ListDesigns(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	designs := make([]preference.Design, 0, len(rows))
	for _, row := range rows {
		designs = append(designs, rowToDesign(row))
	}
	catalog := NewCatalog(designs)
	s.current.Store(catalog)
	s.metrics.SetCatalogSize(catalog.Len())
	s.logger.Info("catalog reloaded", zap.Int("designs", catalog.Len()))
	return nil
}

func (s *CatalogService) Import(ctx context.Context, designs []preference.Design) error {
	if len(designs) == 0 {
		return fmt.Errorf("%w: no designs to import", utils.ErrDatasetInvalid)
	}
	rows := make([]db_models.Design, 0, len(designs))
	for _, d := range designs {
		rows = append(rows, designToRow(d))
	}
	if err := s.designRepo.UpsertDesigns(ctx, rows); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	s.logger.Info("designs imported", zap.Int("designs", len(rows)))
	return s.Reload(ctx)
}

func (s *CatalogService) ImportDocument(ctx context.Context, r io.Reader) (*dataset.Report, error) {
	res, err := s.loader.Load(r)
	if err != nil {
		if errors.Is(err, dataset.ErrMalformedDocument) || errors.Is(err, dataset.ErrNoDesigns) {
			return nil, fmt.Errorf("%w: %v", utils.ErrDatasetInvalid, err)
		}
		return nil, err
	}
	if err := s.Import(ctx, res.Designs); err != nil {
		return nil, err
	}
	return &res.Report, nil
}

func (s *CatalogService) SeedIfEmpty(ctx context.Context, path string) error {
	count, err := s.designRepo.CountDesigns(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if count > 0 || path == "" {
		return s.Reload(ctx)
	}

	res, err := s.loader.LoadFile(path)
	if err != nil {
		return fmt.Errorf("seed from %s: %w", path, err)
	}
	s.logger.Info("seeding empty design store",
		zap.String("path", path),
		zap.Int("designs", res.Report.Designs),
		zap.Int("skipped", res.Report.Skipped))
	return s.Import(ctx, res.Designs)
}

func (s *CatalogService) ListDesigns(ctx context.Context, page, pageSize int) (response_models.DesignPage, error) {
	if page < 1 {
		return response_models.DesignPage{}, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > utils.MaxPageSize {
		return response_models.DesignPage{}, utils.ErrInvalidPageSize
	}

	catalog := s.Snapshot()
	out := response_models.DesignPage{
		Items:    []response_models.DesignResponse{},
		Page:     page,
		PageSize: pageSize,
		Total:    catalog.Len(),
	}
	start := (page - 1) * pageSize
	for i := start; i < catalog.Len() && i < start+pageSize; i++ {
		out.Items = append(out.Items, designResponse(catalog.At(i)))
	}
	return out, nil
}

func (s *CatalogService) GetDesign(ctx context.Context, id string) (*response_models.DesignResponse, error) {
	d, ok := s.Snapshot().Design(id)
	if !ok {
		return nil, utils.ErrDesignNotFound
	}
	resp := designResponse(d)
	return &resp, nil
}
