package service

import (
	"context"

	"github.com/freightdesk/tariff/internal/template/domain"
	"github.com/samber/lo"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("template.service"),
		repo: p.Repo,
	}
}

func (s *Service) List(ctx context.Context, mode domain.ShipmentMode) ([]domain.Response, error) {
	if mode != domain.ModeAir && mode != domain.ModeSea {
		return nil, domain.ErrInvalidMode
	}

	items, err := s.repo.FindByMode(ctx, s.db, mode)
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(t domain.Template, _ int) domain.Response {
		return domain.Response{
			Code:      t.Code,
			Name:      t.Name,
			Mode:      t.Mode,
			Direction: t.Direction,
		}
	}), nil
}

func (s *Service) Get(ctx context.Context, code domain.TemplateCode) (*domain.Template, error) {
	t, err := s.repo.FindByCode(ctx, s.db, code)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

func (s *Service) DefaultLines(ctx context.Context, code domain.TemplateCode) ([]domain.TemplateLine, error) {
	t, err := s.Get(ctx, code)
	if err != nil {
		return nil, err
	}

	return lo.Filter(t.Lines, func(l domain.TemplateLine, _ int) bool {
		return l.IsDefault
	}), nil
}

func (s *Service) Addons(ctx context.Context, code domain.TemplateCode) ([]domain.AddonResponse, error) {
	t, err := s.Get(ctx, code)
	if err != nil {
		return nil, err
	}

	return lo.FilterMap(t.Lines, func(l domain.TemplateLine, _ int) (domain.AddonResponse, bool) {
		return domain.AddonResponse{
			Code:     l.Code,
			Label:    l.Label,
			Group:    l.Group,
			QtyBasis: l.QtyBasis,
		}, l.IsOptional
	}), nil
}

func (s *Service) Line(ctx context.Context, code domain.TemplateCode, lineCode string) (*domain.TemplateLine, error) {
	t, err := s.repo.FindByCode(ctx, s.db, code)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}

	line, err := s.repo.FindLineByCode(ctx, s.db, t.ID, lineCode)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, domain.ErrLineNotFound
	}
	return line, nil
}
