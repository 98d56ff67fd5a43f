package service

import (
	"context"
	"log"

	"lexdraft/internal/cache"
	"lexdraft/internal/model"
	"lexdraft/internal/repository"
)

// TemplateService serves the contract template library
type TemplateService struct {
	templateRepo  repository.TemplateRepo
	templateCache cache.TemplateCache
}

// NewTemplateService creates a new template service
func NewTemplateService(templateRepo repository.TemplateRepo, templateCache cache.TemplateCache) *TemplateService {
	return &TemplateService{
		templateRepo:  templateRepo,
		templateCache: templateCache,
	}
}

// List returns templates for a category ("" means all), cache-aside
func (s *TemplateService) List(ctx context.Context, category string) ([]*model.Template, error) {
	if cached, ok, err := s.templateCache.GetList(ctx, category); err == nil && ok {
		return cached, nil
	}

	var (
		templates []*model.Template
		err       error
	)
	if category == "" {
		templates, err = s.templateRepo.List(ctx)
	} else {
		templates, err = s.templateRepo.ListByCategory(ctx, category)
	}
	if err != nil {
		return nil, err
	}

	if err := s.templateCache.SetList(ctx, category, templates); err != nil {
		log.Printf("[Templates] WARN: cache write failed: %v", err)
	}
	return templates, nil
}

// Get fetches one template and bumps its download counter
func (s *TemplateService) Get(ctx context.Context, id string) (*model.Template, error) {
	tpl, err := s.templateRepo.GetByID(ctx, id)
	if err != nil || tpl == nil {
		return tpl, err
	}

	if err := s.templateRepo.IncrementDownloads(ctx, id); err != nil {
		log.Printf("[Templates] WARN: download count update failed: %v", err)
	} else {
		tpl.DownloadCount++
		if err := s.templateCache.Invalidate(ctx, tpl.Category); err != nil {
			log.Printf("[Templates] WARN: cache invalidation failed: %v", err)
		}
	}
	return tpl, nil
}

// Create inserts a template and invalidates its category listing
func (s *TemplateService) Create(ctx context.Context, tpl *model.Template) (string, error) {
	id, err := s.templateRepo.Create(ctx, tpl)
	if err != nil {
		return "", err
	}
	if err := s.templateCache.Invalidate(ctx, tpl.Category); err != nil {
		log.Printf("[Templates] WARN: cache invalidation failed: %v", err)
	}
	return id, nil
}
