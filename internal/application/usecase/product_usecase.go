package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Distriquim-api/internal/application/dto"
	"github.com/jhoicas/Distriquim-api/internal/domain"
	"github.com/jhoicas/Distriquim-api/internal/domain/entity"
	"github.com/jhoicas/Distriquim-api/internal/domain/repository"
	"github.com/jhoicas/Distriquim-api/pkg/textutil"
)

// ProductUseCase catálogo químico con lista de precios.
type ProductUseCase struct {
	repo repository.ProductRepository
	pdf  PriceListGenerator
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, pdf PriceListGenerator) *ProductUseCase {
	return &ProductUseCase{repo: repo, pdf: pdf}
}

// Create da de alta una referencia del catálogo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.EField(domain.KindValidation, "name es requerido", "name")
	}
	if in.UnitPrice == nil {
		return nil, domain.EField(domain.KindValidation, "unitPrice es requerido", "unitPrice")
	}
	if in.UnitPrice.IsNegative() {
		return nil, domain.EField(domain.KindValidation, "unitPrice no puede ser negativo", "unitPrice")
	}
	now := time.Now()
	p := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		NameFolded:   textutil.Fold(in.Name),
		CASNumber:    in.CASNumber,
		Presentation: in.Presentation,
		UnitPrice:    *in.UnitPrice,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.Active != nil {
		p.Active = *in.Active
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// GetByID obtiene una referencia.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFound("producto no encontrado")
	}
	return toProductResponse(p), nil
}

// List lista el catálogo. Los distribuidores solo ven referencias activas;
// search filtra por nombre sin tildes.
func (uc *ProductUseCase) List(ctx context.Context, search string, activeOnly bool, page dto.PageRequest) ([]*dto.ProductResponse, dto.Pagination, error) {
	page.Normalize()
	list, total, err := uc.repo.List(ctx, textutil.Fold(search), activeOnly, page.Limit, page.Offset())
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, dto.NewPagination(page.Page, page.Limit, total), nil
}

// Update edita una referencia.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFound("producto no encontrado")
	}
	if in.Name != "" {
		p.Name = in.Name
		p.NameFolded = textutil.Fold(in.Name)
	}
	if in.CASNumber != "" {
		p.CASNumber = in.CASNumber
	}
	if in.Presentation != "" {
		p.Presentation = in.Presentation
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, domain.EField(domain.KindValidation, "unitPrice no puede ser negativo", "unitPrice")
		}
		p.UnitPrice = *in.UnitPrice
	}
	if in.Active != nil {
		p.Active = *in.Active
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Delete elimina una referencia.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.NotFound("producto no encontrado")
	}
	return uc.repo.Delete(ctx, id)
}

// PriceListPDF genera el PDF de la lista de precios vigente (referencias activas).
func (uc *ProductUseCase) PriceListPDF(ctx context.Context) ([]byte, error) {
	products, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GeneratePriceList(ctx, products, time.Now())
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		CASNumber:    p.CASNumber,
		Presentation: p.Presentation,
		UnitPrice:    p.UnitPrice,
		Active:       p.Active,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
