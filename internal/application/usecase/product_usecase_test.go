package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Distriquim-api/internal/application/dto"
	"github.com/jhoicas/Distriquim-api/internal/application/usecase"
	"github.com/jhoicas/Distriquim-api/internal/domain"
	"github.com/jhoicas/Distriquim-api/internal/domain/entity"
)

type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{byID: map[string]*entity.Product{}}
	for _, p := range products {
		cp := *p
		r.byID[p.ID] = &cp
	}
	return r
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if p, ok := r.byID[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) List(_ context.Context, search string, activeOnly bool, _, _ int) ([]*entity.Product, int, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		if activeOnly && !p.Active {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (r *fakeProductRepo) ListActive(_ context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		if p.Active {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

// precio construye el puntero que SaveProductRequest espera para unitPrice.
func precio(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

type fakePriceListGen struct {
	products int
}

func (g *fakePriceListGen) GeneratePriceList(_ context.Context, products []*entity.Product, _ time.Time) ([]byte, error) {
	g.products = len(products)
	return []byte("%PDF-1.7 lista"), nil
}

func TestProductCreate_NormalizaNombreParaBusqueda(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, &fakePriceListGen{})

	out, err := uc.Create(context.Background(), dto.SaveProductRequest{
		Name:         "Ácido Sulfúrico 98%",
		CASNumber:    "7664-93-9",
		Presentation: "Tambor 200 L",
		UnitPrice:    precio("385.50"),
	})
	require.NoError(t, err)
	assert.True(t, out.Active, "una referencia nueva queda activa por defecto")

	stored, _ := repo.GetByID(context.Background(), out.ID)
	assert.Equal(t, "acido sulfurico 98%", stored.NameFolded)
	assert.True(t, stored.UnitPrice.Equal(decimal.RequireFromString("385.50")))
}

func TestProductCreate_PrecioNegativo(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), &fakePriceListGen{})
	_, err := uc.Create(context.Background(), dto.SaveProductRequest{
		Name:      "Soda cáustica",
		UnitPrice: precio("-1"),
	})
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.KindValidation, de.Kind)
	assert.Equal(t, "unitPrice", de.Field)
}

// Cero es un precio válido en una edición: el campo ausente (nil) es lo único
// que deja el precio como está.
func TestProductUpdate_PrecioCeroEsValido(t *testing.T) {
	repo := newFakeProductRepo(&entity.Product{
		ID: "p1", Name: "Muestra promocional", Active: true,
		UnitPrice: decimal.RequireFromString("49.90"),
	})
	uc := usecase.NewProductUseCase(repo, &fakePriceListGen{})

	out, err := uc.Update(context.Background(), "p1", dto.SaveProductRequest{UnitPrice: precio("0")})
	require.NoError(t, err)
	assert.True(t, out.UnitPrice.IsZero())

	stored, _ := repo.GetByID(context.Background(), "p1")
	assert.True(t, stored.UnitPrice.IsZero())
}

func TestProductUpdate_SinPrecioNoLoToca(t *testing.T) {
	repo := newFakeProductRepo(&entity.Product{
		ID: "p1", Name: "Ácido cítrico", Active: true,
		UnitPrice: decimal.RequireFromString("120.00"),
	})
	uc := usecase.NewProductUseCase(repo, &fakePriceListGen{})

	_, err := uc.Update(context.Background(), "p1", dto.SaveProductRequest{Presentation: "Saco 25 kg"})
	require.NoError(t, err)

	stored, _ := repo.GetByID(context.Background(), "p1")
	assert.True(t, stored.UnitPrice.Equal(decimal.RequireFromString("120.00")))
	assert.Equal(t, "Saco 25 kg", stored.Presentation)
}

func TestProductPriceListPDF_SoloReferenciasActivas(t *testing.T) {
	inactive := &entity.Product{ID: "p2", Name: "Descontinuado", Active: false}
	repo := newFakeProductRepo(
		&entity.Product{ID: "p1", Name: "Ácido nítrico", Active: true, UnitPrice: decimal.RequireFromString("120")},
		inactive,
	)
	gen := &fakePriceListGen{}
	uc := usecase.NewProductUseCase(repo, gen)

	pdf, err := uc.PriceListPDF(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, 1, gen.products, "las referencias inactivas no entran a la lista de precios")
}
