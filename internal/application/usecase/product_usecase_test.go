package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmedina/abarrotes-api/internal/application/dto"
	"github.com/lmedina/abarrotes-api/internal/domain"
	"github.com/lmedina/abarrotes-api/internal/domain/entity"
	"github.com/lmedina/abarrotes-api/internal/domain/expiration"
	"github.com/lmedina/abarrotes-api/internal/domain/repository"
	"github.com/lmedina/abarrotes-api/pkg/logger"
)

var fixedNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

type fakeProducts struct {
	items       []entity.Product
	createCalls int
}

func (f *fakeProducts) List(ctx context.Context) ([]entity.Product, error) {
	return f.items, nil
}

func (f *fakeProducts) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	for _, p := range f.items {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProducts) Create(ctx context.Context, p entity.Product) (*entity.Product, error) {
	f.createCalls++
	f.items = append(f.items, p)
	return &p, nil
}

func (f *fakeProducts) Patch(ctx context.Context, id int64, patch repository.ProductPatch) (*entity.Product, error) {
	for i, p := range f.items {
		if p.ID != id {
			continue
		}
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Stock != nil {
			p.Stock = *patch.Stock
		}
		if patch.ExpirationDate != nil {
			p.ExpirationDate = *patch.ExpirationDate
		}
		f.items[i] = p
		return &p, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProducts) Delete(ctx context.Context, id int64) error {
	for i, p := range f.items {
		if p.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func newUC(repo *fakeProducts) *ProductUseCase {
	return NewProductUseCase(repo, logger.Nop(), expiration.DefaultNearDays).
		WithClock(func() time.Time { return fixedNow })
}

func dec(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func producto(id int64, name, exp string, price, stock float64) entity.Product {
	return entity.Product{
		ID:             id,
		Name:           name,
		Price:          decimal.NewFromFloat(price),
		Stock:          decimal.NewFromFloat(stock),
		ExpirationDate: exp,
	}
}

func TestCreate_CalculaSiguienteID(t *testing.T) {
	repo := &fakeProducts{items: []entity.Product{
		producto(1, "Arroz", "2024-08-01", 30, 10),
		producto(5, "Frijol", "2024-08-01", 40, 4),
		producto(2, "Azúcar", "2024-08-01", 25, 8),
	}}
	uc := newUC(repo)

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:           "Lentejas",
		Price:          dec(28),
		Stock:          dec(5.5),
		ExpirationDate: "2024-09-15",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6), out.ID, "siguiente id = max conocido + 1")
}

func TestCreate_CatalogoVacioEmpiezaEnUno(t *testing.T) {
	repo := &fakeProducts{}
	uc := newUC(repo)

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:           "Arroz",
		Price:          dec(30),
		Stock:          dec(0),
		ExpirationDate: "2024-09-15",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
}

func TestCreate_Validaciones(t *testing.T) {
	cases := []struct {
		name string
		in   dto.CreateProductRequest
	}{
		{"nombre vacío", dto.CreateProductRequest{Name: "  ", Price: dec(10), Stock: dec(1), ExpirationDate: "2024-09-15"}},
		{"sin precio", dto.CreateProductRequest{Name: "Arroz", Stock: dec(1), ExpirationDate: "2024-09-15"}},
		{"precio negativo", dto.CreateProductRequest{Name: "Arroz", Price: dec(-1), Stock: dec(1), ExpirationDate: "2024-09-15"}},
		{"sin stock", dto.CreateProductRequest{Name: "Arroz", Price: dec(10), ExpirationDate: "2024-09-15"}},
		{"stock negativo", dto.CreateProductRequest{Name: "Arroz", Price: dec(10), Stock: dec(-2), ExpirationDate: "2024-09-15"}},
		{"fecha inválida", dto.CreateProductRequest{Name: "Arroz", Price: dec(10), Stock: dec(1), ExpirationDate: "15/09/2024"}},
		{"fecha en el pasado", dto.CreateProductRequest{Name: "Arroz", Price: dec(10), Stock: dec(1), ExpirationDate: "2024-06-09"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeProducts{}
			uc := newUC(repo)
			_, err := uc.Create(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Zero(t, repo.createCalls, "una validación fallida no debe llegar al backend")
		})
	}
}

func TestCreate_FechaHoyEsValida(t *testing.T) {
	repo := &fakeProducts{}
	uc := newUC(repo)

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:           "Pan",
		Price:          dec(12),
		Stock:          dec(3),
		ExpirationDate: "2024-06-10",
	})
	assert.NoError(t, err, "caducar hoy no es estar en el pasado")
}

func TestUpdate_Parcial(t *testing.T) {
	repo := &fakeProducts{items: []entity.Product{producto(1, "Arroz", "2024-08-01", 30, 10)}}
	uc := newUC(repo)

	name := "Arroz integral"
	out, err := uc.Update(context.Background(), 1, dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Arroz integral", out.Name)
	assert.True(t, out.Price.Equal(decimal.NewFromInt(30)), "los campos no enviados no cambian")
}

func TestUpdate_SinCampos(t *testing.T) {
	repo := &fakeProducts{items: []entity.Product{producto(1, "Arroz", "2024-08-01", 30, 10)}}
	uc := newUC(repo)

	_, err := uc.Update(context.Background(), 1, dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_NoEncontrado(t *testing.T) {
	repo := &fakeProducts{}
	uc := newUC(repo)

	name := "X"
	_, err := uc.Update(context.Background(), 99, dto.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_AnotaEstado(t *testing.T) {
	repo := &fakeProducts{items: []entity.Product{
		producto(1, "Bananas", "2024-06-05", 10, 20),
		producto(2, "Arroz", "2024-08-01", 30, 10),
		producto(3, "Pan", "2024-06-12", 12, 3),
	}}
	uc := newUC(repo)

	out, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Items, 3)

	byID := map[int64]dto.ProductResponse{}
	for _, it := range out.Items {
		byID[it.ID] = it
	}
	assert.Equal(t, string(expiration.StatusExpired), byID[1].Status)
	require.NotNil(t, byID[1].DaysUntil)
	assert.Equal(t, -5, *byID[1].DaysUntil)
	assert.Equal(t, string(expiration.StatusCurrent), byID[2].Status)
	assert.Equal(t, string(expiration.StatusNearExpiry), byID[3].Status)
}

func TestListExpiration_FiltroYBusqueda(t *testing.T) {
	repo := &fakeProducts{items: []entity.Product{
		producto(1, "Bananas", "2024-06-05", 10, 20),
		producto(2, "Arroz", "2024-08-01", 30, 10),
		producto(3, "Pan blanco", "2024-06-12", 12, 3),
		producto(4, "Pan dulce", "2024-06-11", 15, 2),
	}}
	uc := newUC(repo)

	porCaducar, err := uc.ListExpiration(context.Background(), string(expiration.StatusNearExpiry), "")
	require.NoError(t, err)
	require.Len(t, porCaducar.Items, 2)
	// Orden: más urgente primero.
	assert.Equal(t, int64(4), porCaducar.Items[0].ID)
	assert.Equal(t, int64(3), porCaducar.Items[1].ID)

	pan, err := uc.ListExpiration(context.Background(), FilterAll, "pan")
	require.NoError(t, err)
	assert.Len(t, pan.Items, 2, "búsqueda insensible a mayúsculas sobre el nombre")

	_, err = uc.ListExpiration(context.Background(), "vencido", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListExpiration_FechaCorruptaNoRompeElReporte(t *testing.T) {
	repo := &fakeProducts{items: []entity.Product{
		producto(1, "Bananas", "2024-06-05", 10, 20),
		producto(2, "Sin fecha", "", 5, 1),
	}}
	uc := newUC(repo)

	out, err := uc.ListExpiration(context.Background(), FilterAll, "")
	require.NoError(t, err)
	require.Len(t, out.Items, 2, "la fila con fecha corrupta se muestra sin estado")

	// La fila sin fecha válida va al final y sin estado.
	last := out.Items[len(out.Items)-1]
	assert.Equal(t, int64(2), last.ID)
	assert.Empty(t, last.Status)
	assert.Nil(t, last.DaysUntil)
}
