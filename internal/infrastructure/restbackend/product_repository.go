package restbackend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/lmedina/abarrotes-api/internal/domain/entity"
	"github.com/lmedina/abarrotes-api/internal/domain/repository"
)

const productsCollection = "products"

// productDoc representación en el wire de un producto.
// Los nombres de campo son contrato con el backend existente: no cambiar.
type productDoc struct {
	ID             flexID          `json:"id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	Stock          decimal.Decimal `json:"stock"`
	ExpirationDate string          `json:"expirationDate"`
}

func (d productDoc) toEntity() entity.Product {
	return entity.Product{
		ID:             int64(d.ID),
		Name:           d.Name,
		Price:          d.Price,
		Stock:          d.Stock,
		ExpirationDate: d.ExpirationDate,
	}
}

// productPatchDoc cuerpo de un PATCH parcial; los campos nil se omiten.
type productPatchDoc struct {
	Name           *string          `json:"name,omitempty"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	Stock          *decimal.Decimal `json:"stock,omitempty"`
	ExpirationDate *string          `json:"expirationDate,omitempty"`
}

// ProductRepository implementación de repository.ProductRepository sobre la
// colección products del backend.
type ProductRepository struct {
	client *Client
}

// NewProductRepository construye el repositorio.
func NewProductRepository(client *Client) *ProductRepository {
	return &ProductRepository{client: client}
}

// List devuelve todos los productos.
func (r *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	var docs []productDoc
	if err := r.client.do(ctx, http.MethodGet, productsCollection, "/products", nil, &docs); err != nil {
		return nil, err
	}
	products := make([]entity.Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, d.toEntity())
	}
	return products, nil
}

// GetByID devuelve un producto o domain.ErrNotFound.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	var doc productDoc
	if err := r.client.do(ctx, http.MethodGet, productsCollection, fmt.Sprintf("/products/%d", id), nil, &doc); err != nil {
		return nil, err
	}
	p := doc.toEntity()
	return &p, nil
}

// Create crea el producto con el ID explícito que trae p. El id viaja como
// string para mantener el tipo que el backend ya tiene guardado.
func (r *ProductRepository) Create(ctx context.Context, p entity.Product) (*entity.Product, error) {
	in := productDoc{
		ID:             flexID(p.ID),
		Name:           p.Name,
		Price:          p.Price,
		Stock:          p.Stock,
		ExpirationDate: p.ExpirationDate,
	}
	var out productDoc
	if err := r.client.do(ctx, http.MethodPost, productsCollection, "/products", in, &out); err != nil {
		return nil, err
	}
	created := out.toEntity()
	return &created, nil
}

// Patch actualiza parcialmente un producto y devuelve el estado resultante.
func (r *ProductRepository) Patch(ctx context.Context, id int64, patch repository.ProductPatch) (*entity.Product, error) {
	in := productPatchDoc{
		Name:           patch.Name,
		Price:          patch.Price,
		Stock:          patch.Stock,
		ExpirationDate: patch.ExpirationDate,
	}
	var out productDoc
	if err := r.client.do(ctx, http.MethodPatch, productsCollection, fmt.Sprintf("/products/%d", id), in, &out); err != nil {
		return nil, err
	}
	updated := out.toEntity()
	return &updated, nil
}

// Delete elimina el producto.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	return r.client.do(ctx, http.MethodDelete, productsCollection, fmt.Sprintf("/products/%d", id), nil, nil)
}

var _ repository.ProductRepository = (*ProductRepository)(nil)
