package catalog_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comercial-api/internal/application/catalog"
	"github.com/jhoicas/Comercial-api/internal/application/dto"
	"github.com/jhoicas/Comercial-api/internal/domain"
	"github.com/jhoicas/Comercial-api/internal/domain/entity"
	"github.com/jhoicas/Comercial-api/pkg/logger"
)

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) UpdateStock(id string, stock int64) error {
	f.products[id].Stock = &stock
	return nil
}
func (f *fakeProductRepo) SetActive(id string, active bool) error {
	f.products[id].Active = active
	return nil
}
func (f *fakeProductRepo) List(search string, active *bool) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range f.products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(search)) {
			continue
		}
		if active != nil && p.Active != *active {
			continue
		}
		list = append(list, p)
	}
	return list, nil
}

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (f *fakeSupplierRepo) Create(s *entity.Supplier) error { f.suppliers[s.ID] = s; return nil }
func (f *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return f.suppliers[id], nil
}
func (f *fakeSupplierRepo) Update(s *entity.Supplier) error        { f.suppliers[s.ID] = s; return nil }
func (f *fakeSupplierRepo) SetActive(id string, active bool) error { return nil }
func (f *fakeSupplierRepo) List(string, *bool) ([]*entity.Supplier, error) {
	return nil, nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func int64Ptr(v int64) *int64 { return &v }

type productFixture struct {
	uc       *catalog.ProductUseCase
	products *fakeProductRepo
}

func newProductFixture() *productFixture {
	products := &fakeProductRepo{products: make(map[string]*entity.Product)}
	suppliers := &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{
		"s1": {ID: "s1", Name: "Distribuidora Sur", Active: true},
	}}
	return &productFixture{
		uc:       catalog.NewProductUseCase(products, suppliers, logger.Nop()),
		products: products,
	}
}

func TestProductCreate_StockObligatorioConControl(t *testing.T) {
	f := newProductFixture()
	ctx := context.Background()

	_, err := f.uc.Create(ctx, dto.CreateProductRequest{Name: "Taladro", StockControl: true})
	assert.ErrorIs(t, err, domain.ErrValidation, "con control de stock el stock inicial es obligatorio")

	_, err = f.uc.Create(ctx, dto.CreateProductRequest{Name: "Taladro", StockControl: true, Stock: int64Ptr(-1)})
	assert.ErrorIs(t, err, domain.ErrValidation)

	id, err := f.uc.Create(ctx, dto.CreateProductRequest{Name: "Taladro", StockControl: true, Stock: int64Ptr(12)})
	require.NoError(t, err)
	require.NotNil(t, f.products.products[id].Stock)
	assert.Equal(t, int64(12), *f.products.products[id].Stock)
}

func TestProductCreate_SinControlIgnoraStock(t *testing.T) {
	f := newProductFixture()

	id, err := f.uc.Create(context.Background(), dto.CreateProductRequest{Name: "Flete", StockControl: false, Stock: int64Ptr(99)})
	require.NoError(t, err)
	assert.Nil(t, f.products.products[id].Stock, "sin control de stock el campo queda indefinido")
}

func TestProductCreate_ProveedorInexistente(t *testing.T) {
	f := newProductFixture()

	_, err := f.uc.Create(context.Background(), dto.CreateProductRequest{Name: "Taladro", SupplierID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrReferenceNotFound)
}

func TestProductAdjustStock_SoloConControl(t *testing.T) {
	f := newProductFixture()
	ctx := context.Background()

	conControl, err := f.uc.Create(ctx, dto.CreateProductRequest{Name: "Taladro", StockControl: true, Stock: int64Ptr(5)})
	require.NoError(t, err)
	sinControl, err := f.uc.Create(ctx, dto.CreateProductRequest{Name: "Flete"})
	require.NoError(t, err)

	require.NoError(t, f.uc.AdjustStock(ctx, conControl, dto.AdjustStockRequest{Stock: 20}))
	assert.Equal(t, int64(20), *f.products.products[conControl].Stock)

	err = f.uc.AdjustStock(ctx, conControl, dto.AdjustStockRequest{Stock: -3})
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = f.uc.AdjustStock(ctx, sinControl, dto.AdjustStockRequest{Stock: 10})
	assert.ErrorIs(t, err, domain.ErrValidation, "sin control de stock no hay ajuste")
}

func TestProductUpdate_NoTocaElStock(t *testing.T) {
	f := newProductFixture()
	ctx := context.Background()

	id, err := f.uc.Create(ctx, dto.CreateProductRequest{Name: "Taladro", StockControl: true, Stock: int64Ptr(5), SellPrice: decPtrCat("100")})
	require.NoError(t, err)

	price := dec("150")
	require.NoError(t, f.uc.Update(ctx, id, dto.UpdateProductRequest{SellPrice: &price}))

	p := f.products.products[id]
	assert.True(t, p.SellPrice.Equal(dec("150")))
	assert.Equal(t, int64(5), *p.Stock, "update común no modifica stock")
}

func TestProductSetActive_ToggleRedundanteEsError(t *testing.T) {
	f := newProductFixture()
	ctx := context.Background()
	id, err := f.uc.Create(ctx, dto.CreateProductRequest{Name: "Taladro"})
	require.NoError(t, err)

	assert.ErrorIs(t, f.uc.SetActive(ctx, id, true), domain.ErrValidation)
	require.NoError(t, f.uc.SetActive(ctx, id, false))
	assert.False(t, f.products.products[id].Active)
}

func TestProductList_BusquedaYFiltroActivo(t *testing.T) {
	f := newProductFixture()
	ctx := context.Background()

	taladro, err := f.uc.Create(ctx, dto.CreateProductRequest{Name: "Taladro percutor"})
	require.NoError(t, err)
	_, err = f.uc.Create(ctx, dto.CreateProductRequest{Name: "Martillo"})
	require.NoError(t, err)

	resp, err := f.uc.List("taladro", nil)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, taladro, resp[0].ID)

	require.NoError(t, f.uc.SetActive(ctx, taladro, false))
	activos := true
	resp, err = f.uc.List("", &activos)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Martillo", resp[0].Name)
}

func decPtrCat(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}
