package trade_test

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Comercial-api/internal/domain/entity"
	"github.com/jhoicas/Comercial-api/internal/domain/repository"
	"github.com/jhoicas/Comercial-api/pkg/logger"
)

func noplog() *logger.Logger { return logger.Nop() }

// Fakes en memoria para probar los motores sin DB. El fakeTxRunner
// ejecuta la función directamente con los mismos repos: la atomicidad
// real la prueba la capa postgres, acá probamos la lógica.

type fakeTxRunner struct {
	saleRepo        repository.SaleRepository
	purchaseRepo    repository.PurchaseRepository
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	repository.SaleRepository,
	repository.PurchaseRepository,
	repository.ProductRepository,
	repository.TransactionRepository,
) error) error {
	return fn(f.saleRepo, f.purchaseRepo, f.productRepo, f.transactionRepo)
}

type fakeSaleRepo struct {
	sales map[string]*entity.Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[string]*entity.Sale)}
}

func (f *fakeSaleRepo) Create(s *entity.Sale) error {
	copied := *s
	f.sales[s.ID] = &copied
	return nil
}

func (f *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, ok := f.sales[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSaleRepo) GetForUpdate(id string) (*entity.Sale, error) { return f.GetByID(id) }

func (f *fakeSaleRepo) Update(s *entity.Sale) error {
	copied := *s
	f.sales[s.ID] = &copied
	return nil
}

func (f *fakeSaleRepo) UpdateStatus(id string, status entity.DocumentStatus) error {
	f.sales[id].Status = status
	return nil
}

func (f *fakeSaleRepo) ListByPeriod(start, end time.Time) ([]*entity.Sale, error) {
	var list []*entity.Sale
	for _, s := range f.sales {
		if !start.IsZero() && s.Date.Before(start) {
			continue
		}
		if !end.IsZero() && s.Date.After(end) {
			continue
		}
		copied := *s
		list = append(list, &copied)
	}
	return list, nil
}

func (f *fakeSaleRepo) ListByClientIDs(clientIDs []string) ([]*entity.Sale, error) {
	ids := make(map[string]bool, len(clientIDs))
	for _, id := range clientIDs {
		ids[id] = true
	}
	var list []*entity.Sale
	for _, s := range f.sales {
		if ids[s.ClientID] {
			copied := *s
			list = append(list, &copied)
		}
	}
	return list, nil
}

type fakePurchaseRepo struct {
	purchases map[string]*entity.Purchase
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{purchases: make(map[string]*entity.Purchase)}
}

func (f *fakePurchaseRepo) Create(p *entity.Purchase) error {
	copied := *p
	f.purchases[p.ID] = &copied
	return nil
}

func (f *fakePurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	p, ok := f.purchases[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (f *fakePurchaseRepo) GetForUpdate(id string) (*entity.Purchase, error) { return f.GetByID(id) }

func (f *fakePurchaseRepo) Update(p *entity.Purchase) error {
	copied := *p
	f.purchases[p.ID] = &copied
	return nil
}

func (f *fakePurchaseRepo) UpdateStatus(id string, status entity.DocumentStatus) error {
	f.purchases[id].Status = status
	return nil
}

func (f *fakePurchaseRepo) ListByPeriod(start, end time.Time) ([]*entity.Purchase, error) {
	var list []*entity.Purchase
	for _, p := range f.purchases {
		if !start.IsZero() && p.Date.Before(start) {
			continue
		}
		if !end.IsZero() && p.Date.After(end) {
			continue
		}
		copied := *p
		list = append(list, &copied)
	}
	return list, nil
}

func (f *fakePurchaseRepo) ListBySupplierIDs(supplierIDs []string) ([]*entity.Purchase, error) {
	ids := make(map[string]bool, len(supplierIDs))
	for _, id := range supplierIDs {
		ids[id] = true
	}
	var list []*entity.Purchase
	for _, p := range f.purchases {
		if ids[p.SupplierID] {
			copied := *p
			list = append(list, &copied)
		}
	}
	return list, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[string]*entity.Product)
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
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

func (f *fakeProductRepo) stock(id string) int64 {
	return *f.products[id].Stock
}

type fakeTransactionRepo struct {
	entries []*entity.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo { return &fakeTransactionRepo{} }

func (f *fakeTransactionRepo) Create(t *entity.Transaction) error {
	copied := *t
	f.entries = append(f.entries, &copied)
	return nil
}

func (f *fakeTransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	for _, t := range f.entries {
		if t.ID == id {
			copied := *t
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeTransactionRepo) ListByPeriod(start, end time.Time) ([]*entity.Transaction, error) {
	var list []*entity.Transaction
	for _, t := range f.entries {
		if !start.IsZero() && t.Date.Before(start) {
			continue
		}
		if !end.IsZero() && t.Date.After(end) {
			continue
		}
		copied := *t
		list = append(list, &copied)
	}
	return list, nil
}

func (f *fakeTransactionRepo) ListByReference(origin entity.TransactionOrigin, referenceID string) ([]*entity.Transaction, error) {
	return f.ListByReferenceIDs(origin, []string{referenceID})
}

func (f *fakeTransactionRepo) ListByReferenceIDs(origin entity.TransactionOrigin, referenceIDs []string) ([]*entity.Transaction, error) {
	ids := make(map[string]bool, len(referenceIDs))
	for _, id := range referenceIDs {
		ids[id] = true
	}
	var list []*entity.Transaction
	for _, t := range f.entries {
		if t.Origin == origin && ids[t.ReferenceID] {
			copied := *t
			list = append(list, &copied)
		}
	}
	return list, nil
}

func (f *fakeTransactionRepo) byReference(origin entity.TransactionOrigin, referenceID string) []*entity.Transaction {
	list, _ := f.ListByReferenceIDs(origin, []string{referenceID})
	return list
}

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func newFakeClientRepo(clients ...*entity.Client) *fakeClientRepo {
	m := make(map[string]*entity.Client)
	for _, c := range clients {
		m[c.ID] = c
	}
	return &fakeClientRepo{clients: m}
}

func (f *fakeClientRepo) Create(c *entity.Client) error { f.clients[c.ID] = c; return nil }
func (f *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	return f.clients[id], nil
}
func (f *fakeClientRepo) Update(c *entity.Client) error { f.clients[c.ID] = c; return nil }
func (f *fakeClientRepo) SetActive(id string, active bool) error {
	f.clients[id].Active = active
	return nil
}
func (f *fakeClientRepo) List(search string, active *bool) ([]*entity.Client, error) {
	var list []*entity.Client
	for _, c := range f.clients {
		if search != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(search)) {
			continue
		}
		if active != nil && c.Active != *active {
			continue
		}
		list = append(list, c)
	}
	return list, nil
}

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func newFakeSupplierRepo(suppliers ...*entity.Supplier) *fakeSupplierRepo {
	m := make(map[string]*entity.Supplier)
	for _, s := range suppliers {
		m[s.ID] = s
	}
	return &fakeSupplierRepo{suppliers: m}
}

func (f *fakeSupplierRepo) Create(s *entity.Supplier) error { f.suppliers[s.ID] = s; return nil }
func (f *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return f.suppliers[id], nil
}
func (f *fakeSupplierRepo) Update(s *entity.Supplier) error { f.suppliers[s.ID] = s; return nil }
func (f *fakeSupplierRepo) SetActive(id string, active bool) error {
	f.suppliers[id].Active = active
	return nil
}
func (f *fakeSupplierRepo) List(search string, active *bool) ([]*entity.Supplier, error) {
	var list []*entity.Supplier
	for _, s := range f.suppliers {
		if search != "" && !strings.Contains(strings.ToLower(s.Name), strings.ToLower(search)) {
			continue
		}
		if active != nil && s.Active != *active {
			continue
		}
		list = append(list, s)
	}
	return list, nil
}

type fakeServiceRepo struct {
	services map[string]*entity.Service
}

func newFakeServiceRepo(services ...*entity.Service) *fakeServiceRepo {
	m := make(map[string]*entity.Service)
	for _, s := range services {
		m[s.ID] = s
	}
	return &fakeServiceRepo{services: m}
}

func (f *fakeServiceRepo) Create(s *entity.Service) error { f.services[s.ID] = s; return nil }
func (f *fakeServiceRepo) GetByID(id string) (*entity.Service, error) {
	return f.services[id], nil
}
func (f *fakeServiceRepo) Update(s *entity.Service) error { f.services[s.ID] = s; return nil }
func (f *fakeServiceRepo) SetActive(id string, active bool) error {
	f.services[id].Active = active
	return nil
}
func (f *fakeServiceRepo) List(search string, active *bool) ([]*entity.Service, error) {
	var list []*entity.Service
	for _, s := range f.services {
		if search != "" && !strings.Contains(strings.ToLower(s.Name), strings.ToLower(search)) {
			continue
		}
		if active != nil && s.Active != *active {
			continue
		}
		list = append(list, s)
	}
	return list, nil
}
