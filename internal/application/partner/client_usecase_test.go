package partner_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comercial-api/internal/application/dto"
	"github.com/jhoicas/Comercial-api/internal/application/partner"
	"github.com/jhoicas/Comercial-api/internal/domain"
	"github.com/jhoicas/Comercial-api/internal/domain/entity"
	"github.com/jhoicas/Comercial-api/pkg/logger"
)

type fakeClientRepo struct {
	clients map[string]*entity.Client
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

type fakeSaleRepo struct {
	sales []*entity.Sale
}

func (f *fakeSaleRepo) Create(s *entity.Sale) error                   { f.sales = append(f.sales, s); return nil }
func (f *fakeSaleRepo) GetByID(string) (*entity.Sale, error)          { return nil, nil }
func (f *fakeSaleRepo) GetForUpdate(string) (*entity.Sale, error)     { return nil, nil }
func (f *fakeSaleRepo) Update(*entity.Sale) error                     { return nil }
func (f *fakeSaleRepo) UpdateStatus(string, entity.DocumentStatus) error { return nil }
func (f *fakeSaleRepo) ListByPeriod(time.Time, time.Time) ([]*entity.Sale, error) {
	return f.sales, nil
}
func (f *fakeSaleRepo) ListByClientIDs(clientIDs []string) ([]*entity.Sale, error) {
	ids := make(map[string]bool, len(clientIDs))
	for _, id := range clientIDs {
		ids[id] = true
	}
	var list []*entity.Sale
	for _, s := range f.sales {
		if ids[s.ClientID] {
			list = append(list, s)
		}
	}
	return list, nil
}

type fakeLedger struct {
	entries []*entity.Transaction
}

func (f *fakeLedger) Create(t *entity.Transaction) error { f.entries = append(f.entries, t); return nil }
func (f *fakeLedger) GetByID(string) (*entity.Transaction, error) { return nil, nil }
func (f *fakeLedger) ListByPeriod(time.Time, time.Time) ([]*entity.Transaction, error) {
	return f.entries, nil
}
func (f *fakeLedger) ListByReference(origin entity.TransactionOrigin, referenceID string) ([]*entity.Transaction, error) {
	return f.ListByReferenceIDs(origin, []string{referenceID})
}
func (f *fakeLedger) ListByReferenceIDs(origin entity.TransactionOrigin, referenceIDs []string) ([]*entity.Transaction, error) {
	ids := make(map[string]bool, len(referenceIDs))
	for _, id := range referenceIDs {
		ids[id] = true
	}
	var list []*entity.Transaction
	for _, t := range f.entries {
		if t.Origin == origin && ids[t.ReferenceID] {
			list = append(list, t)
		}
	}
	return list, nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type clientFixture struct {
	uc      *partner.ClientUseCase
	clients *fakeClientRepo
	sales   *fakeSaleRepo
	ledger  *fakeLedger
}

func newClientFixture() *clientFixture {
	clients := &fakeClientRepo{clients: make(map[string]*entity.Client)}
	sales := &fakeSaleRepo{}
	ledger := &fakeLedger{}
	return &clientFixture{
		uc:      partner.NewClientUseCase(clients, sales, ledger, logger.Nop()),
		clients: clients,
		sales:   sales,
		ledger:  ledger,
	}
}

func (f *clientFixture) addSale(id, clientID string, total string, status entity.DocumentStatus) {
	f.sales.Create(&entity.Sale{ID: id, ClientID: clientID, TotalValue: dec(total), Status: status})
}

func (f *clientFixture) addPayment(saleID, value string) {
	f.ledger.Create(&entity.Transaction{
		ID: "pago-" + saleID + "-" + value, Title: "Venta #" + saleID,
		Type: entity.TransactionIn, Origin: entity.OriginSale,
		Value: dec(value), Method: entity.MethodPix, Date: time.Now(), ReferenceID: saleID,
	})
}

func TestClientCreate_NombreObligatorio(t *testing.T) {
	f := newClientFixture()

	_, err := f.uc.Create(context.Background(), dto.CreatePersonRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrValidation)

	id, err := f.uc.Create(context.Background(), dto.CreatePersonRequest{Name: "María Gómez", Phone: "555-0101"})
	require.NoError(t, err)
	assert.True(t, f.clients.clients[id].Active, "nace activo")
}

func TestClientSetActive_ToggleRedundanteEsError(t *testing.T) {
	f := newClientFixture()
	id, err := f.uc.Create(context.Background(), dto.CreatePersonRequest{Name: "María"})
	require.NoError(t, err)

	assert.ErrorIs(t, f.uc.SetActive(context.Background(), id, true), domain.ErrValidation, "ya está activo")
	require.NoError(t, f.uc.SetActive(context.Background(), id, false))
	assert.False(t, f.clients.clients[id].Active)
	require.NoError(t, f.uc.SetActive(context.Background(), id, true))
}

func TestClientGetByID_DeudaDerivada(t *testing.T) {
	f := newClientFixture()
	id, err := f.uc.Create(context.Background(), dto.CreatePersonRequest{Name: "María"})
	require.NoError(t, err)

	// Venta de 100 con 40 pagados + venta cancelada que no cuenta.
	f.addSale("v1", id, "100", entity.DocumentStatusOpen)
	f.addPayment("v1", "40")
	f.addSale("v2", id, "500", entity.DocumentStatusCanceled)

	resp, err := f.uc.GetByID(id)
	require.NoError(t, err)
	assert.True(t, resp.Debt.Equal(dec("60")), "deuda = total no cancelado - pagado")
}

func TestClientGetByID_SobrepagoNoDaDeudaNegativa(t *testing.T) {
	f := newClientFixture()
	id, err := f.uc.Create(context.Background(), dto.CreatePersonRequest{Name: "María"})
	require.NoError(t, err)

	f.addSale("v1", id, "100", entity.DocumentStatusClosed)
	f.addPayment("v1", "150")

	resp, err := f.uc.GetByID(id)
	require.NoError(t, err)
	assert.True(t, resp.Debt.IsZero())
}

func TestClientList_FiltroPorDeuda(t *testing.T) {
	f := newClientFixture()
	deudor, err := f.uc.Create(context.Background(), dto.CreatePersonRequest{Name: "Deudor"})
	require.NoError(t, err)
	_, err = f.uc.Create(context.Background(), dto.CreatePersonRequest{Name: "Al día"})
	require.NoError(t, err)

	f.addSale("v1", deudor, "300", entity.DocumentStatusOpen)

	min := dec("100")
	resp, err := f.uc.List(dto.PersonFilters{MinDebt: &min})
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, deudor, resp[0].ID)
	assert.True(t, resp[0].Debt.Equal(dec("300")))
}

func TestClientUpdate_ParcialYNoExiste(t *testing.T) {
	f := newClientFixture()
	id, err := f.uc.Create(context.Background(), dto.CreatePersonRequest{Name: "María", Phone: "555-0101"})
	require.NoError(t, err)

	phone := "555-0202"
	require.NoError(t, f.uc.Update(context.Background(), id, dto.UpdatePersonRequest{Phone: &phone}))
	assert.Equal(t, "555-0202", f.clients.clients[id].Phone)
	assert.Equal(t, "María", f.clients.clients[id].Name, "los campos no enviados no cambian")

	err = f.uc.Update(context.Background(), "no-existe", dto.UpdatePersonRequest{Phone: &phone})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
