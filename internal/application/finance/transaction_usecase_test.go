package finance_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comercial-api/internal/application/dto"
	"github.com/jhoicas/Comercial-api/internal/application/finance"
	"github.com/jhoicas/Comercial-api/internal/domain"
	"github.com/jhoicas/Comercial-api/internal/domain/entity"
	"github.com/jhoicas/Comercial-api/pkg/logger"
)

type fakeLedger struct {
	entries []*entity.Transaction
}

func (f *fakeLedger) Create(t *entity.Transaction) error {
	copied := *t
	f.entries = append(f.entries, &copied)
	return nil
}

func (f *fakeLedger) GetByID(id string) (*entity.Transaction, error) {
	for _, t := range f.entries {
		if t.ID == id {
			copied := *t
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeLedger) ListByPeriod(start, end time.Time) ([]*entity.Transaction, error) {
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
			copied := *t
			list = append(list, &copied)
		}
	}
	return list, nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newUseCase() (*finance.TransactionUseCase, *fakeLedger) {
	ledger := &fakeLedger{}
	return finance.NewTransactionUseCase(ledger, logger.Nop()), ledger
}

func TestCreateManual_FuerzaOrigenManualSinReferencia(t *testing.T) {
	uc, ledger := newUseCase()

	id, err := uc.CreateManual(context.Background(), dto.CreateTransactionRequest{
		Title:  "Alquiler del local",
		Type:   "out",
		Value:  dec("1200"),
		Method: "ted",
	})
	require.NoError(t, err)

	require.Len(t, ledger.entries, 1)
	entry := ledger.entries[0]
	assert.Equal(t, id, entry.ID)
	assert.Equal(t, entity.OriginManual, entry.Origin)
	assert.Empty(t, entry.ReferenceID)
	assert.Equal(t, entity.TransactionOut, entry.Type)
}

func TestCreateManual_Validaciones(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	_, err := uc.CreateManual(ctx, dto.CreateTransactionRequest{Title: "  ", Type: "in", Value: dec("10"), Method: "cash"})
	assert.ErrorIs(t, err, domain.ErrValidation, "título vacío")

	_, err = uc.CreateManual(ctx, dto.CreateTransactionRequest{Title: "Venta suelta", Type: "in", Value: dec("0"), Method: "cash"})
	assert.ErrorIs(t, err, domain.ErrValidation, "el valor debe ser > 0")

	_, err = uc.CreateManual(ctx, dto.CreateTransactionRequest{Title: "Tipo raro", Type: "transfer", Value: dec("10"), Method: "cash"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	future := time.Now().Add(24 * time.Hour)
	_, err = uc.CreateManual(ctx, dto.CreateTransactionRequest{Title: "Adelantado", Type: "in", Value: dec("10"), Method: "cash", Date: &future})
	assert.ErrorIs(t, err, domain.ErrFutureDate)
}

func TestList_FiltrosSobreElPeriodo(t *testing.T) {
	uc, ledger := newUseCase()
	now := time.Now()

	ledger.Create(&entity.Transaction{ID: "t1", Title: "Venta mostrador", Type: entity.TransactionIn, Origin: entity.OriginManual, Value: dec("100"), Method: entity.MethodCash, Date: now.Add(-2 * time.Hour)})
	ledger.Create(&entity.Transaction{ID: "t2", Title: "Compra insumos", Type: entity.TransactionOut, Origin: entity.OriginPurchase, Value: dec("40"), Method: entity.MethodPix, Date: now.Add(-1 * time.Hour), ReferenceID: "compra-1"})
	ledger.Create(&entity.Transaction{ID: "t3", Title: "Vieja", Type: entity.TransactionIn, Origin: entity.OriginManual, Value: dec("5"), Method: entity.MethodCash, Date: now.Add(-72 * time.Hour)})

	period := dto.TransactionFilters{Start: now.Add(-24 * time.Hour), End: now}

	all, err := uc.List(period)
	require.NoError(t, err)
	assert.Len(t, all, 2, "t3 queda fuera del período")

	period.Type = "out"
	salidas, err := uc.List(period)
	require.NoError(t, err)
	require.Len(t, salidas, 1)
	assert.Equal(t, "t2", salidas[0].ID)

	period.Type = ""
	period.Text = "mostrador"
	porTexto, err := uc.List(period)
	require.NoError(t, err)
	require.Len(t, porTexto, 1)
	assert.Equal(t, "t1", porTexto[0].ID)

	period.Text = ""
	min := dec("50")
	period.MinValue = &min
	grandes, err := uc.List(period)
	require.NoError(t, err)
	require.Len(t, grandes, 1)
	assert.Equal(t, "t1", grandes[0].ID)
}

func TestCashFlow_SumaPorTipoYBalance(t *testing.T) {
	uc, ledger := newUseCase()
	now := time.Now()

	ledger.Create(&entity.Transaction{ID: "t1", Title: "Ingreso", Type: entity.TransactionIn, Origin: entity.OriginManual, Value: dec("150"), Method: entity.MethodCash, Date: now})
	ledger.Create(&entity.Transaction{ID: "t2", Title: "Ingreso 2", Type: entity.TransactionIn, Origin: entity.OriginSale, Value: dec("50"), Method: entity.MethodPix, Date: now, ReferenceID: "venta-1"})
	ledger.Create(&entity.Transaction{ID: "t3", Title: "Egreso", Type: entity.TransactionOut, Origin: entity.OriginManual, Value: dec("80"), Method: entity.MethodTed, Date: now})

	flow, err := uc.CashFlow(now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, flow.In.Equal(dec("200")))
	assert.True(t, flow.Out.Equal(dec("80")))
	assert.True(t, flow.Balance.Equal(dec("120")))
}

func TestCashFlow_EstornoNetea(t *testing.T) {
	// Pago de venta + estorno por cancelación: el neto del período es cero
	// sin tocar las entradas originales.
	uc, ledger := newUseCase()
	now := time.Now()

	ledger.Create(&entity.Transaction{ID: "t1", Title: "Venta #v1", Type: entity.TransactionIn, Origin: entity.OriginSale, Value: dec("100"), Method: entity.MethodPix, Date: now, ReferenceID: "v1"})
	ledger.Create(&entity.Transaction{ID: "t2", Title: "Estorno de la venta #v1", Type: entity.TransactionOut, Origin: entity.OriginSale, Value: dec("100"), Method: entity.MethodPix, Date: now, ReferenceID: "v1"})

	flow, err := uc.CashFlow(now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, flow.Balance.IsZero())
}

func TestGetByID_NoExiste(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.GetByID("nada")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
