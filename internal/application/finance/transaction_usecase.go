// Package finance expone el ledger financiero: movimientos manuales,
// consulta con filtros y flujo de caja derivado del período.
package finance

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comercial-api/internal/application/dto"
	"github.com/jhoicas/Comercial-api/internal/domain"
	"github.com/jhoicas/Comercial-api/internal/domain/entity"
	"github.com/jhoicas/Comercial-api/internal/domain/repository"
	"github.com/jhoicas/Comercial-api/internal/domain/rules"
	"github.com/jhoicas/Comercial-api/pkg/logger"
)

// TransactionUseCase operaciones sobre el ledger. Las entradas ligadas a
// documentos las crea el motor de ventas/compras; por aquí sólo entran
// movimientos manuales. El ledger es append-only: no hay update ni delete.
type TransactionUseCase struct {
	transactionRepo repository.TransactionRepository
	log             *logger.Logger
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(transactionRepo repository.TransactionRepository, log *logger.Logger) *TransactionUseCase {
	return &TransactionUseCase{transactionRepo: transactionRepo, log: log}
}

// CreateManual apendea un movimiento manual. Origin se fuerza a manual y
// sin referencia, sin importar lo que envíe el caller.
func (uc *TransactionUseCase) CreateManual(_ context.Context, in dto.CreateTransactionRequest) (string, error) {
	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}

	t := &entity.Transaction{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Type:        entity.TransactionType(in.Type),
		Origin:      entity.OriginManual,
		Value:       in.Value,
		Method:      entity.PaymentMethod(in.Method),
		Date:        date,
		ReferenceID: "",
		CreatedAt:   now,
	}
	if t.Type != entity.TransactionIn && t.Type != entity.TransactionOut {
		return "", domain.ErrValidation
	}
	if err := rules.ValidateTransaction(t, now); err != nil {
		return "", err
	}
	if err := uc.transactionRepo.Create(t); err != nil {
		return "", err
	}

	uc.log.Info().Str("transaction_id", t.ID).Str("type", string(t.Type)).Str("value", t.Value.String()).Msg("movimiento manual registrado")
	return t.ID, nil
}

// GetByID entrada puntual del ledger.
func (uc *TransactionUseCase) GetByID(id string) (*dto.TransactionResponse, error) {
	t, err := uc.transactionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	resp := toTransactionResponse(t)
	return &resp, nil
}

// List entradas del período con filtros en memoria sobre el resultado.
func (uc *TransactionUseCase) List(f dto.TransactionFilters) ([]dto.TransactionResponse, error) {
	entries, err := uc.transactionRepo.ListByPeriod(f.Start, f.End)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.TransactionResponse, 0, len(entries))
	for _, t := range entries {
		if f.Origin != "" && string(t.Origin) != f.Origin {
			continue
		}
		if f.Type != "" && string(t.Type) != f.Type {
			continue
		}
		if f.MinValue != nil && t.Value.LessThan(*f.MinValue) {
			continue
		}
		if f.MaxValue != nil && t.Value.GreaterThan(*f.MaxValue) {
			continue
		}
		if f.Text != "" && !matchesText(t, f.Text) {
			continue
		}
		resp = append(resp, toTransactionResponse(t))
	}
	return resp, nil
}

// CashFlow flujo de caja del período: Σ in, Σ out y balance. Derivado de
// las entradas, nunca persistido; los estornos entran como cualquier otra
// entrada y el neto queda en cero solo.
func (uc *TransactionUseCase) CashFlow(start, end time.Time) (*dto.CashFlowResponse, error) {
	entries, err := uc.transactionRepo.ListByPeriod(start, end)
	if err != nil {
		return nil, err
	}

	in, out := decimal.Zero, decimal.Zero
	for _, t := range entries {
		switch t.Type {
		case entity.TransactionIn:
			in = in.Add(t.Value)
		case entity.TransactionOut:
			out = out.Add(t.Value)
		}
	}
	return &dto.CashFlowResponse{In: in, Out: out, Balance: in.Sub(out)}, nil
}

func matchesText(t *entity.Transaction, text string) bool {
	needle := strings.ToLower(text)
	return strings.Contains(strings.ToLower(t.Title), needle) ||
		strings.Contains(strings.ToLower(t.Description), needle)
}

func toTransactionResponse(t *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Type:        string(t.Type),
		Origin:      string(t.Origin),
		Value:       t.Value,
		Method:      string(t.Method),
		Date:        t.Date,
		ReferenceID: t.ReferenceID,
	}
}
