package rules

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comercial-api/internal/domain"
	"github.com/jhoicas/Comercial-api/internal/domain/entity"
)

// ValidateTransaction reglas de una entrada del ledger antes de persistir:
// título no vacío, valor > 0, fecha no futura y coherencia origen/referencia
// (manual sin referencia; sale→in y purchase→out con referencia).
func ValidateTransaction(t *entity.Transaction, now time.Time) error {
	if strings.TrimSpace(t.Title) == "" {
		return domain.ErrValidation
	}
	if !t.Value.GreaterThan(decimal.Zero) {
		return domain.ErrValidation
	}
	if t.Date.After(now) {
		return domain.ErrFutureDate
	}
	switch t.Origin {
	case entity.OriginManual:
		if t.ReferenceID != "" {
			return domain.ErrValidation
		}
	case entity.OriginSale:
		if t.ReferenceID == "" || t.Type != entity.TransactionIn {
			return domain.ErrValidation
		}
	case entity.OriginPurchase:
		if t.ReferenceID == "" || t.Type != entity.TransactionOut {
			return domain.ErrValidation
		}
	default:
		return domain.ErrValidation
	}
	return nil
}
