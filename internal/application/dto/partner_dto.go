package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePersonRequest alta de cliente o proveedor.
type CreatePersonRequest struct {
	Name     string `json:"name"`
	Document string `json:"document,omitempty"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// UpdatePersonRequest actualización parcial; id, active y createdAt son
// inmutables por construcción (no están en el DTO).
type UpdatePersonRequest struct {
	Name     *string `json:"name,omitempty"`
	Document *string `json:"document,omitempty"`
	Address  *string `json:"address,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// SetActiveRequest toggle de soft-delete.
type SetActiveRequest struct {
	Active bool `json:"active"`
}

// PersonFilters filtros de listado; MinDebt/MaxDebt se aplican sobre la
// deuda derivada, en memoria.
type PersonFilters struct {
	Search  string
	Active  *bool
	MinDebt *decimal.Decimal
	MaxDebt *decimal.Decimal
}

// PersonResponse cliente o proveedor con su deuda derivada:
// max(Σ totalValue de documentos no cancelados − Σ pagado, 0).
type PersonResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Document  string          `json:"document,omitempty"`
	Address   string          `json:"address,omitempty"`
	Phone     string          `json:"phone,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	Active    bool            `json:"active"`
	Debt      decimal.Decimal `json:"debt"`
	CreatedAt time.Time       `json:"created_at"`
}
