package entity

import "github.com/shopspring/decimal"

// ItemType discrimina el ítem comercial: producto o servicio.
type ItemType string

const (
	ItemTypeProduct ItemType = "product"
	ItemTypeService ItemType = "service"
)

// ComercialItem es una línea dentro de una venta o compra.
// Name se denormaliza desde el producto/servicio referenciado para
// mostrar el documento sin joins. Inmutable cuando el documento
// pasa a closed/canceled.
type ComercialItem struct {
	ID          string          `json:"id"`
	Type        ItemType        `json:"type"`
	ReferenceID string          `json:"reference_id"` // Product.ID o Service.ID según Type
	Name        string          `json:"name"`
	Quantity    int64           `json:"quantity"`   // entero >= 1
	UnitValue   decimal.Decimal `json:"unit_value"` // >= 0
}
