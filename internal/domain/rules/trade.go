package rules

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comercial-api/internal/domain"
	"github.com/jhoicas/Comercial-api/internal/domain/entity"
)

// CalculateItemsTotal total por defecto de un documento: Σ quantity * unitValue.
func CalculateItemsTotal(items []entity.ComercialItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.UnitValue.Mul(decimal.NewFromInt(item.Quantity)))
	}
	return total
}

// ValidateItems aplica las reglas puras sobre las líneas de un documento:
// cantidad >= 1, valor unitario >= 0, sin referencias repetidas por tipo.
// allowServices es false para compras (sólo admiten productos).
func ValidateItems(items []entity.ComercialItem, allowServices bool) error {
	seenProducts := make(map[string]bool)
	seenServices := make(map[string]bool)
	for _, item := range items {
		if item.Quantity < 1 {
			return domain.ErrValidation // la cantidad debe ser al menos 1
		}
		if item.UnitValue.LessThan(decimal.Zero) {
			return domain.ErrValidation // el valor unitario no puede ser negativo
		}
		switch item.Type {
		case entity.ItemTypeProduct:
			if seenProducts[item.ReferenceID] {
				return domain.ErrValidation // mismo producto más de una vez
			}
			seenProducts[item.ReferenceID] = true
		case entity.ItemTypeService:
			if !allowServices {
				return domain.ErrValidation // las compras no admiten servicios
			}
			if seenServices[item.ReferenceID] {
				return domain.ErrValidation // mismo servicio más de una vez
			}
			seenServices[item.ReferenceID] = true
		default:
			return domain.ErrValidation
		}
	}
	return nil
}

// ValidateDocumentTotal el total manual (override) no puede ser negativo.
func ValidateDocumentTotal(total decimal.Decimal) error {
	if total.LessThan(decimal.Zero) {
		return domain.ErrValidation
	}
	return nil
}
