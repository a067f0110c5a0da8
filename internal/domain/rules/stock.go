package rules

import "github.com/jhoicas/Comercial-api/internal/domain/entity"

// StockChange delta de stock con signo para un producto.
// Negativo = consumo (venta), positivo = recepción (compra).
type StockChange struct {
	ProductID string
	Quantity  int64
}

// ProductChanges deltas por cada línea de producto del documento,
// multiplicados por sign (-1 venta, +1 compra).
func ProductChanges(items []entity.ComercialItem, sign int64) []StockChange {
	var changes []StockChange
	for _, item := range items {
		if item.Type != entity.ItemTypeProduct {
			continue
		}
		changes = append(changes, StockChange{ProductID: item.ReferenceID, Quantity: sign * item.Quantity})
	}
	return changes
}

// ProductQuantityDiff diff de cantidades por producto entre la lista de
// ítems anterior y la nueva (newQty - oldQty). El caso de uso aplica el
// signo según el tipo de documento: una venta consume el diff, una
// compra lo recibe. Sólo cuenta líneas de tipo producto.
func ProductQuantityDiff(oldItems, newItems []entity.ComercialItem) []StockChange {
	oldQty := make(map[string]int64)
	newQty := make(map[string]int64)
	var order []string
	seen := make(map[string]bool)

	for _, item := range oldItems {
		if item.Type != entity.ItemTypeProduct {
			continue
		}
		oldQty[item.ReferenceID] += item.Quantity
		if !seen[item.ReferenceID] {
			seen[item.ReferenceID] = true
			order = append(order, item.ReferenceID)
		}
	}
	for _, item := range newItems {
		if item.Type != entity.ItemTypeProduct {
			continue
		}
		newQty[item.ReferenceID] += item.Quantity
		if !seen[item.ReferenceID] {
			seen[item.ReferenceID] = true
			order = append(order, item.ReferenceID)
		}
	}

	var changes []StockChange
	for _, id := range order {
		diff := newQty[id] - oldQty[id]
		if diff != 0 {
			changes = append(changes, StockChange{ProductID: id, Quantity: diff})
		}
	}
	return changes
}

// InvertChanges deltas inversos, para revertir en una cancelación
// exactamente lo aplicado al crear o editar.
func InvertChanges(changes []StockChange) []StockChange {
	inverted := make([]StockChange, len(changes))
	for i, c := range changes {
		inverted[i] = StockChange{ProductID: c.ProductID, Quantity: -c.Quantity}
	}
	return inverted
}
