// Package rules contiene las reglas puras del dominio comercial:
// totales, estado de pago, deltas de stock y predicados de transición.
// Es la única fuente de verdad de esta aritmética; los casos de uso
// llaman aquí en lugar de recalcular en línea.
package rules

import "github.com/shopspring/decimal"

// Sum suma una lista de valores monetarios.
func Sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// IsPositive indica si un valor es estrictamente mayor que cero.
func IsPositive(v decimal.Decimal) bool {
	return v.GreaterThan(decimal.Zero)
}
