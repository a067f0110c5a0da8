package entity

import "time"

// Client y Supplier comparten la misma estructura (persona comercial).
// Active es soft-delete: inactivo no puede usarse en documentos nuevos
// pero se conserva en las lecturas históricas.

// Client cliente de ventas.
type Client struct {
	ID        string
	Name      string
	Document  string
	Address   string
	Phone     string
	Notes     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Supplier proveedor de compras.
type Supplier struct {
	ID        string
	Name      string
	Document  string
	Address   string
	Phone     string
	Notes     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
