package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Comercial-api/internal/domain/entity"
	"github.com/jhoicas/Comercial-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository sobre PostgreSQL
// (usable con pool o tx). Misma forma que SaleRepo: líneas en JSONB.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

const purchaseColumns = `id, supplier_id, items, total_value, affect_stock, status, date, notes, created_at, updated_at`

// Create persiste la compra con sus líneas.
func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	items, err := json.Marshal(purchase.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	query := `
		INSERT INTO purchases (id, supplier_id, items, total_value, affect_stock, status, date, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = r.q.Exec(context.Background(), query,
		purchase.ID, nullIfEmpty(purchase.SupplierID), items, purchase.TotalValue, purchase.AffectStock,
		string(purchase.Status), purchase.Date, purchase.Notes, purchase.CreatedAt, purchase.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// GetByID obtiene una compra por ID.
func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene la compra bloqueando la fila (SELECT FOR UPDATE).
func (r *PurchaseRepo) GetForUpdate(id string) (*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// Update reescribe el documento completo (líneas incluidas).
func (r *PurchaseRepo) Update(purchase *entity.Purchase) error {
	items, err := json.Marshal(purchase.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	query := `
		UPDATE purchases
		SET supplier_id = $2, items = $3, total_value = $4, date = $5, notes = $6, updated_at = $7
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		purchase.ID, nullIfEmpty(purchase.SupplierID), items, purchase.TotalValue, purchase.Date, purchase.Notes, purchase.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase: %w", err)
	}
	return nil
}

// UpdateStatus cambia sólo el estado del documento.
func (r *PurchaseRepo) UpdateStatus(id string, status entity.DocumentStatus) error {
	query := `UPDATE purchases SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, string(status), time.Now())
	if err != nil {
		return fmt.Errorf("update purchase status: %w", err)
	}
	return nil
}

// ListByPeriod compras cuyo date cae en [start, end], más recientes primero.
func (r *PurchaseRepo) ListByPeriod(start, end time.Time) ([]*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE date >= $1 AND date <= $2 ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query, start, end)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	return r.scanRows(rows)
}

// ListBySupplierIDs compras de un lote de proveedores en una sola consulta.
func (r *PurchaseRepo) ListBySupplierIDs(supplierIDs []string) ([]*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE supplier_id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, supplierIDs)
	if err != nil {
		return nil, fmt.Errorf("list purchases by suppliers: %w", err)
	}
	defer rows.Close()
	return r.scanRows(rows)
}

func (r *PurchaseRepo) scanOne(row pgx.Row) (*entity.Purchase, error) {
	var p entity.Purchase
	var supplierID *string
	var items []byte
	var status string
	err := row.Scan(&p.ID, &supplierID, &items, &p.TotalValue, &p.AffectStock, &status, &p.Date, &p.Notes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	p.SupplierID = derefStr(supplierID)
	p.Status = entity.DocumentStatus(status)
	if err := json.Unmarshal(items, &p.Items); err != nil {
		return nil, fmt.Errorf("unmarshal items: %w", err)
	}
	return &p, nil
}

func (r *PurchaseRepo) scanRows(rows pgx.Rows) ([]*entity.Purchase, error) {
	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		var supplierID *string
		var items []byte
		var status string
		if err := rows.Scan(&p.ID, &supplierID, &items, &p.TotalValue, &p.AffectStock, &status, &p.Date, &p.Notes, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		p.SupplierID = derefStr(supplierID)
		p.Status = entity.DocumentStatus(status)
		if err := json.Unmarshal(items, &p.Items); err != nil {
			return nil, fmt.Errorf("unmarshal items: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
