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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con
// pool o tx). Las líneas se guardan como JSONB en la misma fila: el
// documento se lee y escribe completo, nunca línea por línea.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, client_id, items, total_value, affect_stock, status, date, notes, created_at, updated_at`

// Create persiste la venta con sus líneas.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	items, err := json.Marshal(sale.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	query := `
		INSERT INTO sales (id, client_id, items, total_value, affect_stock, status, date, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = r.q.Exec(context.Background(), query,
		sale.ID, nullIfEmpty(sale.ClientID), items, sale.TotalValue, sale.AffectStock,
		string(sale.Status), sale.Date, sale.Notes, sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene la venta bloqueando la fila (SELECT FOR UPDATE).
func (r *SaleRepo) GetForUpdate(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// Update reescribe el documento completo (líneas incluidas).
func (r *SaleRepo) Update(sale *entity.Sale) error {
	items, err := json.Marshal(sale.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	query := `
		UPDATE sales
		SET client_id = $2, items = $3, total_value = $4, date = $5, notes = $6, updated_at = $7
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		sale.ID, nullIfEmpty(sale.ClientID), items, sale.TotalValue, sale.Date, sale.Notes, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// UpdateStatus cambia sólo el estado del documento.
func (r *SaleRepo) UpdateStatus(id string, status entity.DocumentStatus) error {
	query := `UPDATE sales SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, string(status), time.Now())
	if err != nil {
		return fmt.Errorf("update sale status: %w", err)
	}
	return nil
}

// ListByPeriod ventas cuyo date cae en [start, end], más recientes primero.
func (r *SaleRepo) ListByPeriod(start, end time.Time) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE date >= $1 AND date <= $2 ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query, start, end)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	return r.scanRows(rows)
}

// ListByClientIDs ventas de un lote de clientes en una sola consulta.
func (r *SaleRepo) ListByClientIDs(clientIDs []string) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE client_id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, clientIDs)
	if err != nil {
		return nil, fmt.Errorf("list sales by clients: %w", err)
	}
	defer rows.Close()
	return r.scanRows(rows)
}

func (r *SaleRepo) scanOne(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var clientID *string
	var items []byte
	var status string
	err := row.Scan(&s.ID, &clientID, &items, &s.TotalValue, &s.AffectStock, &status, &s.Date, &s.Notes, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	s.ClientID = derefStr(clientID)
	s.Status = entity.DocumentStatus(status)
	if err := json.Unmarshal(items, &s.Items); err != nil {
		return nil, fmt.Errorf("unmarshal items: %w", err)
	}
	return &s, nil
}

func (r *SaleRepo) scanRows(rows pgx.Rows) ([]*entity.Sale, error) {
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		var clientID *string
		var items []byte
		var status string
		if err := rows.Scan(&s.ID, &clientID, &items, &s.TotalValue, &s.AffectStock, &status, &s.Date, &s.Notes, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		s.ClientID = derefStr(clientID)
		s.Status = entity.DocumentStatus(status)
		if err := json.Unmarshal(items, &s.Items); err != nil {
			return nil, fmt.Errorf("unmarshal items: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
