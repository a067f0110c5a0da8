package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Comercial-api/internal/domain"
	"github.com/jhoicas/Comercial-api/internal/domain/entity"
	"github.com/jhoicas/Comercial-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del ledger sobre PostgreSQL. Sólo
// INSERT y SELECT: el puerto no expone update ni delete y acá tampoco
// hay queries de escritura sobre filas existentes.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

const transactionColumns = `id, title, description, type, origin, value, method, date, reference_id, created_at`

// Create apendea una entrada al ledger.
func (r *TransactionRepo) Create(t *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, title, description, type, origin, value, method, date, reference_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Title, t.Description, string(t.Type), string(t.Origin),
		t.Value, string(t.Method), t.Date, nullIfEmpty(t.ReferenceID), t.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID.
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	var t entity.Transaction
	var typ, origin, method string
	var referenceID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Title, &t.Description, &typ, &origin, &t.Value, &method, &t.Date, &referenceID, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	t.Type = entity.TransactionType(typ)
	t.Origin = entity.TransactionOrigin(origin)
	t.Method = entity.PaymentMethod(method)
	t.ReferenceID = derefStr(referenceID)
	return &t, nil
}

// ListByPeriod entradas cuyo date cae en [start, end], más recientes primero.
func (r *TransactionRepo) ListByPeriod(start, end time.Time) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE date >= $1 AND date <= $2 ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query, start, end)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	return r.scanRows(rows)
}

// ListByReference entradas de un documento puntual.
func (r *TransactionRepo) ListByReference(origin entity.TransactionOrigin, referenceID string) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE origin = $1 AND reference_id = $2 ORDER BY date ASC`
	rows, err := r.q.Query(context.Background(), query, string(origin), referenceID)
	if err != nil {
		return nil, fmt.Errorf("list transactions by reference: %w", err)
	}
	defer rows.Close()
	return r.scanRows(rows)
}

// ListByReferenceIDs entradas de un lote de documentos en una sola consulta.
func (r *TransactionRepo) ListByReferenceIDs(origin entity.TransactionOrigin, referenceIDs []string) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE origin = $1 AND reference_id = ANY($2)`
	rows, err := r.q.Query(context.Background(), query, string(origin), referenceIDs)
	if err != nil {
		return nil, fmt.Errorf("list transactions by references: %w", err)
	}
	defer rows.Close()
	return r.scanRows(rows)
}

func (r *TransactionRepo) scanRows(rows pgx.Rows) ([]*entity.Transaction, error) {
	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		var typ, origin, method string
		var referenceID *string
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &typ, &origin, &t.Value, &method, &t.Date, &referenceID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.Type = entity.TransactionType(typ)
		t.Origin = entity.TransactionOrigin(origin)
		t.Method = entity.PaymentMethod(method)
		t.ReferenceID = derefStr(referenceID)
		list = append(list, &t)
	}
	return list, rows.Err()
}
