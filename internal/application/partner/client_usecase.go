// Package partner administra clientes y proveedores, con la deuda
// derivada de documentos no cancelados menos lo pagado en el ledger.
package partner

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comercial-api/internal/application/dto"
	"github.com/jhoicas/Comercial-api/internal/domain"
	"github.com/jhoicas/Comercial-api/internal/domain/entity"
	"github.com/jhoicas/Comercial-api/internal/domain/repository"
	"github.com/jhoicas/Comercial-api/pkg/logger"
)

// ClientUseCase CRUD de clientes + deuda derivada de sus ventas.
type ClientUseCase struct {
	clientRepo      repository.ClientRepository
	saleRepo        repository.SaleRepository
	transactionRepo repository.TransactionRepository
	log             *logger.Logger
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(
	clientRepo repository.ClientRepository,
	saleRepo repository.SaleRepository,
	transactionRepo repository.TransactionRepository,
	log *logger.Logger,
) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo, saleRepo: saleRepo, transactionRepo: transactionRepo, log: log}
}

// Create alta de cliente, nace activo.
func (uc *ClientUseCase) Create(_ context.Context, in dto.CreatePersonRequest) (string, error) {
	if strings.TrimSpace(in.Name) == "" {
		return "", domain.ErrValidation
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Document:  in.Document,
		Address:   in.Address,
		Phone:     in.Phone,
		Notes:     in.Notes,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.clientRepo.Create(client); err != nil {
		return "", err
	}
	uc.log.Info().Str("client_id", client.ID).Msg("cliente creado")
	return client.ID, nil
}

// Update actualización parcial; active no se toca por aquí.
func (uc *ClientUseCase) Update(_ context.Context, id string, in dto.UpdatePersonRequest) error {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return domain.ErrValidation
		}
		client.Name = *in.Name
	}
	if in.Document != nil {
		client.Document = *in.Document
	}
	if in.Address != nil {
		client.Address = *in.Address
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.Notes != nil {
		client.Notes = *in.Notes
	}
	client.UpdatedAt = time.Now()
	return uc.clientRepo.Update(client)
}

// SetActive soft-delete / reactivación. Pedir el estado que ya tiene es
// un error, no un no-op silencioso.
func (uc *ClientUseCase) SetActive(_ context.Context, id string, active bool) error {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	if client.Active == active {
		return domain.ErrValidation
	}
	return uc.clientRepo.SetActive(id, active)
}

// GetByID cliente con deuda derivada.
func (uc *ClientUseCase) GetByID(id string) (*dto.PersonResponse, error) {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	resp, err := uc.attachDebt([]*entity.Client{client})
	if err != nil {
		return nil, err
	}
	return &resp[0], nil
}

// List clientes con deuda derivada y filtros.
func (uc *ClientUseCase) List(f dto.PersonFilters) ([]dto.PersonResponse, error) {
	clients, err := uc.clientRepo.List(f.Search, f.Active)
	if err != nil {
		return nil, err
	}
	resp, err := uc.attachDebt(clients)
	if err != nil {
		return nil, err
	}
	return filterByDebt(resp, f.MinDebt, f.MaxDebt), nil
}

// attachDebt deuda del lote completo con dos consultas: ventas de todos
// los clientes y pagos de todas esas ventas (sin N+1).
// deuda = max(Σ totales no cancelados − Σ pagado, 0).
func (uc *ClientUseCase) attachDebt(clients []*entity.Client) ([]dto.PersonResponse, error) {
	ids := make([]string, 0, len(clients))
	for _, c := range clients {
		ids = append(ids, c.ID)
	}

	debtByClient := make(map[string]decimal.Decimal)
	if len(ids) > 0 {
		sales, err := uc.saleRepo.ListByClientIDs(ids)
		if err != nil {
			return nil, err
		}
		var open []*entity.Sale
		saleIDs := make([]string, 0, len(sales))
		for _, s := range sales {
			if s.Status == entity.DocumentStatusCanceled {
				continue
			}
			open = append(open, s)
			saleIDs = append(saleIDs, s.ID)
		}

		paidBySale := make(map[string]decimal.Decimal)
		if len(saleIDs) > 0 {
			payments, err := uc.transactionRepo.ListByReferenceIDs(entity.OriginSale, saleIDs)
			if err != nil {
				return nil, err
			}
			for _, t := range payments {
				if t.Type != entity.TransactionIn {
					continue
				}
				paidBySale[t.ReferenceID] = paidBySale[t.ReferenceID].Add(t.Value)
			}
		}

		for _, s := range open {
			pending := s.TotalValue.Sub(paidBySale[s.ID])
			debtByClient[s.ClientID] = debtByClient[s.ClientID].Add(pending)
		}
	}

	resp := make([]dto.PersonResponse, 0, len(clients))
	for _, c := range clients {
		debt := debtByClient[c.ID]
		if debt.LessThan(decimal.Zero) {
			debt = decimal.Zero
		}
		resp = append(resp, dto.PersonResponse{
			ID:        c.ID,
			Name:      c.Name,
			Document:  c.Document,
			Address:   c.Address,
			Phone:     c.Phone,
			Notes:     c.Notes,
			Active:    c.Active,
			Debt:      debt,
			CreatedAt: c.CreatedAt,
		})
	}
	return resp, nil
}

func filterByDebt(people []dto.PersonResponse, min, max *decimal.Decimal) []dto.PersonResponse {
	if min == nil && max == nil {
		return people
	}
	filtered := people[:0]
	for _, p := range people {
		if min != nil && p.Debt.LessThan(*min) {
			continue
		}
		if max != nil && p.Debt.GreaterThan(*max) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}
