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

// SupplierUseCase CRUD de proveedores + deuda derivada de sus compras
// (lo que el negocio les debe).
type SupplierUseCase struct {
	supplierRepo    repository.SupplierRepository
	purchaseRepo    repository.PurchaseRepository
	transactionRepo repository.TransactionRepository
	log             *logger.Logger
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(
	supplierRepo repository.SupplierRepository,
	purchaseRepo repository.PurchaseRepository,
	transactionRepo repository.TransactionRepository,
	log *logger.Logger,
) *SupplierUseCase {
	return &SupplierUseCase{supplierRepo: supplierRepo, purchaseRepo: purchaseRepo, transactionRepo: transactionRepo, log: log}
}

// Create alta de proveedor, nace activo.
func (uc *SupplierUseCase) Create(_ context.Context, in dto.CreatePersonRequest) (string, error) {
	if strings.TrimSpace(in.Name) == "" {
		return "", domain.ErrValidation
	}
	now := time.Now()
	supplier := &entity.Supplier{
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
	if err := uc.supplierRepo.Create(supplier); err != nil {
		return "", err
	}
	uc.log.Info().Str("supplier_id", supplier.ID).Msg("proveedor creado")
	return supplier.ID, nil
}

// Update actualización parcial; active no se toca por aquí.
func (uc *SupplierUseCase) Update(_ context.Context, id string, in dto.UpdatePersonRequest) error {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return domain.ErrValidation
		}
		supplier.Name = *in.Name
	}
	if in.Document != nil {
		supplier.Document = *in.Document
	}
	if in.Address != nil {
		supplier.Address = *in.Address
	}
	if in.Phone != nil {
		supplier.Phone = *in.Phone
	}
	if in.Notes != nil {
		supplier.Notes = *in.Notes
	}
	supplier.UpdatedAt = time.Now()
	return uc.supplierRepo.Update(supplier)
}

// SetActive soft-delete / reactivación; el toggle redundante es error.
func (uc *SupplierUseCase) SetActive(_ context.Context, id string, active bool) error {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	if supplier.Active == active {
		return domain.ErrValidation
	}
	return uc.supplierRepo.SetActive(id, active)
}

// GetByID proveedor con deuda derivada.
func (uc *SupplierUseCase) GetByID(id string) (*dto.PersonResponse, error) {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	resp, err := uc.attachDebt([]*entity.Supplier{supplier})
	if err != nil {
		return nil, err
	}
	return &resp[0], nil
}

// List proveedores con deuda derivada y filtros.
func (uc *SupplierUseCase) List(f dto.PersonFilters) ([]dto.PersonResponse, error) {
	suppliers, err := uc.supplierRepo.List(f.Search, f.Active)
	if err != nil {
		return nil, err
	}
	resp, err := uc.attachDebt(suppliers)
	if err != nil {
		return nil, err
	}
	return filterByDebt(resp, f.MinDebt, f.MaxDebt), nil
}

func (uc *SupplierUseCase) attachDebt(suppliers []*entity.Supplier) ([]dto.PersonResponse, error) {
	ids := make([]string, 0, len(suppliers))
	for _, s := range suppliers {
		ids = append(ids, s.ID)
	}

	debtBySupplier := make(map[string]decimal.Decimal)
	if len(ids) > 0 {
		purchases, err := uc.purchaseRepo.ListBySupplierIDs(ids)
		if err != nil {
			return nil, err
		}
		var open []*entity.Purchase
		purchaseIDs := make([]string, 0, len(purchases))
		for _, p := range purchases {
			if p.Status == entity.DocumentStatusCanceled {
				continue
			}
			open = append(open, p)
			purchaseIDs = append(purchaseIDs, p.ID)
		}

		paidByPurchase := make(map[string]decimal.Decimal)
		if len(purchaseIDs) > 0 {
			payments, err := uc.transactionRepo.ListByReferenceIDs(entity.OriginPurchase, purchaseIDs)
			if err != nil {
				return nil, err
			}
			for _, t := range payments {
				if t.Type != entity.TransactionOut {
					continue
				}
				paidByPurchase[t.ReferenceID] = paidByPurchase[t.ReferenceID].Add(t.Value)
			}
		}

		for _, p := range open {
			pending := p.TotalValue.Sub(paidByPurchase[p.ID])
			debtBySupplier[p.SupplierID] = debtBySupplier[p.SupplierID].Add(pending)
		}
	}

	resp := make([]dto.PersonResponse, 0, len(suppliers))
	for _, s := range suppliers {
		debt := debtBySupplier[s.ID]
		if debt.LessThan(decimal.Zero) {
			debt = decimal.Zero
		}
		resp = append(resp, dto.PersonResponse{
			ID:        s.ID,
			Name:      s.Name,
			Document:  s.Document,
			Address:   s.Address,
			Phone:     s.Phone,
			Notes:     s.Notes,
			Active:    s.Active,
			Debt:      debt,
			CreatedAt: s.CreatedAt,
		})
	}
	return resp, nil
}
