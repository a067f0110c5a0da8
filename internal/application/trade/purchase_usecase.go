package trade

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comercial-api/internal/application/dto"
	"github.com/jhoicas/Comercial-api/internal/application/inventory"
	"github.com/jhoicas/Comercial-api/internal/domain"
	"github.com/jhoicas/Comercial-api/internal/domain/entity"
	"github.com/jhoicas/Comercial-api/internal/domain/repository"
	"github.com/jhoicas/Comercial-api/internal/domain/rules"
	"github.com/jhoicas/Comercial-api/pkg/logger"
)

// PurchaseUseCase motor del ciclo de vida de compras. Misma máquina de
// estados que las ventas, con el stock en sentido inverso (la compra
// recibe mercadería) y pagos de egreso. Los ítems sólo pueden ser
// productos.
type PurchaseUseCase struct {
	txRunner        TxRunner
	purchaseRepo    repository.PurchaseRepository
	supplierRepo    repository.SupplierRepository
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
	reconciler      *inventory.Reconciler
	log             *logger.Logger
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(
	txRunner TxRunner,
	purchaseRepo repository.PurchaseRepository,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	transactionRepo repository.TransactionRepository,
	reconciler *inventory.Reconciler,
	log *logger.Logger,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		txRunner:        txRunner,
		purchaseRepo:    purchaseRepo,
		supplierRepo:    supplierRepo,
		productRepo:     productRepo,
		transactionRepo: transactionRepo,
		reconciler:      reconciler,
		log:             log,
	}
}

// Create valida, incrementa stock (si AffectStock), persiste la compra y
// registra los pagos iniciales, todo en una sola transacción.
func (uc *PurchaseUseCase) Create(ctx context.Context, in dto.CreatePurchaseRequest) (string, error) {
	now := time.Now()

	items, err := uc.buildItems(in.Items)
	if err != nil {
		return "", err
	}

	total := rules.CalculateItemsTotal(items)
	if in.TotalValue != nil {
		total = *in.TotalValue
	}

	date := now
	if in.Date != nil {
		date = *in.Date
	}

	purchase := &entity.Purchase{
		ID:          uuid.New().String(),
		SupplierID:  in.SupplierID,
		Items:       items,
		TotalValue:  total,
		AffectStock: in.AffectStock,
		Status:      entity.DocumentStatusOpen,
		Date:        date,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.validate(purchase); err != nil {
		return "", err
	}

	err = uc.txRunner.Run(ctx, func(
		_ repository.SaleRepository,
		purchaseRepo repository.PurchaseRepository,
		productRepo repository.ProductRepository,
		transactionRepo repository.TransactionRepository,
	) error {
		// La compra recibe mercadería: deltas positivos.
		if purchase.AffectStock {
			if err := uc.reconciler.Apply(productRepo, rules.ProductChanges(purchase.Items, +1)); err != nil {
				return err
			}
		}
		if err := purchaseRepo.Create(purchase); err != nil {
			return err
		}
		for _, p := range in.Payments {
			if err := uc.addPaymentTx(transactionRepo, purchase, p, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	uc.log.Info().Str("purchase_id", purchase.ID).Str("total", purchase.TotalValue.String()).Msg("compra creada")
	return purchase.ID, nil
}

// Update actualización parcial según el estado actual (mismas reglas que
// las ventas).
func (uc *PurchaseUseCase) Update(ctx context.Context, id string, in dto.UpdatePurchaseRequest) error {
	if in.Status != nil || in.AffectStock != nil {
		return domain.ErrImmutableField
	}

	return uc.txRunner.Run(ctx, func(
		_ repository.SaleRepository,
		purchaseRepo repository.PurchaseRepository,
		productRepo repository.ProductRepository,
		_ repository.TransactionRepository,
	) error {
		current, err := purchaseRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}

		switch current.Status {
		case entity.DocumentStatusCanceled:
			return domain.ErrInvalidTransition

		case entity.DocumentStatusClosed:
			if in.SupplierID != nil || in.Items != nil || in.TotalValue != nil || in.Date != nil {
				return domain.ErrImmutableField
			}
			if in.Notes == nil {
				return nil
			}
			current.Notes = *in.Notes
			current.UpdatedAt = time.Now()
			return purchaseRepo.Update(current)

		default: // open
			updated := *current
			if in.SupplierID != nil {
				updated.SupplierID = *in.SupplierID
			}
			if in.Items != nil {
				items, err := uc.buildItems(*in.Items)
				if err != nil {
					return err
				}
				updated.Items = items
			}
			if in.TotalValue != nil {
				updated.TotalValue = *in.TotalValue
			} else if in.Items != nil {
				updated.TotalValue = rules.CalculateItemsTotal(updated.Items)
			}
			if in.Date != nil {
				updated.Date = *in.Date
			}
			if in.Notes != nil {
				updated.Notes = *in.Notes
			}
			if err := uc.validate(&updated); err != nil {
				return err
			}

			// En una compra el diff de cantidades entra tal cual: recibir
			// más es delta positivo, quitar líneas lo devuelve.
			if in.Items != nil && current.AffectStock {
				diff := rules.ProductQuantityDiff(current.Items, updated.Items)
				if err := uc.reconciler.Apply(productRepo, diff); err != nil {
					return err
				}
			}

			updated.UpdatedAt = time.Now()
			return purchaseRepo.Update(&updated)
		}
	})
}

// Close transiciona open → closed.
func (uc *PurchaseUseCase) Close(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		_ repository.SaleRepository,
		purchaseRepo repository.PurchaseRepository,
		_ repository.ProductRepository,
		_ repository.TransactionRepository,
	) error {
		purchase, err := purchaseRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if purchase == nil {
			return domain.ErrNotFound
		}
		if !rules.CanClose(purchase.Status) {
			return domain.ErrInvalidTransition
		}
		return purchaseRepo.UpdateStatus(id, entity.DocumentStatusClosed)
	})
}

// Cancel cancela la compra: estorno de ingreso por lo pagado, reversa de
// stock recibido y estado canceled.
func (uc *PurchaseUseCase) Cancel(ctx context.Context, id string) error {
	err := uc.txRunner.Run(ctx, func(
		_ repository.SaleRepository,
		purchaseRepo repository.PurchaseRepository,
		productRepo repository.ProductRepository,
		transactionRepo repository.TransactionRepository,
	) error {
		purchase, err := purchaseRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if purchase == nil {
			return domain.ErrNotFound
		}
		if !rules.CanCancel(purchase.Status) {
			return domain.ErrInvalidTransition
		}

		prior, err := transactionRepo.ListByReference(entity.OriginPurchase, id)
		if err != nil {
			return err
		}
		var payments []*entity.Transaction
		for _, t := range prior {
			if t.Type == entity.TransactionOut {
				payments = append(payments, t)
			}
		}
		var values []decimal.Decimal
		for _, t := range payments {
			values = append(values, t.Value)
		}
		paid := rules.Sum(values)

		if paid.GreaterThan(decimal.Zero) {
			corrective := &entity.Transaction{
				ID:          uuid.New().String(),
				Title:       fmt.Sprintf("Estorno de la compra #%s", id),
				Description: "Motivo: cancelación de la compra",
				Type:        entity.TransactionIn,
				Origin:      entity.OriginPurchase,
				Value:       paid,
				Method:      payments[0].Method,
				Date:        time.Now(),
				ReferenceID: id,
				CreatedAt:   time.Now(),
			}
			if err := transactionRepo.Create(corrective); err != nil {
				return err
			}
		}

		if purchase.AffectStock {
			if err := uc.reconciler.Apply(productRepo, rules.ProductChanges(purchase.Items, -1)); err != nil {
				return err
			}
		}

		return purchaseRepo.UpdateStatus(id, entity.DocumentStatusCanceled)
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("purchase_id", id).Msg("compra cancelada")
	return nil
}

// AddPayment registra un pago (egreso) contra una compra abierta.
func (uc *PurchaseUseCase) AddPayment(ctx context.Context, id string, in dto.PaymentRequest) error {
	return uc.txRunner.Run(ctx, func(
		_ repository.SaleRepository,
		purchaseRepo repository.PurchaseRepository,
		_ repository.ProductRepository,
		transactionRepo repository.TransactionRepository,
	) error {
		purchase, err := purchaseRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if purchase == nil {
			return domain.ErrNotFound
		}
		return uc.addPaymentTx(transactionRepo, purchase, in, time.Now())
	})
}

func (uc *PurchaseUseCase) addPaymentTx(transactionRepo repository.TransactionRepository, purchase *entity.Purchase, in dto.PaymentRequest, now time.Time) error {
	if !rules.CanReceivePayment(purchase.Status) {
		return domain.ErrInvalidTransition
	}
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	if date.After(now) {
		return domain.ErrFutureDate
	}

	payment := &entity.Transaction{
		ID:          uuid.New().String(),
		Title:       fmt.Sprintf("Compra #%s", purchase.ID),
		Description: in.Description,
		Type:        entity.TransactionOut,
		Origin:      entity.OriginPurchase,
		Value:       in.Value,
		Method:      entity.PaymentMethod(in.Method),
		Date:        date,
		ReferenceID: purchase.ID,
		CreatedAt:   now,
	}
	if err := rules.ValidateTransaction(payment, now); err != nil {
		return err
	}
	return transactionRepo.Create(payment)
}

// List compras del período con filtros y estado de pago derivado.
func (uc *PurchaseUseCase) List(f dto.DocumentFilters) ([]dto.PurchaseResponse, error) {
	purchases, err := uc.purchaseRepo.ListByPeriod(f.Start, f.End)
	if err != nil {
		return nil, err
	}

	if f.Status != "" {
		purchases = filterPurchases(purchases, func(p *entity.Purchase) bool { return string(p.Status) == f.Status })
	}
	if f.MinTotal != nil {
		purchases = filterPurchases(purchases, func(p *entity.Purchase) bool { return !p.TotalValue.LessThan(*f.MinTotal) })
	}
	if f.MaxTotal != nil {
		purchases = filterPurchases(purchases, func(p *entity.Purchase) bool { return !p.TotalValue.GreaterThan(*f.MaxTotal) })
	}

	if f.Search != "" {
		suppliers, err := uc.supplierRepo.List(f.Search, nil)
		if err != nil {
			return nil, err
		}
		if len(suppliers) > 0 {
			ids := make(map[string]bool, len(suppliers))
			for _, s := range suppliers {
				ids[s.ID] = true
			}
			purchases = filterPurchases(purchases, func(p *entity.Purchase) bool { return ids[p.SupplierID] })
		}
	}

	resp, err := uc.attachPaymentStatus(purchases)
	if err != nil {
		return nil, err
	}
	if f.PaymentStatus != "" {
		filtered := resp[:0]
		for _, p := range resp {
			if p.PaymentStatus == f.PaymentStatus {
				filtered = append(filtered, p)
			}
		}
		resp = filtered
	}
	return resp, nil
}

// GetByID compra con estado de pago derivado.
func (uc *PurchaseUseCase) GetByID(id string) (*dto.PurchaseResponse, error) {
	purchase, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	resp, err := uc.attachPaymentStatus([]*entity.Purchase{purchase})
	if err != nil {
		return nil, err
	}
	return &resp[0], nil
}

// validate proveedor activo, total >= 0, ítems válidos (sin servicios).
func (uc *PurchaseUseCase) validate(purchase *entity.Purchase) error {
	if purchase.SupplierID != "" {
		supplier, err := uc.supplierRepo.GetByID(purchase.SupplierID)
		if err != nil {
			return err
		}
		if supplier == nil {
			return domain.ErrReferenceNotFound
		}
		if !supplier.Active {
			return domain.ErrInactiveReference
		}
	}
	if err := rules.ValidateDocumentTotal(purchase.TotalValue); err != nil {
		return err
	}
	return rules.ValidateItems(purchase.Items, false)
}

// buildItems resuelve las referencias de producto. Una línea de servicio
// es inválida en compras.
func (uc *PurchaseUseCase) buildItems(in []dto.DocumentItemRequest) ([]entity.ComercialItem, error) {
	items := make([]entity.ComercialItem, 0, len(in))
	for _, req := range in {
		item := entity.ComercialItem{
			ID:          uuid.New().String(),
			Type:        entity.ItemType(req.Type),
			ReferenceID: req.ReferenceID,
			Quantity:    req.Quantity,
			UnitValue:   req.UnitValue,
		}
		if item.Type != entity.ItemTypeProduct {
			return nil, domain.ErrValidation
		}
		product, err := uc.productRepo.GetByID(req.ReferenceID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrReferenceNotFound
		}
		if !product.Active {
			return nil, domain.ErrInactiveReference
		}
		item.Name = product.Name
		items = append(items, item)
	}
	return items, nil
}

func (uc *PurchaseUseCase) attachPaymentStatus(purchases []*entity.Purchase) ([]dto.PurchaseResponse, error) {
	ids := make([]string, 0, len(purchases))
	for _, p := range purchases {
		ids = append(ids, p.ID)
	}

	paidByPurchase := make(map[string]decimal.Decimal)
	if len(ids) > 0 {
		transactions, err := uc.transactionRepo.ListByReferenceIDs(entity.OriginPurchase, ids)
		if err != nil {
			return nil, err
		}
		for _, t := range transactions {
			if t.Type != entity.TransactionOut {
				continue
			}
			paidByPurchase[t.ReferenceID] = paidByPurchase[t.ReferenceID].Add(t.Value)
		}
	}

	resp := make([]dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		status := rules.CalculatePaymentStatus(p.TotalValue, []decimal.Decimal{paidByPurchase[p.ID]})
		resp = append(resp, toPurchaseResponse(p, status))
	}
	return resp, nil
}

func toPurchaseResponse(p *entity.Purchase, paymentStatus entity.PaymentStatus) dto.PurchaseResponse {
	items := make([]dto.DocumentItemResponse, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, dto.DocumentItemResponse{
			ID:          item.ID,
			Type:        string(item.Type),
			ReferenceID: item.ReferenceID,
			Name:        item.Name,
			Quantity:    item.Quantity,
			UnitValue:   item.UnitValue,
		})
	}
	return dto.PurchaseResponse{
		ID:            p.ID,
		SupplierID:    p.SupplierID,
		Items:         items,
		TotalValue:    p.TotalValue,
		AffectStock:   p.AffectStock,
		Status:        string(p.Status),
		PaymentStatus: string(paymentStatus),
		Date:          p.Date,
		Notes:         p.Notes,
	}
}

func filterPurchases(purchases []*entity.Purchase, keep func(*entity.Purchase) bool) []*entity.Purchase {
	filtered := purchases[:0]
	for _, p := range purchases {
		if keep(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
