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

// SaleUseCase motor del ciclo de vida de ventas: open → closed,
// open → canceled, closed → canceled. Las escrituras (stock, documento,
// ledger) corren dentro de una transacción vía TxRunner; las lecturas de
// validación y los listados usan los repositorios del pool.
type SaleUseCase struct {
	txRunner        TxRunner
	saleRepo        repository.SaleRepository
	clientRepo      repository.ClientRepository
	productRepo     repository.ProductRepository
	serviceRepo     repository.ServiceRepository
	transactionRepo repository.TransactionRepository
	reconciler      *inventory.Reconciler
	log             *logger.Logger
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	txRunner TxRunner,
	saleRepo repository.SaleRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	serviceRepo repository.ServiceRepository,
	transactionRepo repository.TransactionRepository,
	reconciler *inventory.Reconciler,
	log *logger.Logger,
) *SaleUseCase {
	return &SaleUseCase{
		txRunner:        txRunner,
		saleRepo:        saleRepo,
		clientRepo:      clientRepo,
		productRepo:     productRepo,
		serviceRepo:     serviceRepo,
		transactionRepo: transactionRepo,
		reconciler:      reconciler,
		log:             log,
	}
}

// Create valida, descuenta stock (si AffectStock), persiste la venta y
// registra los pagos iniciales, todo en una sola transacción.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (string, error) {
	now := time.Now()

	items, err := uc.buildItems(in.Items)
	if err != nil {
		return "", err
	}

	total := rules.CalculateItemsTotal(items)
	if in.TotalValue != nil {
		total = *in.TotalValue // override manual del total
	}

	date := now
	if in.Date != nil {
		date = *in.Date
	}

	sale := &entity.Sale{
		ID:          uuid.New().String(),
		ClientID:    in.ClientID,
		Items:       items,
		TotalValue:  total,
		AffectStock: in.AffectStock,
		Status:      entity.DocumentStatusOpen,
		Date:        date,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.validate(sale); err != nil {
		return "", err
	}

	err = uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		_ repository.PurchaseRepository,
		productRepo repository.ProductRepository,
		transactionRepo repository.TransactionRepository,
	) error {
		// La venta consume stock: deltas negativos por cada línea de producto.
		if sale.AffectStock {
			if err := uc.reconciler.Apply(productRepo, rules.ProductChanges(sale.Items, -1)); err != nil {
				return err
			}
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, p := range in.Payments {
			if err := uc.addPaymentTx(transactionRepo, sale, p, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	uc.log.Info().Str("sale_id", sale.ID).Str("total", sale.TotalValue.String()).Msg("venta creada")
	return sale.ID, nil
}

// Update actualización parcial según el estado actual:
// open re-valida y ajusta stock por diferencia; closed sólo admite notas;
// canceled rechaza cualquier edición. ID, Status y AffectStock son
// inmutables siempre.
func (uc *SaleUseCase) Update(ctx context.Context, id string, in dto.UpdateSaleRequest) error {
	if in.Status != nil || in.AffectStock != nil {
		return domain.ErrImmutableField
	}

	return uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		_ repository.PurchaseRepository,
		productRepo repository.ProductRepository,
		_ repository.TransactionRepository,
	) error {
		current, err := saleRepo.GetForUpdate(id)
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
			// Cerrada: sólo las notas pueden cambiar.
			if in.ClientID != nil || in.Items != nil || in.TotalValue != nil || in.Date != nil {
				return domain.ErrImmutableField
			}
			if in.Notes == nil {
				return nil
			}
			current.Notes = *in.Notes
			current.UpdatedAt = time.Now()
			return saleRepo.Update(current)

		default: // open
			updated := *current
			if in.ClientID != nil {
				updated.ClientID = *in.ClientID
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

			// Sólo la diferencia de cantidades toca el stock, no una
			// reaplicación completa de los ítems nuevos.
			if in.Items != nil && current.AffectStock {
				diff := rules.ProductQuantityDiff(current.Items, updated.Items)
				if err := uc.reconciler.Apply(productRepo, rules.InvertChanges(diff)); err != nil {
					return err
				}
			}

			updated.UpdatedAt = time.Now()
			return saleRepo.Update(&updated)
		}
	})
}

// Close transiciona open → closed. Sin efectos sobre stock ni ledger.
func (uc *SaleUseCase) Close(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		_ repository.PurchaseRepository,
		_ repository.ProductRepository,
		_ repository.TransactionRepository,
	) error {
		sale, err := saleRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		if !rules.CanClose(sale.Status) {
			return domain.ErrInvalidTransition
		}
		return saleRepo.UpdateStatus(id, entity.DocumentStatusClosed)
	})
}

// Cancel cancela la venta: (1) una transacción correctiva inversa por la
// suma de lo pagado, (2) reversa del stock aplicado, (3) estado canceled.
// Cancelar una venta ya cancelada falla sin crear un segundo estorno.
func (uc *SaleUseCase) Cancel(ctx context.Context, id string) error {
	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		_ repository.PurchaseRepository,
		productRepo repository.ProductRepository,
		transactionRepo repository.TransactionRepository,
	) error {
		sale, err := saleRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		if !rules.CanCancel(sale.Status) {
			return domain.ErrInvalidTransition
		}

		prior, err := transactionRepo.ListByReference(entity.OriginSale, id)
		if err != nil {
			return err
		}
		var payments []*entity.Transaction
		for _, t := range prior {
			if t.Type == entity.TransactionIn {
				payments = append(payments, t)
			}
		}
		var values []decimal.Decimal
		for _, t := range payments {
			values = append(values, t.Value)
		}
		paid := rules.Sum(values)

		// Sin pagos previos no hay nada que estornar: el ledger no admite
		// entradas de valor cero.
		if paid.GreaterThan(decimal.Zero) {
			corrective := &entity.Transaction{
				ID:          uuid.New().String(),
				Title:       fmt.Sprintf("Estorno de la venta #%s", id),
				Description: "Motivo: cancelación de la venta",
				Type:        entity.TransactionOut,
				Origin:      entity.OriginSale,
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

		// Reversa exacta del stock consumido por las líneas de producto.
		if sale.AffectStock {
			if err := uc.reconciler.Apply(productRepo, rules.ProductChanges(sale.Items, +1)); err != nil {
				return err
			}
		}

		return saleRepo.UpdateStatus(id, entity.DocumentStatusCanceled)
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("sale_id", id).Msg("venta cancelada")
	return nil
}

// AddPayment registra un pago contra una venta abierta.
func (uc *SaleUseCase) AddPayment(ctx context.Context, id string, in dto.PaymentRequest) error {
	return uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		_ repository.PurchaseRepository,
		_ repository.ProductRepository,
		transactionRepo repository.TransactionRepository,
	) error {
		sale, err := saleRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		return uc.addPaymentTx(transactionRepo, sale, in, time.Now())
	})
}

// addPaymentTx valida y apendea el pago al ledger. Sobreescribe título,
// origen, tipo y referencia para garantizar la consistencia del ledger
// sin importar lo que haya enviado el caller.
func (uc *SaleUseCase) addPaymentTx(transactionRepo repository.TransactionRepository, sale *entity.Sale, in dto.PaymentRequest, now time.Time) error {
	if !rules.CanReceivePayment(sale.Status) {
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
		Title:       fmt.Sprintf("Venta #%s", sale.ID),
		Description: in.Description,
		Type:        entity.TransactionIn,
		Origin:      entity.OriginSale,
		Value:       in.Value,
		Method:      entity.PaymentMethod(in.Method),
		Date:        date,
		ReferenceID: sale.ID,
		CreatedAt:   now,
	}
	if err := rules.ValidateTransaction(payment, now); err != nil {
		return err
	}
	return transactionRepo.Create(payment)
}

// List ventas del período con filtros y estado de pago derivado.
func (uc *SaleUseCase) List(f dto.DocumentFilters) ([]dto.SaleResponse, error) {
	sales, err := uc.saleRepo.ListByPeriod(f.Start, f.End)
	if err != nil {
		return nil, err
	}

	if f.Status != "" {
		sales = filterSales(sales, func(s *entity.Sale) bool { return string(s.Status) == f.Status })
	}
	if f.MinTotal != nil {
		sales = filterSales(sales, func(s *entity.Sale) bool { return !s.TotalValue.LessThan(*f.MinTotal) })
	}
	if f.MaxTotal != nil {
		sales = filterSales(sales, func(s *entity.Sale) bool { return !s.TotalValue.GreaterThan(*f.MaxTotal) })
	}

	// Búsqueda por texto del cliente (nombre, documento, teléfono).
	if f.Search != "" {
		clients, err := uc.clientRepo.List(f.Search, nil)
		if err != nil {
			return nil, err
		}
		if len(clients) > 0 {
			ids := make(map[string]bool, len(clients))
			for _, c := range clients {
				ids[c.ID] = true
			}
			sales = filterSales(sales, func(s *entity.Sale) bool { return ids[s.ClientID] })
		}
	}

	resp, err := uc.attachPaymentStatus(sales)
	if err != nil {
		return nil, err
	}
	if f.PaymentStatus != "" {
		filtered := resp[:0]
		for _, s := range resp {
			if s.PaymentStatus == f.PaymentStatus {
				filtered = append(filtered, s)
			}
		}
		resp = filtered
	}
	return resp, nil
}

// GetByID venta con estado de pago derivado.
func (uc *SaleUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	resp, err := uc.attachPaymentStatus([]*entity.Sale{sale})
	if err != nil {
		return nil, err
	}
	return &resp[0], nil
}

// validate reglas de create/update en estado open: cliente activo,
// total >= 0, ítems válidos (las referencias ya se resolvieron en
// buildItems).
func (uc *SaleUseCase) validate(sale *entity.Sale) error {
	if sale.ClientID != "" {
		client, err := uc.clientRepo.GetByID(sale.ClientID)
		if err != nil {
			return err
		}
		if client == nil {
			return domain.ErrReferenceNotFound
		}
		if !client.Active {
			return domain.ErrInactiveReference
		}
	}
	if err := rules.ValidateDocumentTotal(sale.TotalValue); err != nil {
		return err
	}
	return rules.ValidateItems(sale.Items, true)
}

// buildItems resuelve cada referencia (producto o servicio), exige que
// exista y esté activa, y denormaliza el nombre en la línea.
func (uc *SaleUseCase) buildItems(in []dto.DocumentItemRequest) ([]entity.ComercialItem, error) {
	items := make([]entity.ComercialItem, 0, len(in))
	for _, req := range in {
		item := entity.ComercialItem{
			ID:          uuid.New().String(),
			Type:        entity.ItemType(req.Type),
			ReferenceID: req.ReferenceID,
			Quantity:    req.Quantity,
			UnitValue:   req.UnitValue,
		}
		switch item.Type {
		case entity.ItemTypeProduct:
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
		case entity.ItemTypeService:
			service, err := uc.serviceRepo.GetByID(req.ReferenceID)
			if err != nil {
				return nil, err
			}
			if service == nil {
				return nil, domain.ErrReferenceNotFound
			}
			if !service.Active {
				return nil, domain.ErrInactiveReference
			}
			item.Name = service.Name
		default:
			return nil, domain.ErrValidation
		}
		items = append(items, item)
	}
	return items, nil
}

// attachPaymentStatus deriva el estado de pago de un lote de ventas con
// una sola consulta al ledger (sin N+1).
func (uc *SaleUseCase) attachPaymentStatus(sales []*entity.Sale) ([]dto.SaleResponse, error) {
	ids := make([]string, 0, len(sales))
	for _, s := range sales {
		ids = append(ids, s.ID)
	}

	paidBySale := make(map[string]decimal.Decimal)
	if len(ids) > 0 {
		transactions, err := uc.transactionRepo.ListByReferenceIDs(entity.OriginSale, ids)
		if err != nil {
			return nil, err
		}
		for _, t := range transactions {
			if t.Type != entity.TransactionIn {
				continue
			}
			paidBySale[t.ReferenceID] = paidBySale[t.ReferenceID].Add(t.Value)
		}
	}

	resp := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		status := rules.CalculatePaymentStatus(s.TotalValue, []decimal.Decimal{paidBySale[s.ID]})
		resp = append(resp, toSaleResponse(s, status))
	}
	return resp, nil
}

func toSaleResponse(s *entity.Sale, paymentStatus entity.PaymentStatus) dto.SaleResponse {
	items := make([]dto.DocumentItemResponse, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, dto.DocumentItemResponse{
			ID:          item.ID,
			Type:        string(item.Type),
			ReferenceID: item.ReferenceID,
			Name:        item.Name,
			Quantity:    item.Quantity,
			UnitValue:   item.UnitValue,
		})
	}
	return dto.SaleResponse{
		ID:            s.ID,
		ClientID:      s.ClientID,
		Items:         items,
		TotalValue:    s.TotalValue,
		AffectStock:   s.AffectStock,
		Status:        string(s.Status),
		PaymentStatus: string(paymentStatus),
		Date:          s.Date,
		Notes:         s.Notes,
	}
}

func filterSales(sales []*entity.Sale, keep func(*entity.Sale) bool) []*entity.Sale {
	filtered := sales[:0]
	for _, s := range sales {
		if keep(s) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
