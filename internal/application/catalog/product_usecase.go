// Package catalog administra productos y servicios vendibles.
package catalog

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

// ProductUseCase CRUD de productos. El stock sólo se mueve por la
// reconciliación de documentos o por el ajuste manual de AdjustStock;
// el Update común nunca lo toca.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	log          *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, supplierRepo repository.SupplierRepository, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, supplierRepo: supplierRepo, log: log}
}

// Create alta de producto. Stock es obligatorio (y >= 0) si StockControl;
// sin control de stock el campo queda indefinido.
func (uc *ProductUseCase) Create(_ context.Context, in dto.CreateProductRequest) (string, error) {
	if strings.TrimSpace(in.Name) == "" {
		return "", domain.ErrValidation
	}

	var stock *int64
	if in.StockControl {
		if in.Stock == nil || *in.Stock < 0 {
			return "", domain.ErrValidation
		}
		s := *in.Stock
		stock = &s
	}

	if in.SupplierID != "" {
		supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
		if err != nil {
			return "", err
		}
		if supplier == nil {
			return "", domain.ErrReferenceNotFound
		}
	}

	cost, sellPrice := decimal.Zero, decimal.Zero
	if in.Cost != nil {
		cost = *in.Cost
	}
	if in.SellPrice != nil {
		sellPrice = *in.SellPrice
	}
	if cost.LessThan(decimal.Zero) || sellPrice.LessThan(decimal.Zero) {
		return "", domain.ErrValidation
	}

	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		SupplierID:   in.SupplierID,
		StockControl: in.StockControl,
		Stock:        stock,
		Cost:         cost,
		SellPrice:    sellPrice,
		Active:       true,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return "", err
	}
	uc.log.Info().Str("product_id", product.ID).Bool("stock_control", product.StockControl).Msg("producto creado")
	return product.ID, nil
}

// Update actualización parcial; ni Stock ni StockControl se editan por aquí.
func (uc *ProductUseCase) Update(_ context.Context, id string, in dto.UpdateProductRequest) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return domain.ErrValidation
		}
		product.Name = *in.Name
	}
	if in.SupplierID != nil {
		if *in.SupplierID != "" {
			supplier, err := uc.supplierRepo.GetByID(*in.SupplierID)
			if err != nil {
				return err
			}
			if supplier == nil {
				return domain.ErrReferenceNotFound
			}
		}
		product.SupplierID = *in.SupplierID
	}
	if in.Cost != nil {
		if in.Cost.LessThan(decimal.Zero) {
			return domain.ErrValidation
		}
		product.Cost = *in.Cost
	}
	if in.SellPrice != nil {
		if in.SellPrice.LessThan(decimal.Zero) {
			return domain.ErrValidation
		}
		product.SellPrice = *in.SellPrice
	}
	if in.Notes != nil {
		product.Notes = *in.Notes
	}
	product.UpdatedAt = time.Now()
	return uc.productRepo.Update(product)
}

// AdjustStock ajuste manual absoluto. Sólo productos con control de
// stock; el valor fijado no puede ser negativo.
func (uc *ProductUseCase) AdjustStock(_ context.Context, id string, in dto.AdjustStockRequest) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if !product.StockControl {
		return domain.ErrValidation
	}
	if in.Stock < 0 {
		return domain.ErrValidation
	}
	if err := uc.productRepo.UpdateStock(id, in.Stock); err != nil {
		return err
	}
	uc.log.Info().Str("product_id", id).Int64("stock", in.Stock).Msg("stock ajustado manualmente")
	return nil
}

// SetActive soft-delete / reactivación; el toggle redundante es error.
func (uc *ProductUseCase) SetActive(_ context.Context, id string, active bool) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.Active == active {
		return domain.ErrValidation
	}
	return uc.productRepo.SetActive(id, active)
}

// GetByID producto puntual.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// List productos con búsqueda por nombre y filtro de activo.
func (uc *ProductUseCase) List(search string, active *bool) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.List(search, active)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, toProductResponse(p))
	}
	return resp, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		SupplierID:   p.SupplierID,
		StockControl: p.StockControl,
		Stock:        p.Stock,
		Cost:         p.Cost,
		SellPrice:    p.SellPrice,
		Active:       p.Active,
		Notes:        p.Notes,
		CreatedAt:    p.CreatedAt,
	}
}
