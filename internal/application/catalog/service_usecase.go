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

// ServiceUseCase CRUD de servicios vendibles (sin inventario).
type ServiceUseCase struct {
	serviceRepo repository.ServiceRepository
	log         *logger.Logger
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(serviceRepo repository.ServiceRepository, log *logger.Logger) *ServiceUseCase {
	return &ServiceUseCase{serviceRepo: serviceRepo, log: log}
}

// Create alta de servicio, nace activo.
func (uc *ServiceUseCase) Create(_ context.Context, in dto.CreateServiceRequest) (string, error) {
	if strings.TrimSpace(in.Name) == "" {
		return "", domain.ErrValidation
	}
	price := decimal.Zero
	if in.Price != nil {
		price = *in.Price
	}
	if price.LessThan(decimal.Zero) {
		return "", domain.ErrValidation
	}

	now := time.Now()
	service := &entity.Service{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Price:     price,
		Active:    true,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.serviceRepo.Create(service); err != nil {
		return "", err
	}
	uc.log.Info().Str("service_id", service.ID).Msg("servicio creado")
	return service.ID, nil
}

// Update actualización parcial.
func (uc *ServiceUseCase) Update(_ context.Context, id string, in dto.UpdateServiceRequest) error {
	service, err := uc.serviceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if service == nil {
		return domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return domain.ErrValidation
		}
		service.Name = *in.Name
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return domain.ErrValidation
		}
		service.Price = *in.Price
	}
	if in.Notes != nil {
		service.Notes = *in.Notes
	}
	service.UpdatedAt = time.Now()
	return uc.serviceRepo.Update(service)
}

// SetActive soft-delete / reactivación; el toggle redundante es error.
func (uc *ServiceUseCase) SetActive(_ context.Context, id string, active bool) error {
	service, err := uc.serviceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if service == nil {
		return domain.ErrNotFound
	}
	if service.Active == active {
		return domain.ErrValidation
	}
	return uc.serviceRepo.SetActive(id, active)
}

// GetByID servicio puntual.
func (uc *ServiceUseCase) GetByID(id string) (*dto.ServiceResponse, error) {
	service, err := uc.serviceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}
	resp := toServiceResponse(service)
	return &resp, nil
}

// List servicios con búsqueda por nombre y filtro de activo.
func (uc *ServiceUseCase) List(search string, active *bool) ([]dto.ServiceResponse, error) {
	services, err := uc.serviceRepo.List(search, active)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		resp = append(resp, toServiceResponse(s))
	}
	return resp, nil
}

func toServiceResponse(s *entity.Service) dto.ServiceResponse {
	return dto.ServiceResponse{
		ID:        s.ID,
		Name:      s.Name,
		Price:     s.Price,
		Active:    s.Active,
		Notes:     s.Notes,
		CreatedAt: s.CreatedAt,
	}
}
