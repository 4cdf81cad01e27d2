package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Distriquim-api/internal/application/dto"
	"github.com/jhoicas/Distriquim-api/internal/domain"
	"github.com/jhoicas/Distriquim-api/internal/domain/entity"
	"github.com/jhoicas/Distriquim-api/internal/domain/repository"
	"github.com/jhoicas/Distriquim-api/pkg/textutil"
)

// DistributorUseCase administración de distribuidores y su cuenta emparejada.
//
// El par Distributor↔User se mantiene por email, no por FK: toda mutación que
// toque ambas filas pasa por el PairedTxRunner para que el alta, el cambio de
// email y la baja sean atómicos (jamás una fila sin la otra).
type DistributorUseCase struct {
	distRepo repository.DistributorRepository
	userRepo repository.UserRepository
	tx       PairedTxRunner
}

// NewDistributorUseCase construye el caso de uso.
func NewDistributorUseCase(distRepo repository.DistributorRepository, userRepo repository.UserRepository, tx PairedTxRunner) *DistributorUseCase {
	return &DistributorUseCase{distRepo: distRepo, userRepo: userRepo, tx: tx}
}

// Create da de alta el distribuidor y su usuario DISTRIBUTOR en una transacción.
func (uc *DistributorUseCase) Create(ctx context.Context, in dto.CreateDistributorRequest) (*dto.DistributorResponse, error) {
	if in.CompanyName == "" || in.Email == "" {
		return nil, domain.Validation("companyName y email son requeridos")
	}
	if len(in.Password) < 8 {
		return nil, domain.EField(domain.KindValidation, "password debe tener al menos 8 caracteres", "password")
	}
	if existing, err := uc.distRepo.GetByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.EField(domain.KindAlreadyExists, "ya existe un distribuidor con ese email", "email")
	}
	if existing, err := uc.userRepo.GetByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.EField(domain.KindAlreadyExists, "el email ya está registrado", "email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	dist := &entity.Distributor{
		ID:                uuid.New().String(),
		CompanyName:       in.CompanyName,
		CompanyNameFolded: textutil.Fold(in.CompanyName),
		Email:             in.Email,
		ContactName:       in.ContactName,
		Phone:             in.Phone,
		City:              in.City,
		Status:            entity.StatusActive,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		FullName:     in.ContactName,
		Role:         entity.RoleDistributor,
		Status:       entity.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if user.FullName == "" {
		user.FullName = in.CompanyName
	}

	err = uc.tx.RunPaired(ctx, func(users repository.UserRepository, distributors repository.DistributorRepository) error {
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		return distributors.Create(ctx, dist)
	})
	if err != nil {
		return nil, err
	}
	return toDistributorResponse(dist), nil
}

// GetByID obtiene un distribuidor por ID.
func (uc *DistributorUseCase) GetByID(ctx context.Context, id string) (*dto.DistributorResponse, error) {
	dist, err := uc.distRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dist == nil {
		return nil, domain.NotFound("distribuidor no encontrado")
	}
	return toDistributorResponse(dist), nil
}

// List lista distribuidores; search filtra por razón social sin tildes.
func (uc *DistributorUseCase) List(ctx context.Context, search string, page dto.PageRequest) ([]*dto.DistributorResponse, dto.Pagination, error) {
	page.Normalize()
	list, total, err := uc.distRepo.List(ctx, textutil.Fold(search), page.Limit, page.Offset())
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	out := make([]*dto.DistributorResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toDistributorResponse(d))
	}
	return out, dto.NewPagination(page.Page, page.Limit, total), nil
}

// Update modifica un distribuidor. Un cambio de email se propaga a la cuenta
// de usuario emparejada con una query de seguimiento en la misma transacción.
func (uc *DistributorUseCase) Update(ctx context.Context, id string, in dto.UpdateDistributorRequest) (*dto.DistributorResponse, error) {
	dist, err := uc.distRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dist == nil {
		return nil, domain.NotFound("distribuidor no encontrado")
	}

	oldEmail := dist.Email
	if in.Email != "" && in.Email != dist.Email {
		if existing, err := uc.userRepo.GetByEmail(ctx, in.Email); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, domain.EField(domain.KindAlreadyExists, "el email ya está registrado", "email")
		}
		dist.Email = in.Email
	}
	if in.CompanyName != "" {
		dist.CompanyName = in.CompanyName
		dist.CompanyNameFolded = textutil.Fold(in.CompanyName)
	}
	if in.ContactName != "" {
		dist.ContactName = in.ContactName
	}
	if in.Phone != "" {
		dist.Phone = in.Phone
	}
	if in.City != "" {
		dist.City = in.City
	}
	if in.Status != "" {
		if in.Status != entity.StatusActive && in.Status != entity.StatusInactive {
			return nil, domain.EField(domain.KindValidation, "status debe ser ACTIVE o INACTIVE", "status")
		}
		dist.Status = in.Status
	}
	dist.UpdatedAt = time.Now()

	err = uc.tx.RunPaired(ctx, func(users repository.UserRepository, distributors repository.DistributorRepository) error {
		if err := distributors.Update(ctx, dist); err != nil {
			return err
		}
		if dist.Email == oldEmail {
			return nil
		}
		user, err := users.GetByEmail(ctx, oldEmail)
		if err != nil {
			return err
		}
		if user == nil {
			// Par roto: la fila de users no existe. Se deja constancia vía error
			// para que la transacción no consolide un par inconsistente.
			return domain.E(domain.KindConflict, "el distribuidor no tiene cuenta de usuario emparejada")
		}
		user.Email = dist.Email
		user.UpdatedAt = dist.UpdatedAt
		return users.Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return toDistributorResponse(dist), nil
}

// Delete elimina el distribuidor y su cuenta emparejada en una transacción.
func (uc *DistributorUseCase) Delete(ctx context.Context, id string) error {
	dist, err := uc.distRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if dist == nil {
		return domain.NotFound("distribuidor no encontrado")
	}
	return uc.tx.RunPaired(ctx, func(users repository.UserRepository, distributors repository.DistributorRepository) error {
		if err := distributors.Delete(ctx, id); err != nil {
			return err
		}
		return users.DeleteByEmail(ctx, dist.Email)
	})
}

func toDistributorResponse(d *entity.Distributor) *dto.DistributorResponse {
	if d == nil {
		return nil
	}
	return &dto.DistributorResponse{
		ID:          d.ID,
		CompanyName: d.CompanyName,
		Email:       d.Email,
		ContactName: d.ContactName,
		Phone:       d.Phone,
		City:        d.City,
		Status:      d.Status,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
