package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	appauth "github.com/jhoicas/Distriquim-api/internal/application/auth"
	"github.com/jhoicas/Distriquim-api/internal/application/dto"
	"github.com/jhoicas/Distriquim-api/internal/domain"
	"github.com/jhoicas/Distriquim-api/internal/domain/entity"
	"github.com/jhoicas/Distriquim-api/internal/domain/repository"
)

// UserUseCase administración de cuentas (solo admin).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create da de alta una cuenta con el password hasheado.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.FullName == "" {
		return nil, domain.Validation("email y fullName son requeridos")
	}
	if len(in.Password) < 8 {
		return nil, domain.EField(domain.KindValidation, "password debe tener al menos 8 caracteres", "password")
	}
	if in.Role != entity.RoleAdmin && in.Role != entity.RoleDistributor {
		return nil, domain.EField(domain.KindValidation, "role debe ser ADMIN o DISTRIBUTOR", "role")
	}
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.EField(domain.KindAlreadyExists, "el email ya está registrado", "email")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		Role:         in.Role,
		Status:       entity.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return appauth.ToUserResponse(user), nil
}

// GetByID obtiene una cuenta por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("usuario no encontrado")
	}
	return appauth.ToUserResponse(user), nil
}

// List lista cuentas con paginación.
func (uc *UserUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.UserResponse, dto.Pagination, error) {
	page.Normalize()
	users, total, err := uc.repo.List(ctx, page.Limit, page.Offset())
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, appauth.ToUserResponse(u))
	}
	return out, dto.NewPagination(page.Page, page.Limit, total), nil
}

// Update modifica una cuenta. Password vacío deja el hash como está.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("usuario no encontrado")
	}
	if in.Email != "" && in.Email != user.Email {
		existing, err := uc.repo.GetByEmail(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.EField(domain.KindAlreadyExists, "el email ya está registrado", "email")
		}
		user.Email = in.Email
	}
	if in.FullName != "" {
		user.FullName = in.FullName
	}
	if in.Role != "" {
		if in.Role != entity.RoleAdmin && in.Role != entity.RoleDistributor {
			return nil, domain.EField(domain.KindValidation, "role debe ser ADMIN o DISTRIBUTOR", "role")
		}
		user.Role = in.Role
	}
	if in.Status != "" {
		if in.Status != entity.StatusActive && in.Status != entity.StatusInactive {
			return nil, domain.EField(domain.KindValidation, "status debe ser ACTIVE o INACTIVE", "status")
		}
		user.Status = in.Status
	}
	if in.Password != "" {
		if len(in.Password) < 8 {
			return nil, domain.EField(domain.KindValidation, "password debe tener al menos 8 caracteres", "password")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return appauth.ToUserResponse(user), nil
}

// Delete elimina una cuenta. Un admin no puede eliminarse a sí mismo.
func (uc *UserUseCase) Delete(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return domain.Validation("no puede eliminar su propia cuenta")
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.NotFound("usuario no encontrado")
	}
	return uc.repo.Delete(ctx, id)
}
