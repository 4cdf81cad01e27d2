package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Distriquim-api/internal/domain"
	"github.com/jhoicas/Distriquim-api/internal/domain/entity"
	"github.com/jhoicas/Distriquim-api/internal/domain/repository"
)

var _ repository.DistributorRepository = (*DistributorRepo)(nil)

const distributorColumns = `id, company_name, company_name_folded, email, contact_name, phone, city, status, created_at, updated_at`

// DistributorRepo implementación del puerto DistributorRepository sobre PostgreSQL.
type DistributorRepo struct {
	db DB
}

// NewDistributorRepository construye el adaptador de persistencia para distribuidores.
func NewDistributorRepository(db DB) *DistributorRepo {
	return &DistributorRepo{db: db}
}

// Create persiste un nuevo distribuidor.
func (r *DistributorRepo) Create(ctx context.Context, d *entity.Distributor) error {
	query := `
		INSERT INTO distributors (id, company_name, company_name_folded, email, contact_name, phone, city, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		d.ID, d.CompanyName, d.CompanyNameFolded, d.Email, d.ContactName, d.Phone, d.City, d.Status,
		d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.EField(domain.KindAlreadyExists, "ya existe un distribuidor con ese email", "email")
		}
		return fmt.Errorf("insert distributor: %w", err)
	}
	return nil
}

// GetByID obtiene un distribuidor por ID; (nil, nil) si no existe.
func (r *DistributorRepo) GetByID(ctx context.Context, id string) (*entity.Distributor, error) {
	return r.get(ctx, `SELECT `+distributorColumns+` FROM distributors WHERE id = $1`, id)
}

// GetByEmail obtiene el distribuidor emparejado a una cuenta; (nil, nil) si no existe.
func (r *DistributorRepo) GetByEmail(ctx context.Context, email string) (*entity.Distributor, error) {
	return r.get(ctx, `SELECT `+distributorColumns+` FROM distributors WHERE email = $1`, email)
}

func (r *DistributorRepo) get(ctx context.Context, query string, arg any) (*entity.Distributor, error) {
	var d entity.Distributor
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&d.ID, &d.CompanyName, &d.CompanyNameFolded, &d.Email, &d.ContactName, &d.Phone, &d.City, &d.Status,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get distributor: %w", err)
	}
	return &d, nil
}

// List lista distribuidores con paginación; search compara contra
// company_name_folded (llega ya normalizado con textutil.Fold).
func (r *DistributorRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.Distributor, int, error) {
	where := ``
	args := []any{}
	if search != "" {
		where = ` WHERE company_name_folded LIKE '%' || $1 || '%'`
		args = append(args, search)
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM distributors`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count distributors: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM distributors%s ORDER BY company_name ASC LIMIT $%d OFFSET $%d`,
		distributorColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list distributors: %w", err)
	}
	defer rows.Close()
	list, err := scanDistributors(rows)
	return list, total, err
}

// ListActive devuelve todos los distribuidores activos (fan-out de notificaciones).
func (r *DistributorRepo) ListActive(ctx context.Context) ([]*entity.Distributor, error) {
	query := `SELECT ` + distributorColumns + ` FROM distributors WHERE status = $1 ORDER BY company_name ASC`
	rows, err := r.db.Query(ctx, query, entity.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("list active distributors: %w", err)
	}
	defer rows.Close()
	return scanDistributors(rows)
}

func scanDistributors(rows pgx.Rows) ([]*entity.Distributor, error) {
	var list []*entity.Distributor
	for rows.Next() {
		var d entity.Distributor
		if err := rows.Scan(&d.ID, &d.CompanyName, &d.CompanyNameFolded, &d.Email, &d.ContactName, &d.Phone, &d.City, &d.Status, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan distributor: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update actualiza un distribuidor.
func (r *DistributorRepo) Update(ctx context.Context, d *entity.Distributor) error {
	query := `
		UPDATE distributors SET company_name = $2, company_name_folded = $3, email = $4, contact_name = $5,
			phone = $6, city = $7, status = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		d.ID, d.CompanyName, d.CompanyNameFolded, d.Email, d.ContactName, d.Phone, d.City, d.Status, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.EField(domain.KindAlreadyExists, "ya existe un distribuidor con ese email", "email")
		}
		return fmt.Errorf("update distributor: %w", err)
	}
	return nil
}

// Delete elimina un distribuidor por ID.
func (r *DistributorRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM distributors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete distributor: %w", err)
	}
	return nil
}
