package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Distriquim-api/internal/application/dto"
	"github.com/jhoicas/Distriquim-api/internal/application/usecase"
	"github.com/jhoicas/Distriquim-api/internal/domain"
	"github.com/jhoicas/Distriquim-api/internal/domain/entity"
)

func kindOf(t *testing.T, err error) *domain.Error {
	t.Helper()
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	return de
}

func seedDistributor(id, company, email string) *entity.Distributor {
	now := time.Now().Add(-time.Hour)
	return &entity.Distributor{
		ID:          id,
		CompanyName: company,
		Email:       email,
		Status:      entity.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func seedPairedUser(id, email string) *entity.User {
	now := time.Now().Add(-time.Hour)
	return &entity.User{
		ID:        id,
		Email:     email,
		FullName:  "Contacto",
		Role:      entity.RoleDistributor,
		Status:    entity.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func newDistUC(users *fakeUserRepo, dists *fakeDistRepo) (*usecase.DistributorUseCase, *fakePairedRunner) {
	runner := &fakePairedRunner{users: users, dists: dists}
	return usecase.NewDistributorUseCase(dists, users, runner), runner
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestDistributorCreate_CreaElParCompleto(t *testing.T) {
	users := newFakeUserRepo()
	dists := newFakeDistRepo()
	uc, runner := newDistUC(users, dists)

	out, err := uc.Create(context.Background(), dto.CreateDistributorRequest{
		CompanyName: "Química Bogotá S.A.S.",
		Email:       "compras@quimibogota.co",
		Password:    "clave-segura",
		ContactName: "Carlos Pérez",
		City:        "Bogotá",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, runner.calls, "el alta debe pasar por el runner transaccional")
	assert.Equal(t, entity.StatusActive, out.Status)

	// La cuenta emparejada existe, con rol DISTRIBUTOR y el mismo email.
	user, _ := users.GetByEmail(context.Background(), "compras@quimibogota.co")
	require.NotNil(t, user, "debe crearse la cuenta de usuario emparejada")
	assert.Equal(t, entity.RoleDistributor, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("clave-segura")))

	dist, _ := dists.GetByEmail(context.Background(), "compras@quimibogota.co")
	require.NotNil(t, dist)
	assert.Equal(t, "quimica bogota s.a.s.", dist.CompanyNameFolded)
}

// Si la fila de distributors falla dentro de la transacción, el error sube y
// nada queda consolidado (en producción el TxRunner revierte ambas filas).
func TestDistributorCreate_FalloEnLaTransaccion_PropagaElError(t *testing.T) {
	users := newFakeUserRepo()
	dists := newFakeDistRepo()
	dists.createErr = errors.New("disco lleno")
	uc, _ := newDistUC(users, dists)

	_, err := uc.Create(context.Background(), dto.CreateDistributorRequest{
		CompanyName: "ACME", Email: "acme@test.co", Password: "clave-segura",
	})
	assert.ErrorContains(t, err, "disco lleno")
}

func TestDistributorCreate_EmailYaRegistrado(t *testing.T) {
	users := newFakeUserRepo()
	_ = users.Create(context.Background(), seedPairedUser("u1", "tomado@test.co"))
	uc, runner := newDistUC(users, newFakeDistRepo())

	_, err := uc.Create(context.Background(), dto.CreateDistributorRequest{
		CompanyName: "ACME", Email: "tomado@test.co", Password: "clave-segura",
	})
	de := kindOf(t, err)
	assert.Equal(t, domain.KindAlreadyExists, de.Kind)
	assert.Equal(t, "email", de.Field)
	assert.Zero(t, runner.calls, "con email duplicado no se abre transacción")
}

func TestDistributorCreate_PasswordCorta(t *testing.T) {
	uc, _ := newDistUC(newFakeUserRepo(), newFakeDistRepo())
	_, err := uc.Create(context.Background(), dto.CreateDistributorRequest{
		CompanyName: "ACME", Email: "acme@test.co", Password: "corta",
	})
	assert.Equal(t, domain.KindValidation, kindOf(t, err).Kind)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestDistributorUpdate_CambioDeEmail_SePropagaALaCuenta(t *testing.T) {
	users := newFakeUserRepo()
	_ = users.Create(context.Background(), seedPairedUser("u1", "viejo@test.co"))
	dists := newFakeDistRepo(seedDistributor("d1", "ACME", "viejo@test.co"))
	uc, _ := newDistUC(users, dists)

	out, err := uc.Update(context.Background(), "d1", dto.UpdateDistributorRequest{
		Email: "nuevo@test.co",
	})
	require.NoError(t, err)
	assert.Equal(t, "nuevo@test.co", out.Email)

	user, _ := users.GetByEmail(context.Background(), "nuevo@test.co")
	require.NotNil(t, user, "la cuenta emparejada debe seguir al nuevo email")
	old, _ := users.GetByEmail(context.Background(), "viejo@test.co")
	assert.Nil(t, old)
}

// Par roto: el distribuidor existe pero su cuenta no. El cambio de email no
// debe consolidar un par inconsistente.
func TestDistributorUpdate_ParRoto_Conflict(t *testing.T) {
	dists := newFakeDistRepo(seedDistributor("d1", "ACME", "huerfano@test.co"))
	uc, _ := newDistUC(newFakeUserRepo(), dists)

	_, err := uc.Update(context.Background(), "d1", dto.UpdateDistributorRequest{
		Email: "nuevo@test.co",
	})
	assert.Equal(t, domain.KindConflict, kindOf(t, err).Kind)
}

func TestDistributorUpdate_StatusInvalido(t *testing.T) {
	dists := newFakeDistRepo(seedDistributor("d1", "ACME", "acme@test.co"))
	uc, _ := newDistUC(newFakeUserRepo(), dists)

	_, err := uc.Update(context.Background(), "d1", dto.UpdateDistributorRequest{Status: "PAUSADO"})
	de := kindOf(t, err)
	assert.Equal(t, domain.KindValidation, de.Kind)
	assert.Equal(t, "status", de.Field)
}

func TestDistributorUpdate_NoExiste(t *testing.T) {
	uc, _ := newDistUC(newFakeUserRepo(), newFakeDistRepo())
	_, err := uc.Update(context.Background(), "nope", dto.UpdateDistributorRequest{City: "Cali"})
	assert.Equal(t, domain.KindNotFound, kindOf(t, err).Kind)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDistributorDelete_EliminaAmbasFilas(t *testing.T) {
	users := newFakeUserRepo()
	_ = users.Create(context.Background(), seedPairedUser("u1", "baja@test.co"))
	dists := newFakeDistRepo(seedDistributor("d1", "ACME", "baja@test.co"))
	uc, runner := newDistUC(users, dists)

	require.NoError(t, uc.Delete(context.Background(), "d1"))
	assert.Equal(t, 1, runner.calls)

	dist, _ := dists.GetByID(context.Background(), "d1")
	assert.Nil(t, dist)
	user, _ := users.GetByEmail(context.Background(), "baja@test.co")
	assert.Nil(t, user, "la cuenta emparejada cae junto con el distribuidor")
}
