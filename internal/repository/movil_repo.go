package repository

import (
	"context"
	"errors"

	"github.com/romanvsc/registro-produccion/internal/model"

	"gorm.io/gorm"
)

// MovilRepository reads vehicles and their operator assignments.
type MovilRepository interface {
	// FindAsignacionVigente returns the assignment valid on `hoy`
	// (yyyy-mm-dd), or nil when the operator has none. When several rows
	// qualify — overlapping assignments are not rejected at write time by the
	// upstream admin system — the most recently started one wins (desde DESC,
	// id DESC as tie-break).
	FindAsignacionVigente(ctx context.Context, operadorID int, hoy string) (*model.MovilOperador, error)

	// FindByPatenteOID resolves the assignment's movil_id string: exact
	// patente match, or idMovil match when esNumero is true. Active only.
	FindByPatenteOID(ctx context.Context, movilID string, esNumero bool) (*model.Movil, error)

	// FindByChofer looks up an active vehicle whose stored driver id equals
	// the operator id.
	FindByChofer(ctx context.Context, operadorID int) (*model.Movil, error)
}

type movilRepo struct{ db *gorm.DB }

func NewMovilRepository(db *gorm.DB) MovilRepository { return &movilRepo{db: db} }

func (r *movilRepo) FindAsignacionVigente(ctx context.Context, operadorID int, hoy string) (*model.MovilOperador, error) {
	var a model.MovilOperador
	err := r.db.WithContext(ctx).
		Where("operador_id = ? AND desde <= ? AND (hasta >= ? OR hasta = ?)",
			operadorID, hoy, hoy, model.FechaAbierta).
		Order("desde DESC, id DESC").
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *movilRepo) FindByPatenteOID(ctx context.Context, movilID string, esNumero bool) (*model.Movil, error) {
	q := r.db.WithContext(ctx).Where("activo = 1")
	if esNumero {
		q = q.Where("Patente = ? OR idMovil = ?", movilID, movilID)
	} else {
		q = q.Where("Patente = ?", movilID)
	}
	var m model.Movil
	err := q.First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *movilRepo) FindByChofer(ctx context.Context, operadorID int) (*model.Movil, error) {
	var m model.Movil
	err := r.db.WithContext(ctx).
		Where("idChofer = ? AND activo = 1", operadorID).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}
