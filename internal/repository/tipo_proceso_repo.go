package repository

import (
	"context"

	"github.com/romanvsc/registro-produccion/internal/model"

	"gorm.io/gorm"
)

type TipoProcesoRepository interface {
	// ListByUnidad returns active process types operated by a business unit,
	// joined through the unidadnegocio_tipo_proceso pivot.
	ListByUnidad(ctx context.Context, unID int) ([]model.TipoDeProceso, error)
	ListActivos(ctx context.Context) ([]model.TipoDeProceso, error)
}

type tipoProcesoRepo struct{ db *gorm.DB }

func NewTipoProcesoRepository(db *gorm.DB) TipoProcesoRepository {
	return &tipoProcesoRepo{db: db}
}

func (r *tipoProcesoRepo) ListByUnidad(ctx context.Context, unID int) ([]model.TipoDeProceso, error) {
	var rows []model.TipoDeProceso
	err := r.db.WithContext(ctx).
		Joins("JOIN unidadnegocio_tipo_proceso p ON p.tipo_proceso_id = tipo_de_proceso.id").
		Where("p.un_id = ? AND tipo_de_proceso.activo = 1", unID).
		Order("tipo_de_proceso.nombre asc").
		Find(&rows).Error
	return rows, err
}

func (r *tipoProcesoRepo) ListActivos(ctx context.Context) ([]model.TipoDeProceso, error) {
	var rows []model.TipoDeProceso
	err := r.db.WithContext(ctx).
		Where("activo = 1").
		Order("nombre asc").
		Find(&rows).Error
	return rows, err
}
