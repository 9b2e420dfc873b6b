package repository

import (
	"context"

	"github.com/romanvsc/registro-produccion/internal/model"

	"gorm.io/gorm"
)

type UnidadNegocioRepository interface {
	ListActivas(ctx context.Context) ([]model.UnidadNegocio, error)
}

type unidadNegocioRepo struct{ db *gorm.DB }

func NewUnidadNegocioRepository(db *gorm.DB) UnidadNegocioRepository {
	return &unidadNegocioRepo{db: db}
}

func (r *unidadNegocioRepo) ListActivas(ctx context.Context) ([]model.UnidadNegocio, error) {
	var rows []model.UnidadNegocio
	err := r.db.WithContext(ctx).
		Where("activo = 1").
		Order("Nombre asc").
		Find(&rows).Error
	return rows, err
}
