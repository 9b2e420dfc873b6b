package repository

import (
	"context"

	"github.com/romanvsc/registro-produccion/internal/model"

	"gorm.io/gorm"
)

// UbicacionRepository reads the location hierarchy (predios → rodales, plus
// actas loosely linked to rodales by code).
type UbicacionRepository interface {
	ListActas(ctx context.Context) ([]model.Acta, error)
	ListPredios(ctx context.Context) ([]model.Predio, error)
	ListRodales(ctx context.Context, predioID *int) ([]model.Rodal, error)
}

type ubicacionRepo struct{ db *gorm.DB }

func NewUbicacionRepository(db *gorm.DB) UbicacionRepository { return &ubicacionRepo{db: db} }

func (r *ubicacionRepo) ListActas(ctx context.Context) ([]model.Acta, error) {
	var rows []model.Acta
	err := r.db.WithContext(ctx).Order("numero asc").Find(&rows).Error
	return rows, err
}

func (r *ubicacionRepo) ListPredios(ctx context.Context) ([]model.Predio, error) {
	var rows []model.Predio
	err := r.db.WithContext(ctx).Order("Nombre asc").Find(&rows).Error
	return rows, err
}

func (r *ubicacionRepo) ListRodales(ctx context.Context, predioID *int) ([]model.Rodal, error) {
	q := r.db.WithContext(ctx)
	if predioID != nil {
		q = q.Where("idPredio = ?", *predioID)
	}
	var rows []model.Rodal
	err := q.Order("Rodal asc").Find(&rows).Error
	return rows, err
}
