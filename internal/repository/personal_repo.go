package repository

import (
	"context"

	"github.com/romanvsc/registro-produccion/internal/model"

	"gorm.io/gorm"
)

// PersonalRepository reads the externally managed `personal` table.
type PersonalRepository interface {
	ListOperadores(ctx context.Context, unID *int) ([]model.Personal, error)
	FindByDNI(ctx context.Context, dni string) (*model.Personal, error)
}

type personalRepo struct{ db *gorm.DB }

func NewPersonalRepository(db *gorm.DB) PersonalRepository { return &personalRepo{db: db} }

func (r *personalRepo) ListOperadores(ctx context.Context, unID *int) ([]model.Personal, error) {
	q := r.db.WithContext(ctx).Where("activo = 1")
	if unID != nil {
		q = q.Where("unidad_negocio = ?", *unID)
	}
	var rows []model.Personal
	err := q.Order("Nombre asc").Find(&rows).Error
	return rows, err
}

func (r *personalRepo) FindByDNI(ctx context.Context, dni string) (*model.Personal, error) {
	var p model.Personal
	err := r.db.WithContext(ctx).
		Where("dni = ? AND activo = 1", dni).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}
