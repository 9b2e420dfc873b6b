package repository

import (
	"context"

	"github.com/romanvsc/registro-produccion/internal/model"

	"gorm.io/gorm"
)

// TableroRepository writes production records to the legacy
// tablero_produccion table.
type TableroRepository interface {
	// Create assigns the next free id and inserts the record in one
	// serialized transaction. The legacy table has no auto-increment key, so
	// id assignment locks MAX(id) (FOR UPDATE) to keep concurrent
	// submissions from colliding — the historical read-then-write scheme
	// could hand the same id to two writers.
	Create(ctx context.Context, registro *model.TableroProduccion) error
}

type tableroRepo struct{ db *gorm.DB }

func NewTableroRepository(db *gorm.DB) TableroRepository { return &tableroRepo{db: db} }

func (r *tableroRepo) Create(ctx context.Context, registro *model.TableroProduccion) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxID int
		if err := tx.Raw(
			"SELECT COALESCE(MAX(id), 0) FROM tablero_produccion FOR UPDATE",
		).Scan(&maxID).Error; err != nil {
			return err
		}
		registro.ID = maxID + 1
		return tx.Create(registro).Error
	})
}
