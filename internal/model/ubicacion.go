package model

import "github.com/shopspring/decimal"

// Location hierarchy: Predio (site) → Rodal (plot) → Acta (document).
//
// Acta.RodalID is a loose reference, not an enforced foreign key — the legacy
// data links actas to rodales by display code, so referential integrity here
// is a data-quality concern, not a schema guarantee.

type Acta struct {
	ID         int             `gorm:"column:id;primaryKey"`
	RodalID    int             `gorm:"column:rodal_id"`
	Numero     string          `gorm:"column:numero"`
	VAM        decimal.Decimal `gorm:"column:vam;type:decimal(12,4)"`
	Tarifa     decimal.Decimal `gorm:"column:tarifa;type:decimal(12,4)"`
	Extraccion decimal.Decimal `gorm:"column:extraccion;type:decimal(12,4)"`
	Carga      decimal.Decimal `gorm:"column:carga;type:decimal(12,4)"`
	Periodo    *string         `gorm:"column:periodo"`
}

func (Acta) TableName() string { return "actas" }

type Predio struct {
	IDPredio int    `gorm:"column:idPredio;primaryKey"`
	Nombre   string `gorm:"column:Nombre"`
	Empresa  string `gorm:"column:empresa"`
}

func (Predio) TableName() string { return "predios" }

type Rodal struct {
	IDRodal    int             `gorm:"column:idRodal;primaryKey"`
	Rodal      string          `gorm:"column:Rodal"`
	IDPredio   int             `gorm:"column:idPredio"`
	VAM        decimal.Decimal `gorm:"column:VAM;type:decimal(12,4)"`
	Tarifa     decimal.Decimal `gorm:"column:Tarifa;type:decimal(12,4)"`
	Extraccion decimal.Decimal `gorm:"column:Extraccion;type:decimal(12,4)"`
	Carga      decimal.Decimal `gorm:"column:Carga;type:decimal(12,4)"`
}

func (Rodal) TableName() string { return "rodales" }
