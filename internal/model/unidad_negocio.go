package model

// UnidadNegocio mirrors the legacy `unidadnegocio` table.
type UnidadNegocio struct {
	IDUnidadNegocio int    `gorm:"column:idUnidadNegocio;primaryKey"`
	Nombre          string `gorm:"column:Nombre"`
	Prefijo         string `gorm:"column:Prefijo"`
	Activo          int16  `gorm:"column:activo"`
}

func (UnidadNegocio) TableName() string { return "unidadnegocio" }
