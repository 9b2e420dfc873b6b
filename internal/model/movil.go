package model

// Movil mirrors the legacy `moviles` table (field equipment / vehicles).
type Movil struct {
	IDMovil         int    `gorm:"column:idMovil;primaryKey"`
	Patente         string `gorm:"column:Patente"`
	Detalle         string `gorm:"column:Detalle"`
	IDChofer        int    `gorm:"column:idChofer"`
	IDUnidadNegocio int    `gorm:"column:idUnidadNegocio"`
	TipoProceso     string `gorm:"column:tipo_proceso"`
	Activo          int16  `gorm:"column:activo"`
}

func (Movil) TableName() string { return "moviles" }
