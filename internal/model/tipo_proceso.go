package model

// TipoDeProceso mirrors the legacy `tipo_de_proceso` table. Campos carries a
// comma-separated list of form fields the frontend renders for this process.
type TipoDeProceso struct {
	ID     int    `gorm:"column:id;primaryKey"`
	Nombre string `gorm:"column:nombre"`
	Campos string `gorm:"column:campos"`
	Activo int16  `gorm:"column:activo"`
}

func (TipoDeProceso) TableName() string { return "tipo_de_proceso" }

// UnidadNegocioTipoProceso is the pivot linking business units to the
// process types they operate.
type UnidadNegocioTipoProceso struct {
	UnID          int `gorm:"column:un_id;primaryKey"`
	TipoProcesoID int `gorm:"column:tipo_proceso_id;primaryKey"`
}

func (UnidadNegocioTipoProceso) TableName() string { return "unidadnegocio_tipo_proceso" }
