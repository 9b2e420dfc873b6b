package model

// Personal mirrors the legacy `personal` table. Rows are administered by an
// external system; this service only reads them (operator catalog, login).
// Password holds a bcrypt hash; cmd/genhash produces hashes when migrating
// legacy plaintext rows.
type Personal struct {
	IDPersonal      int     `gorm:"column:idPersonal;primaryKey"`
	Nombre          string  `gorm:"column:Nombre"`
	CUIT            string  `gorm:"column:CUIT"`
	UnidadNegocio   int     `gorm:"column:unidad_negocio"`
	Activo          int16   `gorm:"column:activo"`
	Encargado       int16   `gorm:"column:encargado"`
	TipoDeProcesoID *int    `gorm:"column:tipo_de_proceso_id"`
	DNI             *string `gorm:"column:dni"`
	Password        *string `gorm:"column:password"`
	UserID          *int    `gorm:"column:user_id"`
}

func (Personal) TableName() string { return "personal" }
