package model

import "time"

// TableroProduccion is the append-only fact table capturing one shift's
// output. The legacy table has NO auto-increment primary key: the id is
// assigned by TableroRepository inside a serialized transaction.
//
// Rows created through this service are stamped Origen="web" to tell them
// apart from records ingested by other channels into the same table.
type TableroProduccion struct {
	ID               int       `gorm:"column:id;primaryKey"`
	UN               string    `gorm:"column:UN"`
	Operacion        string    `gorm:"column:operacion"`
	Fecha            string    `gorm:"column:fecha;type:date"`
	Equipo           string    `gorm:"column:equipo"`
	Operador         string    `gorm:"column:operador"`
	CodOperador      int       `gorm:"column:cod_operador"`
	CodEquipo        int       `gorm:"column:cod_equipo"`
	CodUN            *int      `gorm:"column:cod_un"`
	HrInicio         float64   `gorm:"column:hr_inicio"`
	HrFin            float64   `gorm:"column:hr_fin"`
	Combustible      int       `gorm:"column:combustible"`
	AceiteCadena     int       `gorm:"column:aceite_cadena"`
	Acta             string    `gorm:"column:acta"`
	Rodal            string    `gorm:"column:rodal"`
	Predio           string    `gorm:"column:predio"`
	M3               int       `gorm:"column:m3"`
	Carros           int       `gorm:"column:carros"`
	TnDespachadas    float64   `gorm:"column:tn_despachadas"`
	Has              float64   `gorm:"column:has"`
	Produccion       float64   `gorm:"column:produccion"`
	Plantas          int       `gorm:"column:plantas"`
	MtrsRecorridos   int       `gorm:"column:mtrs_recorridos"`
	KmCarreteo       float64   `gorm:"column:km_carreteo"`
	KmPerfilado      float64   `gorm:"column:km_perfilado"`
	HrDisposicion    float64   `gorm:"column:hr_disposicion"`
	HrsNoOp          int       `gorm:"column:hrs_no_op"`
	MotivoNoOp       string    `gorm:"column:motivo_no_op"`
	Observaciones    string    `gorm:"column:observaciones"`
	UnidadProduccion string    `gorm:"column:unidad_produccion"`
	FechaHora        time.Time `gorm:"column:fecha_hora"`
	Origen           string    `gorm:"column:origen"`
}

func (TableroProduccion) TableName() string { return "tablero_produccion" }
