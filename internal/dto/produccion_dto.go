package dto

import "github.com/shopspring/decimal"

// Catalog responses — JSON field names are preserved from the legacy schema.

type OperadorResponse struct {
	IDPersonal      int     `json:"idPersonal"`
	Nombre          string  `json:"nombre"`
	DNI             *string `json:"dni"`
	Encargado       int16   `json:"encargado"`
	TipoDeProcesoID *int    `json:"tipo_de_proceso_id"`
}

type UnidadNegocioResponse struct {
	IDUnidadNegocio int    `json:"idUnidadNegocio"`
	Nombre          string `json:"nombre"`
}

type TipoProcesoResponse struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
	Campos string `json:"campos"`
}

type MovilResponse struct {
	IDMovil  int    `json:"idMovil"`
	Patente  string `json:"patente"`
	Detalle  string `json:"detalle"`
	IDChofer int    `json:"idChofer"`
}

type ActaResponse struct {
	ID      int             `json:"id"`
	Numero  string          `json:"numero"`
	RodalID int             `json:"rodal_id"`
	Tarifa  decimal.Decimal `json:"tarifa"`
}

type PredioResponse struct {
	IDPredio int    `json:"idPredio"`
	Nombre   string `json:"nombre"`
}

type RodalResponse struct {
	IDRodal  int    `json:"idRodal"`
	Rodal    string `json:"rodal"`
	IDPredio int    `json:"idPredio"`
}

// CrearTableroRequest is the denormalized production record payload. Display
// strings and numeric codes arrive pre-resolved by the data-entry form; this
// service validates shape only and never re-derives them.
type CrearTableroRequest struct {
	UN               string  `json:"UN"`
	Operacion        string  `json:"operacion"`
	Fecha            string  `json:"fecha" validate:"required,datetime=2006-01-02"`
	Equipo           string  `json:"equipo"`
	Operador         string  `json:"operador"`
	CodOperador      int     `json:"cod_operador" validate:"min=0"`
	CodEquipo        int     `json:"cod_equipo" validate:"min=0"`
	CodUN            *int    `json:"cod_un"`
	HrInicio         float64 `json:"hr_inicio" validate:"min=0,max=24"`
	HrFin            float64 `json:"hr_fin" validate:"min=0,max=24"`
	Combustible      int     `json:"combustible" validate:"min=0"`
	AceiteCadena     int     `json:"aceite_cadena" validate:"min=0"`
	Acta             string  `json:"acta"`
	Rodal            string  `json:"rodal"`
	Predio           string  `json:"predio"`
	M3               int     `json:"m3" validate:"min=0"`
	Carros           int     `json:"carros" validate:"min=0"`
	TnDespachadas    float64 `json:"tn_despachadas" validate:"min=0"`
	Has              float64 `json:"has" validate:"min=0"`
	Produccion       float64 `json:"produccion" validate:"min=0"`
	Plantas          int     `json:"plantas" validate:"min=0"`
	MtrsRecorridos   int     `json:"mtrs_recorridos" validate:"min=0"`
	KmCarreteo       float64 `json:"km_carreteo" validate:"min=0"`
	KmPerfilado      float64 `json:"km_perfilado" validate:"min=0"`
	HrDisposicion    float64 `json:"hr_disposicion" validate:"min=0"`
	HrsNoOp          int     `json:"hrs_no_op" validate:"min=0"`
	MotivoNoOp       string  `json:"motivo_no_op"`
	Observaciones    string  `json:"observaciones"`
	UnidadProduccion string  `json:"unidad_produccion"`
}

// TableroResponse echoes a created production record, assigned id included.
type TableroResponse struct {
	ID               int     `json:"id"`
	UN               string  `json:"UN"`
	Operacion        string  `json:"operacion"`
	Fecha            string  `json:"fecha"`
	Equipo           string  `json:"equipo"`
	Operador         string  `json:"operador"`
	CodOperador      int     `json:"cod_operador"`
	CodEquipo        int     `json:"cod_equipo"`
	HrInicio         float64 `json:"hr_inicio"`
	HrFin            float64 `json:"hr_fin"`
	Combustible      int     `json:"combustible"`
	Acta             string  `json:"acta"`
	Rodal            string  `json:"rodal"`
	Predio           string  `json:"predio"`
	M3               int     `json:"m3"`
	Carros           int     `json:"carros"`
	TnDespachadas    float64 `json:"tn_despachadas"`
	Has              float64 `json:"has"`
	Produccion       float64 `json:"produccion"`
	Plantas          int     `json:"plantas"`
	MtrsRecorridos   int     `json:"mtrs_recorridos"`
	KmCarreteo       float64 `json:"km_carreteo"`
	KmPerfilado      float64 `json:"km_perfilado"`
	HrDisposicion    float64 `json:"hr_disposicion"`
	HrsNoOp          int     `json:"hrs_no_op"`
	Observaciones    string  `json:"observaciones"`
	UnidadProduccion string  `json:"unidad_produccion"`
	Origen           string  `json:"origen"`
}
