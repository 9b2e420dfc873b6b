package model

// FechaAbierta is the legacy open-ended sentinel stored in
// moviles_operadores.hasta for assignments with no end date.
const FechaAbierta = "0000-00-00"

// MovilOperador links an operator to a vehicle over a date range.
// MovilID is a VARCHAR that holds either a patente or a numeric idMovil —
// both interpretations are tried when resolving (see service.MovilService).
//
// Desde/Hasta are kept as ISO yyyy-mm-dd strings rather than time.Time:
// MySQL zero dates cannot scan into a Go time, and string comparison is
// order-preserving for ISO dates, sentinel included.
type MovilOperador struct {
	ID         int    `gorm:"column:id;primaryKey"`
	OperadorID int    `gorm:"column:operador_id"`
	MovilID    string `gorm:"column:movil_id"`
	Desde      string `gorm:"column:desde;type:date"`
	Hasta      string `gorm:"column:hasta;type:date"`
}

func (MovilOperador) TableName() string { return "moviles_operadores" }
