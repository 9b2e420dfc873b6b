package service

import (
	"context"
	"errors"
	"time"

	"github.com/romanvsc/registro-produccion/internal/dto"
	"github.com/romanvsc/registro-produccion/internal/model"
	"github.com/romanvsc/registro-produccion/internal/repository"
)

// ErrFechaInvalida rejects malformed or out-of-range production dates before
// anything touches the database.
var ErrFechaInvalida = errors.New("campo 'fecha' invalido: se espera yyyy-mm-dd")

// OrigenWeb tags rows created through this service, distinguishing them from
// records ingested by other channels into the same table.
const OrigenWeb = "web"

// ProduccionService serves the reference catalogs behind the data-entry form
// and persists submitted production records.
type ProduccionService interface {
	ListOperadores(ctx context.Context, unID *int) ([]dto.OperadorResponse, error)
	ListUnidadesNegocio(ctx context.Context) ([]dto.UnidadNegocioResponse, error)
	ListTiposProceso(ctx context.Context, unID int) ([]dto.TipoProcesoResponse, error)
	ListTiposProcesoAll(ctx context.Context) ([]dto.TipoProcesoResponse, error)
	ListActas(ctx context.Context) ([]dto.ActaResponse, error)
	ListPredios(ctx context.Context) ([]dto.PredioResponse, error)
	ListRodales(ctx context.Context, predioID *int) ([]dto.RodalResponse, error)
	Crear(ctx context.Context, req dto.CrearTableroRequest) (*dto.TableroResponse, error)
}

type produccionService struct {
	personal    repository.PersonalRepository
	unidades    repository.UnidadNegocioRepository
	tipos       repository.TipoProcesoRepository
	ubicaciones repository.UbicacionRepository
	tablero     repository.TableroRepository
	ahora       func() time.Time
}

func NewProduccionService(
	personal repository.PersonalRepository,
	unidades repository.UnidadNegocioRepository,
	tipos repository.TipoProcesoRepository,
	ubicaciones repository.UbicacionRepository,
	tablero repository.TableroRepository,
) ProduccionService {
	return &produccionService{
		personal:    personal,
		unidades:    unidades,
		tipos:       tipos,
		ubicaciones: ubicaciones,
		tablero:     tablero,
		ahora:       time.Now,
	}
}

func (s *produccionService) ListOperadores(ctx context.Context, unID *int) ([]dto.OperadorResponse, error) {
	rows, err := s.personal.ListOperadores(ctx, unID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OperadorResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.OperadorResponse{
			IDPersonal:      r.IDPersonal,
			Nombre:          r.Nombre,
			DNI:             r.DNI,
			Encargado:       r.Encargado,
			TipoDeProcesoID: r.TipoDeProcesoID,
		})
	}
	return out, nil
}

func (s *produccionService) ListUnidadesNegocio(ctx context.Context) ([]dto.UnidadNegocioResponse, error) {
	rows, err := s.unidades.ListActivas(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UnidadNegocioResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.UnidadNegocioResponse{
			IDUnidadNegocio: r.IDUnidadNegocio,
			Nombre:          r.Nombre,
		})
	}
	return out, nil
}

func (s *produccionService) ListTiposProceso(ctx context.Context, unID int) ([]dto.TipoProcesoResponse, error) {
	rows, err := s.tipos.ListByUnidad(ctx, unID)
	if err != nil {
		return nil, err
	}
	return mapTipos(rows), nil
}

func (s *produccionService) ListTiposProcesoAll(ctx context.Context) ([]dto.TipoProcesoResponse, error) {
	rows, err := s.tipos.ListActivos(ctx)
	if err != nil {
		return nil, err
	}
	return mapTipos(rows), nil
}

func mapTipos(rows []model.TipoDeProceso) []dto.TipoProcesoResponse {
	out := make([]dto.TipoProcesoResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TipoProcesoResponse{ID: r.ID, Nombre: r.Nombre, Campos: r.Campos})
	}
	return out
}

func (s *produccionService) ListActas(ctx context.Context) ([]dto.ActaResponse, error) {
	rows, err := s.ubicaciones.ListActas(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ActaResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ActaResponse{
			ID:      r.ID,
			Numero:  r.Numero,
			RodalID: r.RodalID,
			Tarifa:  r.Tarifa,
		})
	}
	return out, nil
}

func (s *produccionService) ListPredios(ctx context.Context) ([]dto.PredioResponse, error) {
	rows, err := s.ubicaciones.ListPredios(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PredioResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.PredioResponse{IDPredio: r.IDPredio, Nombre: r.Nombre})
	}
	return out, nil
}

func (s *produccionService) ListRodales(ctx context.Context, predioID *int) ([]dto.RodalResponse, error) {
	rows, err := s.ubicaciones.ListRodales(ctx, predioID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RodalResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.RodalResponse{IDRodal: r.IDRodal, Rodal: r.Rodal, IDPredio: r.IDPredio})
	}
	return out, nil
}

// Crear persists a denormalized production record. Display strings and codes
// arrive pre-resolved by the form; only shape is validated here. The id is
// assigned inside the repository's serialized transaction.
func (s *produccionService) Crear(ctx context.Context, req dto.CrearTableroRequest) (*dto.TableroResponse, error) {
	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		return nil, ErrFechaInvalida
	}
	// A shift can be back-dated but never submitted for a future day.
	if fecha.After(s.ahora().AddDate(0, 0, 1)) {
		return nil, ErrFechaInvalida
	}

	registro := &model.TableroProduccion{
		UN:               req.UN,
		Operacion:        req.Operacion,
		Fecha:            req.Fecha,
		Equipo:           req.Equipo,
		Operador:         req.Operador,
		CodOperador:      req.CodOperador,
		CodEquipo:        req.CodEquipo,
		CodUN:            req.CodUN,
		HrInicio:         req.HrInicio,
		HrFin:            req.HrFin,
		Combustible:      req.Combustible,
		AceiteCadena:     req.AceiteCadena,
		Acta:             req.Acta,
		Rodal:            req.Rodal,
		Predio:           req.Predio,
		M3:               req.M3,
		Carros:           req.Carros,
		TnDespachadas:    req.TnDespachadas,
		Has:              req.Has,
		Produccion:       req.Produccion,
		Plantas:          req.Plantas,
		MtrsRecorridos:   req.MtrsRecorridos,
		KmCarreteo:       req.KmCarreteo,
		KmPerfilado:      req.KmPerfilado,
		HrDisposicion:    req.HrDisposicion,
		HrsNoOp:          req.HrsNoOp,
		MotivoNoOp:       req.MotivoNoOp,
		Observaciones:    req.Observaciones,
		UnidadProduccion: req.UnidadProduccion,
		FechaHora:        s.ahora(),
		Origen:           OrigenWeb,
	}

	if err := s.tablero.Create(ctx, registro); err != nil {
		return nil, err
	}

	return &dto.TableroResponse{
		ID:               registro.ID,
		UN:               registro.UN,
		Operacion:        registro.Operacion,
		Fecha:            registro.Fecha,
		Equipo:           registro.Equipo,
		Operador:         registro.Operador,
		CodOperador:      registro.CodOperador,
		CodEquipo:        registro.CodEquipo,
		HrInicio:         registro.HrInicio,
		HrFin:            registro.HrFin,
		Combustible:      registro.Combustible,
		Acta:             registro.Acta,
		Rodal:            registro.Rodal,
		Predio:           registro.Predio,
		M3:               registro.M3,
		Carros:           registro.Carros,
		TnDespachadas:    registro.TnDespachadas,
		Has:              registro.Has,
		Produccion:       registro.Produccion,
		Plantas:          registro.Plantas,
		MtrsRecorridos:   registro.MtrsRecorridos,
		KmCarreteo:       registro.KmCarreteo,
		KmPerfilado:      registro.KmPerfilado,
		HrDisposicion:    registro.HrDisposicion,
		HrsNoOp:          registro.HrsNoOp,
		Observaciones:    registro.Observaciones,
		UnidadProduccion: registro.UnidadProduccion,
		Origen:           registro.Origen,
	}, nil
}
