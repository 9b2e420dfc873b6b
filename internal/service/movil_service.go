package service

import (
	"context"
	"time"

	"github.com/romanvsc/registro-produccion/internal/dto"
	"github.com/romanvsc/registro-produccion/internal/model"
	"github.com/romanvsc/registro-produccion/internal/repository"
)

// MovilService resolves which vehicle an operator is driving today.
type MovilService interface {
	// MovilPorOperador returns (nil, nil) when no vehicle is assigned —
	// a valid, displayable state for the data-entry form, not an error.
	MovilPorOperador(ctx context.Context, operadorID int, hoy time.Time) (*dto.MovilResponse, error)
}

type movilService struct {
	repo repository.MovilRepository
}

func NewMovilService(repo repository.MovilRepository) MovilService {
	return &movilService{repo: repo}
}

func (s *movilService) MovilPorOperador(ctx context.Context, operadorID int, hoy time.Time) (*dto.MovilResponse, error) {
	fecha := hoy.Format("2006-01-02")

	// 1. Assignment valid today in moviles_operadores.
	asignacion, err := s.repo.FindAsignacionVigente(ctx, operadorID, fecha)
	if err != nil {
		return nil, err
	}

	if asignacion != nil {
		// 2. movil_id is a VARCHAR holding either a patente or a numeric
		// idMovil. The numeric interpretation is attempted only for strings
		// that are entirely decimal digits — int(movil_id) on anything else
		// would fault.
		movil, err := s.repo.FindByPatenteOID(ctx, asignacion.MovilID, esEntero(asignacion.MovilID))
		if err != nil {
			return nil, err
		}
		if movil != nil {
			return mapMovil(movil), nil
		}
		// Resolution failed — fall through to the driver-id lookup rather
		// than failing outright.
	}

	// 3. Fallback: moviles.idChofer.
	movil, err := s.repo.FindByChofer(ctx, operadorID)
	if err != nil {
		return nil, err
	}
	if movil == nil {
		return nil, nil
	}
	return mapMovil(movil), nil
}

func mapMovil(m *model.Movil) *dto.MovilResponse {
	return &dto.MovilResponse{
		IDMovil:  m.IDMovil,
		Patente:  m.Patente,
		Detalle:  m.Detalle,
		IDChofer: m.IDChofer,
	}
}

// esEntero reports whether s is a non-empty string of decimal digits.
func esEntero(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
