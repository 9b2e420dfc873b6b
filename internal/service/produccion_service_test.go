package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/romanvsc/registro-produccion/internal/dto"
	"github.com/romanvsc/registro-produccion/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTableroRepo reproduces the repository contract: id assignment is
// serialized, so concurrent creates must never share an id.
type stubTableroRepo struct {
	mu        sync.Mutex
	registros []model.TableroProduccion
}

func (r *stubTableroRepo) Create(_ context.Context, registro *model.TableroProduccion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	maxID := 0
	for _, reg := range r.registros {
		if reg.ID > maxID {
			maxID = reg.ID
		}
	}
	registro.ID = maxID + 1
	r.registros = append(r.registros, *registro)
	return nil
}

type stubUbicacionRepo struct {
	actas   []model.Acta
	predios []model.Predio
	rodales []model.Rodal
}

func (r *stubUbicacionRepo) ListActas(_ context.Context) ([]model.Acta, error)     { return r.actas, nil }
func (r *stubUbicacionRepo) ListPredios(_ context.Context) ([]model.Predio, error) { return r.predios, nil }
func (r *stubUbicacionRepo) ListRodales(_ context.Context, predioID *int) ([]model.Rodal, error) {
	if predioID == nil {
		return r.rodales, nil
	}
	var out []model.Rodal
	for _, rod := range r.rodales {
		if rod.IDPredio == *predioID {
			out = append(out, rod)
		}
	}
	return out, nil
}

func validRequest() dto.CrearTableroRequest {
	return dto.CrearTableroRequest{
		UN:          "Cosecha",
		Operacion:   "Volteo",
		Fecha:       "2025-08-20",
		Equipo:      "ABC123 Harvester",
		Operador:    "Perez Juan",
		CodOperador: 42,
		CodEquipo:   7,
		HrInicio:    7.5,
		HrFin:       16,
		M3:          180,
	}
}

func newTableroService(tablero *stubTableroRepo) *produccionService {
	svc := NewProduccionService(nil, nil, nil, nil, tablero).(*produccionService)
	svc.ahora = func() time.Time { return time.Date(2025, 8, 21, 10, 30, 0, 0, time.UTC) }
	return svc
}

func TestCrear_AsignaIDYEstampaOrigen(t *testing.T) {
	repo := &stubTableroRepo{}
	svc := newTableroService(repo)

	resp, err := svc.Crear(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, resp.ID)
	assert.Equal(t, "web", resp.Origen)
	assert.Equal(t, "2025-08-20", resp.Fecha)

	require.Len(t, repo.registros, 1)
	guardado := repo.registros[0]
	assert.Equal(t, OrigenWeb, guardado.Origen)
	assert.False(t, guardado.FechaHora.IsZero())
	assert.Equal(t, 42, guardado.CodOperador)
}

func TestCrear_IDsConsecutivos(t *testing.T) {
	repo := &stubTableroRepo{}
	svc := newTableroService(repo)

	r1, err := svc.Crear(context.Background(), validRequest())
	require.NoError(t, err)
	r2, err := svc.Crear(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, r1.ID+1, r2.ID)
}

func TestCrear_FechaInvalida(t *testing.T) {
	svc := newTableroService(&stubTableroRepo{})

	casos := []string{"", "20-08-2025", "2025-13-40", "ayer"}
	for _, fecha := range casos {
		req := validRequest()
		req.Fecha = fecha
		_, err := svc.Crear(context.Background(), req)
		assert.ErrorIs(t, err, ErrFechaInvalida, "fecha %q", fecha)
	}
}

func TestCrear_FechaFuturaRechazada(t *testing.T) {
	svc := newTableroService(&stubTableroRepo{})

	req := validRequest()
	req.Fecha = "2025-09-15" // well past the frozen "today" of 2025-08-21
	_, err := svc.Crear(context.Background(), req)
	assert.ErrorIs(t, err, ErrFechaInvalida)
}

func TestCrear_ConcurrenciaIDsDistintos(t *testing.T) {
	// N concurrent submissions must yield N distinct ids now that the
	// repository reserves the next id inside one serialized transaction.
	repo := &stubTableroRepo{}
	svc := newTableroService(repo)

	const n = 25
	ids := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := svc.Crear(context.Background(), validRequest())
			require.NoError(t, err)
			ids <- resp.ID
		}()
	}
	wg.Wait()
	close(ids)

	vistos := make(map[int]bool, n)
	for id := range ids {
		assert.False(t, vistos[id], "id %d repetido", id)
		vistos[id] = true
	}
	assert.Len(t, vistos, n)
}

func TestListRodales_FiltraPorPredio(t *testing.T) {
	ubicaciones := &stubUbicacionRepo{
		rodales: []model.Rodal{
			{IDRodal: 1, Rodal: "R-01", IDPredio: 10},
			{IDRodal: 2, Rodal: "R-02", IDPredio: 10},
			{IDRodal: 3, Rodal: "R-03", IDPredio: 20},
		},
	}
	svc := NewProduccionService(nil, nil, nil, ubicaciones, nil)

	predio := 10
	filtrados, err := svc.ListRodales(context.Background(), &predio)
	require.NoError(t, err)
	assert.Len(t, filtrados, 2)
	for _, r := range filtrados {
		assert.Equal(t, 10, r.IDPredio)
	}

	todos, err := svc.ListRodales(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, todos, 3)
}

func TestListActas_ExponeReferenciaLaxaARodal(t *testing.T) {
	// rodal_id is an unvalidated reference; an acta pointing at a missing
	// rodal still lists fine.
	ubicaciones := &stubUbicacionRepo{
		actas: []model.Acta{{ID: 1, Numero: "A-100", RodalID: 9999}},
	}
	svc := NewProduccionService(nil, nil, nil, ubicaciones, nil)

	actas, err := svc.ListActas(context.Background())
	require.NoError(t, err)
	require.Len(t, actas, 1)
	assert.Equal(t, 9999, actas[0].RodalID)
}
