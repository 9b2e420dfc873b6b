package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/romanvsc/registro-produccion/internal/config"
	"github.com/romanvsc/registro-produccion/internal/dto"
	"github.com/romanvsc/registro-produccion/internal/middleware"
	"github.com/romanvsc/registro-produccion/internal/model"
	"github.com/romanvsc/registro-produccion/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testOrigin = "http://localhost:5173"
	testSecret = "test_jwt_secret_32_chars_minimum!"
)

// stubDB implements every repository interface over in-memory slices, so the
// full handler→service stack runs without MySQL.
type stubDB struct {
	personal     []model.Personal
	unidades     []model.UnidadNegocio
	tipos        []model.TipoDeProceso
	asignaciones []model.MovilOperador
	moviles      []model.Movil
	actas        []model.Acta
	predios      []model.Predio
	rodales      []model.Rodal
	registros    []model.TableroProduccion
}

func (s *stubDB) ListOperadores(_ context.Context, unID *int) ([]model.Personal, error) {
	var out []model.Personal
	for _, p := range s.personal {
		if p.Activo != 1 {
			continue
		}
		if unID != nil && p.UnidadNegocio != *unID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *stubDB) FindByDNI(_ context.Context, dni string) (*model.Personal, error) {
	for i := range s.personal {
		p := s.personal[i]
		if p.Activo == 1 && p.DNI != nil && *p.DNI == dni {
			return &p, nil
		}
	}
	return nil, errors.New("record not found")
}

func (s *stubDB) ListActivas(_ context.Context) ([]model.UnidadNegocio, error) {
	return s.unidades, nil
}

func (s *stubDB) ListByUnidad(_ context.Context, _ int) ([]model.TipoDeProceso, error) {
	return s.tipos, nil
}

func (s *stubDB) ListActivos(_ context.Context) ([]model.TipoDeProceso, error) {
	return s.tipos, nil
}

func (s *stubDB) FindAsignacionVigente(_ context.Context, operadorID int, hoy string) (*model.MovilOperador, error) {
	for i := range s.asignaciones {
		a := s.asignaciones[i]
		if a.OperadorID == operadorID && a.Desde <= hoy && (a.Hasta >= hoy || a.Hasta == model.FechaAbierta) {
			return &a, nil
		}
	}
	return nil, nil
}

func (s *stubDB) FindByPatenteOID(_ context.Context, movilID string, _ bool) (*model.Movil, error) {
	for i := range s.moviles {
		if s.moviles[i].Activo == 1 && s.moviles[i].Patente == movilID {
			return &s.moviles[i], nil
		}
	}
	return nil, nil
}

func (s *stubDB) FindByChofer(_ context.Context, operadorID int) (*model.Movil, error) {
	for i := range s.moviles {
		if s.moviles[i].Activo == 1 && s.moviles[i].IDChofer == operadorID {
			return &s.moviles[i], nil
		}
	}
	return nil, nil
}

func (s *stubDB) ListActas(_ context.Context) ([]model.Acta, error)     { return s.actas, nil }
func (s *stubDB) ListPredios(_ context.Context) ([]model.Predio, error) { return s.predios, nil }

func (s *stubDB) ListRodales(_ context.Context, predioID *int) ([]model.Rodal, error) {
	if predioID == nil {
		return s.rodales, nil
	}
	var out []model.Rodal
	for _, r := range s.rodales {
		if r.IDPredio == *predioID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubDB) Create(_ context.Context, registro *model.TableroProduccion) error {
	maxID := 0
	for _, r := range s.registros {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	registro.ID = maxID + 1
	s.registros = append(s.registros, *registro)
	return nil
}

func newTestRouter(db *stubDB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWTSecret: testSecret, JWTExpirationHours: 12}

	r := gin.New()
	r.Use(middleware.CORS([]string{testOrigin}))
	r.Use(middleware.Recovery())
	r.Use(middleware.ErrorHandler())

	authSvc := service.NewAuthService(db, cfg)
	movilSvc := service.NewMovilService(db)
	produccionSvc := service.NewProduccionService(db, db, db, db, db)

	authH := NewAuthHandler(authSvc)
	produccionH := NewProduccionHandler(produccionSvc, movilSvc, nil, 0)

	r.POST("/auth/login", authH.Login)
	prod := r.Group("/produccion")
	{
		prod.GET("/operadores", produccionH.ListOperadores)
		prod.GET("/unidades-negocio", produccionH.ListUnidadesNegocio)
		prod.GET("/movil-by-operador/:operador_id", produccionH.MovilByOperador)
		prod.GET("/rodales", produccionH.ListRodales)
		prod.POST("/", produccionH.Crear)
	}

	r.GET("/boom", func(c *gin.Context) { panic("fallo interno") })
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", testOrigin)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func crearPayload() dto.CrearTableroRequest {
	return dto.CrearTableroRequest{
		UN:          "Cosecha",
		Operacion:   "Volteo",
		Fecha:       time.Now().AddDate(0, 0, -1).Format("2006-01-02"),
		Equipo:      "ABC123 Harvester",
		Operador:    "Perez Juan",
		CodOperador: 42,
		CodEquipo:   7,
		M3:          120,
	}
}

func TestListRodales_FiltroPredio(t *testing.T) {
	db := &stubDB{rodales: []model.Rodal{
		{IDRodal: 1, Rodal: "R-01", IDPredio: 10},
		{IDRodal: 2, Rodal: "R-02", IDPredio: 20},
	}}
	r := newTestRouter(db)

	w := doRequest(t, r, http.MethodGet, "/produccion/rodales?predio_id=10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var filtrados []dto.RodalResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &filtrados))
	require.Len(t, filtrados, 1)
	assert.Equal(t, 10, filtrados[0].IDPredio)

	w = doRequest(t, r, http.MethodGet, "/produccion/rodales", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var todos []dto.RodalResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &todos))
	assert.Len(t, todos, 2)

	w = doRequest(t, r, http.MethodGet, "/produccion/rodales?predio_id=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMovilByOperador_ObjetoONull(t *testing.T) {
	db := &stubDB{
		asignaciones: []model.MovilOperador{
			{ID: 1, OperadorID: 42, MovilID: "ABC123", Desde: "2024-01-01", Hasta: model.FechaAbierta},
		},
		moviles: []model.Movil{
			{IDMovil: 7, Patente: "ABC123", Detalle: "Harvester", IDChofer: 42, Activo: 1},
		},
	}
	r := newTestRouter(db)

	w := doRequest(t, r, http.MethodGet, "/produccion/movil-by-operador/42", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var movil dto.MovilResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &movil))
	assert.Equal(t, "ABC123", movil.Patente)

	// No vehicle: 200 with JSON null, not an error status.
	w = doRequest(t, r, http.MethodGet, "/produccion/movil-by-operador/999", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())

	w = doRequest(t, r, http.MethodGet, "/produccion/movil-by-operador/nope", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCrearProduccion_Registro201(t *testing.T) {
	db := &stubDB{}
	r := newTestRouter(db)

	w := doRequest(t, r, http.MethodPost, "/produccion/", crearPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.TableroResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.ID)
	assert.Equal(t, "web", resp.Origen)
	require.Len(t, db.registros, 1)
	assert.False(t, db.registros[0].FechaHora.IsZero())
}

func TestCrearProduccion_ValidacionDeCampos(t *testing.T) {
	r := newTestRouter(&stubDB{})

	payload := crearPayload()
	payload.Fecha = "2025-13-40"
	w := doRequest(t, r, http.MethodPost, "/produccion/", payload)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Fecha")

	payload = crearPayload()
	payload.M3 = -5
	w = doRequest(t, r, http.MethodPost, "/produccion/", payload)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "M3")
}

func TestLogin_PorDNI(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secreta"), 12)
	require.NoError(t, err)
	h := string(hash)
	dni := "12345678"
	db := &stubDB{personal: []model.Personal{
		{IDPersonal: 42, Nombre: "Perez Juan", DNI: &dni, Password: &h, Activo: 1},
	}}
	r := newTestRouter(db)

	w := doRequest(t, r, http.MethodPost, "/auth/login", dto.LoginRequest{DNI: dni, Password: "secreta"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, dni, resp.User.DNI)

	w = doRequest(t, r, http.MethodPost, "/auth/login", dto.LoginRequest{DNI: dni, Password: "mala"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotContains(t, w.Body.String(), "user")
}

func TestPanic_RespondeConCabecerasCORS(t *testing.T) {
	// An unhandled fault must still carry the cross-origin headers, or the
	// browser hides the error from the frontend entirely.
	r := newTestRouter(&stubDB{})

	w := doRequest(t, r, http.MethodGet, "/boom", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, testOrigin, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Body.String(), "Error interno del servidor")
}

func TestOperadores_FiltroUnidadNegocio(t *testing.T) {
	d1, d2 := "11111111", "22222222"
	db := &stubDB{personal: []model.Personal{
		{IDPersonal: 1, Nombre: "Ana", DNI: &d1, Activo: 1, UnidadNegocio: 1},
		{IDPersonal: 2, Nombre: "Bruno", DNI: &d2, Activo: 1, UnidadNegocio: 2},
		{IDPersonal: 3, Nombre: "Dado de baja", Activo: 0, UnidadNegocio: 1},
	}}
	r := newTestRouter(db)

	w := doRequest(t, r, http.MethodGet, "/produccion/operadores?un_id=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var ops []dto.OperadorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ops))
	require.Len(t, ops, 1)
	assert.Equal(t, "Ana", ops[0].Nombre)

	w = doRequest(t, r, http.MethodGet, "/produccion/operadores", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ops))
	assert.Len(t, ops, 2)
}
