package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/romanvsc/registro-produccion/internal/apierror"
	"github.com/romanvsc/registro-produccion/internal/dto"
	"github.com/romanvsc/registro-produccion/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// ProduccionHandler serves the catalog lookups behind the data-entry form,
// the vehicle-by-operator resolution, and production record creation.
//
// Read-mostly catalogs go through a Redis read-through cache; any cache
// failure degrades silently to the database.
type ProduccionHandler struct {
	svc      service.ProduccionService
	moviles  service.MovilService
	rdb      *redis.Client
	cacheTTL time.Duration
}

func NewProduccionHandler(svc service.ProduccionService, moviles service.MovilService, rdb *redis.Client, cacheTTL time.Duration) *ProduccionHandler {
	return &ProduccionHandler{svc: svc, moviles: moviles, rdb: rdb, cacheTTL: cacheTTL}
}

// ListOperadores GET /produccion/operadores?un_id=N
func (h *ProduccionHandler) ListOperadores(c *gin.Context) {
	unID, ok := optionalIntQuery(c, "un_id")
	if !ok {
		return
	}
	resp, err := h.svc.ListOperadores(c.Request.Context(), unID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListUnidadesNegocio GET /produccion/unidades-negocio
func (h *ProduccionHandler) ListUnidadesNegocio(c *gin.Context) {
	serveCached(h, c, "catalogo:unidades-negocio", func(ctx context.Context) ([]dto.UnidadNegocioResponse, error) {
		return h.svc.ListUnidadesNegocio(ctx)
	})
}

// ListTiposProceso GET /produccion/tipo-proceso?un_id=N
func (h *ProduccionHandler) ListTiposProceso(c *gin.Context) {
	unID, err := strconv.Atoi(c.Query("un_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parametro 'un_id' requerido"))
		return
	}
	resp, svcErr := h.svc.ListTiposProceso(c.Request.Context(), unID)
	if svcErr != nil {
		c.Error(svcErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListTiposProcesoAll GET /produccion/tipos-proceso-all
func (h *ProduccionHandler) ListTiposProcesoAll(c *gin.Context) {
	serveCached(h, c, "catalogo:tipos-proceso", func(ctx context.Context) ([]dto.TipoProcesoResponse, error) {
		return h.svc.ListTiposProcesoAll(ctx)
	})
}

// MovilByOperador GET /produccion/movil-by-operador/:operador_id
// Responds 200 with the vehicle object, or 200 with JSON null when the
// operator has no vehicle today — a valid state for the form, not an error.
func (h *ProduccionHandler) MovilByOperador(c *gin.Context) {
	operadorID, err := strconv.Atoi(c.Param("operador_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID de operador invalido"))
		return
	}

	movil, svcErr := h.moviles.MovilPorOperador(c.Request.Context(), operadorID, time.Now())
	if svcErr != nil {
		c.Error(svcErr)
		return
	}
	c.JSON(http.StatusOK, movil)
}

// ListActas GET /produccion/actas
func (h *ProduccionHandler) ListActas(c *gin.Context) {
	serveCached(h, c, "catalogo:actas", func(ctx context.Context) ([]dto.ActaResponse, error) {
		return h.svc.ListActas(ctx)
	})
}

// ListPredios GET /produccion/predios
func (h *ProduccionHandler) ListPredios(c *gin.Context) {
	serveCached(h, c, "catalogo:predios", func(ctx context.Context) ([]dto.PredioResponse, error) {
		return h.svc.ListPredios(ctx)
	})
}

// ListRodales GET /produccion/rodales?predio_id=N
func (h *ProduccionHandler) ListRodales(c *gin.Context) {
	predioID, ok := optionalIntQuery(c, "predio_id")
	if !ok {
		return
	}
	resp, err := h.svc.ListRodales(c.Request.Context(), predioID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear POST /produccion/
func (h *ProduccionHandler) Crear(c *gin.Context) {
	var req dto.CrearTableroRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrFechaInvalida) {
			c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// serveCached is a read-through cache over a parameterless catalog listing.
func serveCached[T any](h *ProduccionHandler, c *gin.Context, key string, fetch func(context.Context) ([]T, error)) {
	ctx := c.Request.Context()

	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, key).Bytes(); err == nil {
			var resp []T
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	resp, err := fetch(ctx)
	if err != nil {
		c.Error(err)
		return
	}

	if h.rdb != nil {
		if payload, err := json.Marshal(resp); err == nil {
			h.rdb.Set(ctx, key, payload, h.cacheTTL)
		}
	}
	c.JSON(http.StatusOK, resp)
}
