package router

import (
	"time"

	"github.com/romanvsc/registro-produccion/internal/config"
	"github.com/romanvsc/registro-produccion/internal/handler"
	"github.com/romanvsc/registro-produccion/internal/middleware"
	"github.com/romanvsc/registro-produccion/internal/repository"
	"github.com/romanvsc/registro-produccion/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters: CORS before Recovery so error
	// responses keep the cross-origin headers)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.Origins()))
	r.Use(middleware.Recovery())
	r.Use(middleware.ErrorHandler())

	// ── Repositories ─────────────────────────────────────────────────────────
	personalRepo := repository.NewPersonalRepository(db)
	unidadRepo := repository.NewUnidadNegocioRepository(db)
	tipoRepo := repository.NewTipoProcesoRepository(db)
	movilRepo := repository.NewMovilRepository(db)
	ubicacionRepo := repository.NewUbicacionRepository(db)
	tableroRepo := repository.NewTableroRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(personalRepo, cfg)
	movilSvc := service.NewMovilService(movilRepo)
	produccionSvc := service.NewProduccionService(personalRepo, unidadRepo, tipoRepo, ubicacionRepo, tableroRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	cacheTTL := time.Duration(cfg.CatalogCacheTTL) * time.Minute
	produccionH := handler.NewProduccionHandler(produccionSvc, movilSvc, rdb, cacheTTL)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// The legacy frontend populates its form before login, so the catalog
	// routes stay open; login gates record ownership client-side.
	prod := r.Group("/produccion")
	{
		prod.GET("/operadores", produccionH.ListOperadores)
		prod.GET("/unidades-negocio", produccionH.ListUnidadesNegocio)
		prod.GET("/tipo-proceso", produccionH.ListTiposProceso)
		prod.GET("/tipos-proceso-all", produccionH.ListTiposProcesoAll)
		prod.GET("/movil-by-operador/:operador_id", produccionH.MovilByOperador)
		prod.GET("/actas", produccionH.ListActas)
		prod.GET("/predios", produccionH.ListPredios)
		prod.GET("/rodales", produccionH.ListRodales)
		prod.POST("/", produccionH.Crear)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
