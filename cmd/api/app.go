package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dmfierro/ventas-campo/internal/adapter/api/controller"
	"github.com/dmfierro/ventas-campo/internal/adapter/api/route"
	"github.com/dmfierro/ventas-campo/internal/adapter/repository"
	"github.com/dmfierro/ventas-campo/internal/infrastructure/database"
	"github.com/dmfierro/ventas-campo/internal/infrastructure/localstore"
	"github.com/dmfierro/ventas-campo/internal/sincronizacion"
	"github.com/dmfierro/ventas-campo/pkg/auth"
	"github.com/dmfierro/ventas-campo/pkg/logger"
	"github.com/dmfierro/ventas-campo/pkg/middleware"
	"github.com/dmfierro/ventas-campo/pkg/sesion"
)

// App representa la aplicación y sus dependencias
type App struct {
	router     *gin.Engine
	logger     logger.Logger
	db         *database.FirebaseDB
	local      *localstore.Store
	store      *sincronizacion.DataStore
	bootstrap  *sincronizacion.Bootstrap
	engine     *sincronizacion.Engine
	jwtService *auth.JWTService
}

// NewApp crea una nueva instancia de la aplicación
func NewApp(ctx context.Context) (*App, error) {
	log := logger.NewLogger(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"))

	// Conexión con Firebase (Firestore + Auth)
	config := database.NewFirebaseConfigFromEnv()
	db, err := database.NewFirebaseDB(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("error al conectar con firebase: %w", err)
	}

	// Almacén local de persistencia
	rutaLocal := os.Getenv("LOCAL_STORE_PATH")
	if rutaLocal == "" {
		rutaLocal = "ventas-campo.db"
	}
	local, err := localstore.Open(rutaLocal)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("error al abrir el almacén local: %w", err)
	}

	jwtService, err := auth.NewJWTService()
	if err != nil {
		local.Close()
		db.Close()
		return nil, err
	}

	// Repositorios remotos
	repos := sincronizacion.Repositorios{
		Vendedores:  repository.NewVendedorRepository(db.Firestore),
		Clientes:    repository.NewClienteRepository(db.Firestore),
		Productos:   repository.NewProductoRepository(db.Firestore),
		Categorias:  repository.NewCategoriaRepository(db.Firestore),
		Promociones: repository.NewPromocionRepository(db.Firestore),
		Zonas:       repository.NewZonaRepository(db.Firestore),
		Ventas:      repository.NewVentaRepository(db.Firestore),
		Rutas:       repository.NewRutaRepository(db.Firestore),
	}

	// Motor de sincronización y modelo de lectura
	ses := sesion.New()
	store := sincronizacion.NewDataStore()
	notif := sincronizacion.NewMemoriaNotificador()
	engine := sincronizacion.NewEngine(repos, store, local, ses,
		sincronizacion.NewMultiNotificador(sincronizacion.NewLogNotificador(log), notif), log)
	bootstrap := sincronizacion.NewBootstrap(store, local, log)

	// Controllers
	authController := controller.NewAuthController(db.Auth, repos.Vendedores, jwtService, ses, log)
	syncController := controller.NewSyncController(engine, log)
	datosController := controller.NewDatosController(store, notif)

	// Router y middlewares globales
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
	}))

	app := &App{
		router:     router,
		logger:     log,
		db:         db,
		local:      local,
		store:      store,
		bootstrap:  bootstrap,
		engine:     engine,
		jwtService: jwtService,
	}

	api := router.Group("/api/v1")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.SetupAuthRoutes(api, authController, jwtService)
	route.SetupSyncRoutes(api, syncController, jwtService)
	route.SetupDatosRoutes(api, datosController, jwtService)

	return app, nil
}

// Start arranca el servidor HTTP después de cargar los datos locales
func (a *App) Start() error {
	// Publicar lo que haya en el almacén local antes de aceptar tráfico
	a.bootstrap.Cargar()

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("Servidor iniciado", "port", port)
	return a.router.Run(":" + port)
}

// Close libera los recursos de la aplicación
func (a *App) Close() {
	if a.local != nil {
		if err := a.local.Close(); err != nil {
			a.logger.Error("Error al cerrar el almacén local", "error", err)
		}
	}
	if a.db != nil {
		a.db.Close()
	}
}
