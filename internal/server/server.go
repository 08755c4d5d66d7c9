// Package server wires the companion's HTTP API: route table,
// middleware stack and server lifecycle.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/quinfall/companion/internal/catalog"
	"github.com/quinfall/companion/internal/crafting"
	"github.com/quinfall/companion/internal/gamesync"
	"github.com/quinfall/companion/internal/handler"
	"github.com/quinfall/companion/internal/ledger"
	"github.com/quinfall/companion/internal/logger"
	"github.com/quinfall/companion/internal/market"
	"github.com/quinfall/companion/internal/metrics"
	"github.com/quinfall/companion/internal/player"
	"github.com/quinfall/companion/internal/recipe"
	"github.com/quinfall/companion/internal/storage"
)

// maxRequestBody bounds request bodies; the largest legitimate payload
// is a craft request of a few hundred bytes.
const maxRequestBody = 1 << 20

type Server struct {
	httpServer      *http.Server
	ledgerStore     *ledger.Store
	storageService  storage.Service
	playerService   player.Service
	craftingService crafting.Service
	syncService     gamesync.Service
	marketService   market.Service
}

// NewServer creates a new Server instance bound to listenAddr
func NewServer(listenAddr string, ledgerStore *ledger.Store, storageService storage.Service, playerService player.Service, craftingService crafting.Service, syncService gamesync.Service, marketService market.Service, cat *catalog.Catalog, book *recipe.Book, p *player.Player) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(responseHeaders)
	r.Use(requestSizeLimit(maxRequestBody))
	r.Use(metrics.Middleware)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	// Health check routes
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(ledgerStore))

	// Version endpoint (for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// Storage routes
	r.Get("/storage", handler.HandleGetStorage(storageService)) // Handle /storage exactly
	r.Route("/storage", func(r chi.Router) {
		r.Post("/move", handler.HandleMoveItem(storageService))
		r.Post("/reset", handler.HandleResetStorage(storageService))
		r.Get("/find/{material}", handler.HandleFindMaterial(storageService))
		r.Get("/{location}", handler.HandleGetLocation(storageService))
		r.Post("/{location}/unlock", handler.HandleUnlockSlots(storageService))
	})

	// Player profile routes
	r.Get("/player", handler.HandleGetPlayer(playerService, p)) // Handle /player exactly
	r.Route("/player", func(r chi.Router) {
		r.Put("/skills/{profession}", handler.HandleSetSkillLevel(playerService, p))
		r.Put("/tools/{tool}", handler.HandleSetToolLevel(playerService, p))
		r.Put("/tool-tiers/{profession}", handler.HandleSetToolTier(playerService, p))
	})

	// Recipe routes
	r.Get("/recipes", handler.HandleGetRecipes(book))
	r.Get("/recipes/{name}", handler.HandleGetRecipe(book))

	// Crafting routes
	r.Post("/craft", handler.HandleCraftItem(craftingService, p))
	r.Post("/craft/check", handler.HandleCraftCheck(craftingService, p))

	// Material catalog routes
	r.Get("/materials", handler.HandleGetMaterials(cat))

	// Market routes
	r.Route("/market", func(r chi.Router) {
		r.Get("/prices", handler.HandleGetPrices(marketService))
		r.Get("/history/{material}", handler.HandleGetPriceHistory(marketService))
	})

	// Sync routes
	r.Post("/sync", handler.HandleSyncNow(syncService))
	r.Get("/sync/status", handler.HandleSyncStatus(syncService))

	// Persistence routes
	r.Post("/save", handler.HandleSave(playerService, p))
	r.Post("/load", handler.HandleLoad(playerService, p))

	// Ledger routes
	r.Get("/ledger/operations", handler.HandleGetOperations(ledgerStore))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              listenAddr,
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
			IdleTimeout:       2 * time.Minute,
		},
		ledgerStore:     ledgerStore,
		storageService:  storageService,
		playerService:   playerService,
		craftingService: craftingService,
		syncService:     syncService,
		marketService:   marketService,
	}
}

// Start begins serving and blocks until the listener closes.
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop drains in-flight requests until the context expires.
func (s *Server) Stop(ctx context.Context) error {
	logger.Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
