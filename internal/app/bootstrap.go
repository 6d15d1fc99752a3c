package app

import (
	"assemblyStatApp/config"
	"assemblyStatApp/internal/domain/repository"
	"assemblyStatApp/internal/domain/service"
	ws "assemblyStatApp/internal/handlers/websocket"
	"assemblyStatApp/internal/infrastructure/process"
	"assemblyStatApp/internal/infrastructure/storage"
	"log"
	"time"
)

// AppContext holds all app dependencies
type AppContext struct {
	Config       *config.Config
	Store        repository.StoreReader
	StatsService *service.StatsService
	Launcher     *process.Launcher
	Publisher    *ws.StatsStreamPublisher
}

// NewApp initializes the app context with all dependencies
func NewApp(cfg *config.Config) (*AppContext, error) {
	app := &AppContext{Config: cfg}

	// Read-only view over the store the simulation writes. The file may
	// not exist yet; that is fine, reads report the empty state.
	store := storage.NewSQLiteRepository(cfg.DBPath)
	app.Store = store
	log.Printf("Store reader initialized (path: %s, exists: %v)", cfg.DBPath, store.StoreExists())

	app.StatsService = service.NewStatsService(store, store)
	log.Println("Statistics service initialized")

	app.Launcher = process.NewLauncher(cfg.SimExecutable, cfg.DataDir,
		time.Duration(cfg.SimTimeout)*time.Second)
	log.Printf("Simulation launcher initialized (executable: %s)", cfg.SimExecutable)

	app.Publisher = ws.NewStatsStreamPublisher(app.StatsService,
		time.Duration(cfg.StreamInterval)*time.Millisecond,
		cfg.WildcardCORS(), cfg.CORSOrigins)
	log.Println("Live feed publisher initialized")

	return app, nil
}

// Cleanup performs graceful shutdown of all components
func (a *AppContext) Cleanup() {
	if a.Publisher != nil {
		log.Println("Closing live feed observers...")
		a.Publisher.Close()
	}
	log.Println("All resources cleaned up")
}
