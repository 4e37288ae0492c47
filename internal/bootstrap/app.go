package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"discovery-backend/internal/ai"
	openai "discovery-backend/internal/ai/openai"
	"discovery-backend/internal/documents"
	"discovery-backend/internal/pii"
	"discovery-backend/internal/productions"
	"discovery-backend/internal/redactions"
	"discovery-backend/internal/shared/config"
	"discovery-backend/internal/shared/server"
	"discovery-backend/internal/shared/storage/db"
	"discovery-backend/internal/shared/storage/object"
	localstore "discovery-backend/internal/shared/storage/object/local"
	s3store "discovery-backend/internal/shared/storage/object/s3"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	AI     ai.Client

	DocumentsRepo   documents.Repo
	RedactionsRepo  redactions.Repo
	ProductionsRepo productions.Repo

	DocumentsService   *documents.Service
	RedactionsService  *redactions.Service
	ProductionsService *productions.Service
	PIIDetector        *pii.Detector

	DocumentsHandler   *documents.Handler
	RedactionsHandler  *redactions.Handler
	ProductionsHandler *productions.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		AI:     buildAI(cfg),
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            app.Config,
		DocumentHandler:   app.DocumentsHandler,
		RedactionHandler:  app.RedactionsHandler,
		ProductionHandler: app.ProductionsHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			_ = sqlDB.Close()
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

// buildAI returns nil when no provider is configured; callers treat a nil
// client as "collaborator unavailable" and fall back or surface 502.
func buildAI(cfg config.Config) ai.Client {
	if cfg.AIProvider != "openai" {
		return nil
	}
	client, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"), cfg.AIModel, cfg.AITimeout)
	if err != nil {
		log.Printf("bootstrap: AI collaborator not configured: %v", err)
		return nil
	}
	return ai.NewRetrying(client)
}

func buildServices(app *App) {
	var docRepo documents.Repo
	var redRepo redactions.Repo
	var prodRepo productions.Repo

	if app.DB != nil {
		docRepo = &documents.PGRepo{DB: app.DB}
		redRepo = &redactions.PGRepo{DB: app.DB}
		prodRepo = &productions.PGRepo{DB: app.DB}
	} else {
		memDocs := documents.NewMemoryRepo()
		docRepo = memDocs
		redRepo = redactions.NewMemoryRepo(memDocs)
		prodRepo = productions.NewMemoryRepo()
	}

	docSvc := &documents.Service{
		Store: app.Store,
		Repo:  docRepo,
		AI:    app.AI,
	}
	redSvc := &redactions.Service{Repo: redRepo, Docs: docSvc}
	prodSvc := &productions.Service{Repo: prodRepo, Docs: docSvc}
	detector := &pii.Detector{AI: app.AI, Timeout: app.Config.AITimeout}

	app.DocumentsRepo = docRepo
	app.RedactionsRepo = redRepo
	app.ProductionsRepo = prodRepo
	app.DocumentsService = docSvc
	app.RedactionsService = redSvc
	app.ProductionsService = prodSvc
	app.PIIDetector = detector
	app.DocumentsHandler = documents.NewHandler(docSvc, detector)
	app.RedactionsHandler = redactions.NewHandler(redSvc)
	app.ProductionsHandler = productions.NewHandler(prodSvc)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
