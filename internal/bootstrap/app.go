// Package bootstrap wires configuration into stores, model clients,
// repositories, services and the HTTP router.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"jd-backend/internal/companies"
	"jd-backend/internal/jobdescriptions"
	"jd-backend/internal/llm"
	openai "jd-backend/internal/llm/openai"
	"jd-backend/internal/services/health"
	"jd-backend/internal/shared/auth"
	"jd-backend/internal/shared/config"
	"jd-backend/internal/shared/server"
	"jd-backend/internal/shared/server/middleware"
	"jd-backend/internal/shared/storage/db"
	"jd-backend/internal/shared/storage/object"
	localstore "jd-backend/internal/shared/storage/object/local"
	s3store "jd-backend/internal/shared/storage/object/s3"
)

// App holds the wired dependencies of the API process.
type App struct {
	Config    config.Config
	Router    *gin.Engine
	DB        *sql.DB
	Store     object.Store
	LLM       llm.Client
	Companies *companies.Service
	JDs       *jobdescriptions.Service
}

// Pipeline is the model-backed part of the app, used by the CLI.
type Pipeline struct {
	Extractor *jobdescriptions.Extractor
	Enhancer  *jobdescriptions.Enhancer
}

// Build connects every dependency and constructs the router.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	client, err := BuildLLM(cfg)
	if err != nil {
		return nil, err
	}
	signer, err := auth.NewSigner(cfg.JWTSecret, cfg.Env == "production")
	if err != nil {
		return nil, err
	}

	var (
		companyRepo companies.Repo
		jdRepo      jobdescriptions.Repo
	)
	if sqlDB != nil {
		companyRepo = &companies.PGRepo{DB: sqlDB}
		jdRepo = &jobdescriptions.PGRepo{DB: sqlDB}
	} else {
		companyRepo = companies.NewMemoryRepo()
		jdRepo = jobdescriptions.NewMemoryRepo()
	}

	companySvc := companies.NewService(companyRepo)
	jdSvc := &jobdescriptions.Service{
		Store:     store,
		Extractor: jobdescriptions.NewExtractor(client),
		Enhancer:  jobdescriptions.NewEnhancer(client),
		Repo:      jdRepo,
		Companies: companySvc,
		Now:       time.Now,
	}

	app := &App{
		Config:    cfg,
		DB:        sqlDB,
		Store:     store,
		LLM:       client,
		Companies: companySvc,
		JDs:       jdSvc,
	}
	var pinger health.Pinger
	if sqlDB != nil {
		pinger = sqlDB
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		Verifier:        signer,
		JobDescriptions: jobdescriptions.NewHandler(jdSvc),
		Companies:       companies.NewHandler(companySvc),
		Limiter:         middleware.NewRateLimiter(nil),
		Health:          health.NewService(pinger, cfg.ObjectStoreType, cfg.LLMProvider),
	})
	return app, nil
}

// BuildPipeline constructs the extractor and enhancer without storage or a database.
func BuildPipeline(cfg config.Config) (*Pipeline, error) {
	client, err := BuildLLM(cfg)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		Extractor: jobdescriptions.NewExtractor(client),
		Enhancer:  jobdescriptions.NewEnhancer(client),
	}, nil
}

// BuildLLM picks the model client for cfg.LLMProvider. "none" and an
// unconfigured dev environment get the placeholder.
func BuildLLM(cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "openai":
		if strings.TrimSpace(cfg.OpenAIAPIKey) == "" && isDevLike(cfg.Env) {
			log.Printf("bootstrap: OPENAI_API_KEY empty; model calls will fail with llm_unavailable")
			return llm.PlaceholderClient{}, nil
		}
		return openai.NewClient(openai.Options{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.LLMModel,
			BaseURL: cfg.LLMBaseURL,
			Timeout: cfg.LLMTimeout,
		})
	case "", "none", "placeholder":
		return llm.PlaceholderClient{}, nil
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER %q", cfg.LLMProvider)
	}
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, db.ErrEmptyURL
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err == nil {
		err = db.RunMigrations(ctx, sqlDB)
		if err != nil {
			_ = sqlDB.Close()
		}
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database unavailable; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.Store, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, s3store.Options{
			Region:   cfg.AWSRegion,
			Bucket:   cfg.S3Bucket,
			Prefix:   cfg.S3Prefix,
			KMSKeyID: cfg.SSEKMSKeyID,
		})
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local", "test":
		return true
	default:
		return false
	}
}
