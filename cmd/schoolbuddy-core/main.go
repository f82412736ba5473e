package main

// @title           SchoolBuddy Core API
// @version         1.0
// @description     RAG assistant for multicultural families navigating Korean school life. Ingests school notices, answers questions grounded in them, and relays support-program listings.

// @contact.name   SchoolBuddy Labs
// @contact.url    https://github.com/schoolbuddy-labs/schoolbuddy-core/issues

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Format: "Bearer {token}"

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/schoolbuddy-labs/schoolbuddy-core/docs"
	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/adapters/driven/ai"
	authadapter "github.com/schoolbuddy-labs/schoolbuddy-core/internal/adapters/driven/auth"
	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/adapters/driven/directory"
	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/adapters/driven/fs"
	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/adapters/driven/memory"
	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/adapters/driven/pdf"
	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/adapters/driven/postgres"
	redisadapter "github.com/schoolbuddy-labs/schoolbuddy-core/internal/adapters/driven/redis"
	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/adapters/driven/s3"
	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/adapters/driving/http"
	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/config"
	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/ports/driven"
	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/services"
)

var version = "dev"

func main() {
	// .env is for local development; missing files are fine
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)
	logger.Info("schoolbuddy-core starting", "version", version)

	ctx := context.Background()

	// ===== PostgreSQL =====
	dbCfg := postgres.DefaultConfig(cfg.Database.URL, cfg.OpenAI.EmbeddingDimensions)
	dbCfg.MaxOpenConns = cfg.Database.MaxOpenConns
	dbCfg.MaxIdleConns = cfg.Database.MaxIdleConns
	dbCfg.ConnMaxLifetime = cfg.Database.ConnMaxLifetime

	db, err := postgres.Connect(ctx, dbCfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.InitSchema(ctx, cfg.OpenAI.EmbeddingDimensions); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}
	logger.Info("database ready", "dimensions", cfg.OpenAI.EmbeddingDimensions)

	// ===== Object store =====
	var objects driven.ObjectStore
	switch cfg.Storage.Backend {
	case "s3":
		objects, err = s3.New(ctx, s3.Config{
			Bucket:       cfg.Storage.Bucket,
			Region:       cfg.Storage.Region,
			Endpoint:     cfg.Storage.Endpoint,
			UsePathStyle: cfg.Storage.UsePathStyle,
		})
		if err != nil {
			log.Fatalf("Failed to create S3 store: %v", err)
		}
		logger.Info("using S3 object store", "bucket", cfg.Storage.Bucket)
	default:
		objects, err = fs.New(cfg.Storage.Dir)
		if err != nil {
			log.Fatalf("Failed to create filesystem store: %v", err)
		}
		logger.Info("using filesystem object store", "dir", cfg.Storage.Dir)
	}

	// ===== Translation cache (Redis if configured) =====
	var cache driven.TranslationCache
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatalf("Failed to parse Redis URL: %v", err)
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer client.Close()
		cache = redisadapter.NewTranslationCache(client)
		logger.Info("using Redis translation cache")
	} else {
		cache = memory.NewTranslationCache()
		logger.Info("using in-process translation cache")
	}

	// ===== AI clients =====
	embedder, err := ai.NewOpenAIEmbedding(
		cfg.OpenAI.APIKey,
		cfg.OpenAI.EmbeddingModel,
		cfg.OpenAI.BaseURL,
		cfg.OpenAI.EmbeddingDimensions,
	)
	if err != nil {
		log.Fatalf("Failed to create embedding client: %v", err)
	}

	llm, err := ai.NewOpenAILLM(ai.LLMConfig{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
		Model:   cfg.OpenAI.ChatModel,
	})
	if err != nil {
		log.Fatalf("Failed to create LLM client: %v", err)
	}

	// ===== Remaining driven adapters =====
	documents := postgres.NewDocumentStore(db, cfg.OpenAI.EmbeddingDimensions)
	interactions := postgres.NewInteractionStore(db)
	extractor := pdf.NewExtractor()
	tokens := authadapter.NewAdapter(cfg.Auth.JWTSecret)
	programs := directory.NewStatic(cfg.ProgramList())

	// ===== Core services =====
	ingestService := services.NewIngestService(services.IngestConfig{
		Objects:   objects,
		Extractor: extractor,
		LLM:       llm,
		Embedder:  embedder,
		Documents: documents,
		Logger:    logger,
	})
	answerService := services.NewAnswerService(embedder, documents, llm, logger)
	noticeService := services.NewNoticeService(objects, llm, cache, 0, logger)
	programService := services.NewProgramService(programs, interactions, logger)
	authService := services.NewAuthService(tokens, cfg.Auth.AdminPasswordHash, cfg.Auth.TokenTTL)

	// ===== HTTP server =====
	server := http.NewServer(http.Config{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		Version:        version,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		MaxUploadBytes: cfg.MaxUploadBytes(),
	}, authService, ingestService, answerService, noticeService, programService, db, logger)

	if err := server.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
