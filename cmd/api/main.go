package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"marg-ai/internal/config"
	"marg-ai/internal/db"
	"marg-ai/internal/email"
	apihttp "marg-ai/internal/http"
	"marg-ai/internal/llm"
	"marg-ai/internal/quiz"
	"marg-ai/internal/repository"
	"marg-ai/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		logger.Fatal("db schema", zap.Error(err))
	}

	questions, err := quiz.Load()
	if err != nil {
		logger.Fatal("quiz load", zap.Error(err))
	}

	catalog := loadCatalog(ctx, cfg, pool, logger)
	userRepo := repository.NewPgUserRepository(pool)

	mailer := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			mailer = sender
		}
	}

	var llmClient llm.LLMClient
	if cfg.LLMAPIKey != "" {
		llmClient = llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger, llm.WithJSONMode())
	} else {
		logger.Info("llm api key not configured, advisor disabled")
	}

	loginWindow := time.Duration(cfg.LoginWindowMinutes) * time.Minute
	var (
		limiter    = service.NewMemoryAttemptLimiter(loginWindow, cfg.LoginMaxAttempts)
		tokenStore = service.NewMemoryRefreshTokenStore()
	)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()

		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using in-memory stores", zap.Error(err))
		} else {
			limiter = service.NewRedisAttemptLimiter(redisClient, loginWindow, cfg.LoginMaxAttempts)
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
		}
		cancel()
	}

	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}
	jwtSvc := service.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute,
		time.Duration(cfg.JWTRefreshTTLMinutes)*time.Minute,
		tokenStore,
	)

	userSvc := service.NewUserService(logger, userRepo, limiter)
	assessmentSvc := service.NewAssessmentService(logger, userRepo, catalog)
	careerSvc := service.NewCareerService(logger, userRepo, catalog, service.NewSkillGapAnalyzer(nil), mailer)
	advisor := service.NewCareerAdvisor(logger, llmClient)

	router := apihttp.NewRouter(
		logger,
		jwtSvc,
		apihttp.NewUserHandler(logger, userSvc, jwtSvc),
		apihttp.NewAssessmentHandler(logger, questions, assessmentSvc),
		apihttp.NewCareerHandler(logger, careerSvc, advisor),
	)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server",
		zap.String("port", cfg.HTTPPort),
		zap.Int("careers", catalog.Len()),
		zap.Int("quiz_questions", questions.QuestionCount()),
	)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}

// loadCatalog usa el catálogo fijo salvo que CATALOG_SOURCE=postgres.
// La tabla se siembra con el catálogo por defecto si está vacía.
func loadCatalog(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, logger *zap.Logger) *service.CareerCatalog {
	defaults := service.DefaultCareers()
	if cfg.CatalogSource != config.CatalogSourcePostgres {
		return service.NewCareerCatalog(defaults)
	}

	repo := repository.NewPgCareerRepository(pool)
	seeded, err := repo.Seed(ctx, defaults)
	if err != nil {
		logger.Warn("career seed failed", zap.Error(err))
	} else if seeded > 0 {
		logger.Info("career catalog seeded", zap.Int("careers", seeded))
	}

	careers, err := repo.List(ctx)
	if err != nil {
		logger.Warn("career list failed, using default catalog", zap.Error(err))
		return service.NewCareerCatalog(defaults)
	}
	if len(careers) == 0 {
		logger.Warn("career table empty, using default catalog")
		return service.NewCareerCatalog(defaults)
	}
	return service.NewCareerCatalog(careers)
}
