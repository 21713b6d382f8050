package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lifewood/careers-backend/handlers"
	"github.com/lifewood/careers-backend/internal/config"
	"github.com/lifewood/careers-backend/internal/database"
	"github.com/lifewood/careers-backend/internal/mailer"
	"github.com/lifewood/careers-backend/internal/oidc"
	"github.com/lifewood/careers-backend/internal/recruit/handler"
	"github.com/lifewood/careers-backend/internal/recruit/repository"
	"github.com/lifewood/careers-backend/internal/recruit/service"
	"github.com/lifewood/careers-backend/internal/staff"
	"github.com/lifewood/careers-backend/internal/storage"
	"github.com/lifewood/careers-backend/pkg/logger"
	"github.com/lifewood/careers-backend/pkg/metrics"
	"github.com/lifewood/careers-backend/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging level is controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: issuer=%v mongo=%v redis=%v email=%v",
		cfg.Identity.IssuerURL != "", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.Email.APIKey != "")

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Lightweight CORS middleware: set common headers and respond to OPTIONS.
	allowedOrigin := cfg.Server.AllowedOrigin
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	})

	// Connect to Redis early so the rate-limiter can use it when configured
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("connected to Redis at %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Optional global rate limiter (per-user when authenticated, otherwise per-IP)
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	ctx := context.Background()

	// Bearer tokens are verified against the external identity provider.
	// This process never mints or stores credentials of its own.
	var verifier middleware.Verifier
	ver, err := oidc.NewVerifier(ctx, cfg.Identity.IssuerURL, cfg.Identity.ClientID)
	if err != nil {
		logger.Warnf("failed to initialize OIDC verifier: %v", err)
	} else {
		verifier = ver
	}
	if verifier == nil {
		// integration-test escape hatch: parse claims without signature checks
		if strings.EqualFold(strings.TrimSpace(os.Getenv("ALLOW_INSECURE_TOKEN")), "true") {
			logger.Warn("enabling insecure token verifier (integration mode)")
			verifier = oidc.NewInsecureVerifier()
		} else {
			logger.Fatalf("identity provider is unreachable and ALLOW_INSECURE_TOKEN is not set; refusing to start without a token verifier")
		}
	}

	// Retry/backoff when connecting to MongoDB to tolerate startup races
	const maxAttempts = 5
	backoff := time.Second
	var client *mongo.Client
	var errConn error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		client, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		if errConn == nil {
			break
		}
		logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
		if attempt < maxAttempts {
			time.Sleep(backoff)
			backoff *= 2
		}
	}
	if errConn != nil {
		logger.Fatalf("could not connect to MongoDB after %d attempts: %v", maxAttempts, errConn)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	db := client.Database(cfg.MongoDB.Database)
	svc := service.New(
		repository.NewMongoApplicationRepo(db.Collection("applications")),
		repository.NewMongoInquiryRepo(db.Collection("inquiries")),
		repository.NewMongoPositionRepo(db.Collection("positions")),
	)
	staffSvc := staff.NewService(staff.NewMongoRepository(db.Collection("staff")))

	// resume object storage: the API stays up without it, uploads then fail
	var resumes handler.ResumeStore
	store, err := storage.NewMinIOStorage(storage.LoadMinIOConfig())
	if err != nil {
		logger.Warnf("object storage unavailable, resume uploads disabled: %v", err)
	} else {
		resumes = store
	}

	// applicant notifications via Brevo; a nil sender disables them cleanly
	var sender mailer.Sender
	if cfg.Email.APIKey != "" && cfg.Email.SenderEmail != "" {
		sender = mailer.NewBrevoSender(cfg.Email.APIKey, cfg.Email.SenderName, cfg.Email.SenderEmail)
	}
	notifier := mailer.NewDispatcher(sender)

	h := handler.New(svc, resumes, notifier, staffSvc)
	h.RegisterPublic(r)
	h.RegisterAdmin(r, middleware.AuthRequired(verifier))

	handlers.RegisterSwagger(r)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness: 200 only when critical dependencies are reachable
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		deps["mongodb"] = client.Ping(c.Request.Context(), nil) == nil
		if !deps["mongodb"] {
			ready = false
		}
		deps["oidc"] = verifier != nil
		if !deps["oidc"] {
			ready = false
		}
		deps["storage"] = resumes != nil
		deps["email"] = sender != nil
		if cfg.Redis.Host != "" && cfg.RateLimit.UseRedis {
			deps["redis"] = redisClient != nil
			if !deps["redis"] {
				ready = false
			}
		} else {
			deps["redis"] = true
		}

		status := http.StatusOK
		state := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			state = "not_ready"
		}
		c.JSON(status, gin.H{"status": state, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("starting careers API on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
