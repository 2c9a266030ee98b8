package api

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/artefakt/archive-api/api/albums"
	"github.com/artefakt/archive-api/api/auth"
	"github.com/artefakt/archive-api/api/detections"
	"github.com/artefakt/archive-api/api/health"
	"github.com/artefakt/archive-api/api/media"
	"github.com/artefakt/archive-api/api/minutes"
	"github.com/artefakt/archive-api/api/paintings"
	"github.com/artefakt/archive-api/api/people"
	"github.com/artefakt/archive-api/api/recognition"
	selectionapi "github.com/artefakt/archive-api/api/selection"
	"github.com/artefakt/archive-api/api/types"
	"github.com/artefakt/archive-api/api/version"
	"github.com/artefakt/archive-api/api/workflows"
	_ "github.com/artefakt/archive-api/docs/swagger"
	albumsService "github.com/artefakt/archive-api/internal/services/albums"
	authService "github.com/artefakt/archive-api/internal/services/auth"
	detectionsService "github.com/artefakt/archive-api/internal/services/detections"
	"github.com/artefakt/archive-api/internal/services/genai"
	mediaService "github.com/artefakt/archive-api/internal/services/media"
	minutesService "github.com/artefakt/archive-api/internal/services/minutes"
	paintingsService "github.com/artefakt/archive-api/internal/services/paintings"
	peopleService "github.com/artefakt/archive-api/internal/services/people"
	recognitionService "github.com/artefakt/archive-api/internal/services/recognition"
	"github.com/artefakt/archive-api/internal/services/selection"
	"github.com/artefakt/archive-api/internal/services/vision"
	workflowService "github.com/artefakt/archive-api/internal/services/workflow"
	"github.com/artefakt/archive-api/internal/storage"
	"github.com/artefakt/archive-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Public routes, no rate limiting
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Swagger documentation
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	v1 := engine.Group("/api/v1")

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if deps == nil {
		deps = &types.Dependencies{}
	}

	if err := initializeDependencies(deps, cfg); err != nil {
		return err
	}

	// Auth endpoints run under a tight limit to slow credential guessing
	authGroup := v1.Group("")
	authGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 2, 5))
	auth.RegisterRoutes(authGroup, deps)

	// Gallery browsing (10 req/s, burst of 20)
	browseMiddleware := PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20)

	albumsGroup := v1.Group("")
	albumsGroup.Use(browseMiddleware)
	albums.RegisterRoutes(albumsGroup, deps)

	mediaGroup := v1.Group("")
	mediaGroup.Use(browseMiddleware)
	media.RegisterRoutes(mediaGroup, deps)

	peopleGroup := v1.Group("")
	peopleGroup.Use(browseMiddleware)
	people.RegisterRoutes(peopleGroup, deps)

	paintingsGroup := v1.Group("")
	paintingsGroup.Use(browseMiddleware)
	paintings.RegisterRoutes(paintingsGroup, deps)

	minutesGroup := v1.Group("")
	minutesGroup.Use(browseMiddleware)
	minutes.RegisterRoutes(minutesGroup, deps)

	detectionsGroup := v1.Group("")
	detectionsGroup.Use(browseMiddleware)
	detections.RegisterRoutes(detectionsGroup, deps)

	// Selection and staging are chatty UI state calls (20 req/s, burst of 40)
	selectionGroup := v1.Group("")
	selectionGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 20, 40))
	selectionapi.RegisterRoutes(selectionGroup, deps)

	// Workflow and recognition sessions drive AI calls, so keep the
	// rate conservative (5 req/s, burst of 10)
	sessionMiddleware := PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 5, 10)

	workflowsGroup := v1.Group("")
	workflowsGroup.Use(sessionMiddleware)
	workflows.RegisterRoutes(workflowsGroup, deps)

	recognitionGroup := v1.Group("")
	recognitionGroup.Use(sessionMiddleware)
	recognition.RegisterRoutes(recognitionGroup, deps)

	return nil
}

// initializeDependencies fills in any service the caller didn't wire.
// Tests inject mocks through deps; production wiring lands here.
func initializeDependencies(deps *types.Dependencies, cfg *config.Config) error {
	if deps.Storage == nil {
		objects, err := storage.NewStorage(&cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to initialize object storage: %w", err)
		}
		deps.Storage = objects
	}

	if deps.Selections == nil {
		deps.Selections = selection.DefaultRegistry()
	}
	if deps.Staging == nil {
		deps.Staging = selection.NewStagingStore()
	}

	if deps.DB != nil && deps.DB.DB != nil {
		gormDB := deps.DB.DB

		if deps.MediaService == nil {
			deps.MediaService = mediaService.NewService(mediaService.NewRepository(gormDB))
		}
		if deps.AlbumService == nil {
			deps.AlbumService = albumsService.NewService(albumsService.NewRepository(gormDB))
		}
		if deps.PeopleService == nil {
			deps.PeopleService = peopleService.NewService(peopleService.NewRepository(gormDB))
		}
		if deps.PaintingService == nil {
			deps.PaintingService = paintingsService.NewService(paintingsService.NewRepository(gormDB))
		}
		if deps.MinuteService == nil {
			deps.MinuteService = minutesService.NewService(minutesService.NewRepository(gormDB))
		}
		if deps.DetectionService == nil {
			deps.DetectionService = detectionsService.NewService(detectionsService.NewRepository(gormDB))
		}
		if deps.AuthService == nil {
			deps.AuthService = authService.NewService(
				authService.NewUserRepository(gormDB),
				authService.Config{JWTSecret: cfg.Auth.JWTSecret, TokenTTL: cfg.Auth.TokenTTL},
			)
		}

		var visionClient vision.Client
		if deps.WorkflowService == nil || deps.RecognitionService == nil {
			visionClient = vision.NewHTTPClient(vision.Config{
				FaceDetectURL:    cfg.Vision.FaceDetectURL,
				FaceIdentifyURL:  cfg.Vision.FaceIdentifyURL,
				ElementDetectURL: cfg.Vision.ElementDetectURL,
				Timeout:          cfg.Vision.Timeout,
			})
		}

		if deps.WorkflowService == nil {
			aiClient, err := genai.NewGeminiClient(context.Background(), genai.Config{
				APIKey:      cfg.GenAI.APIKey,
				Model:       cfg.GenAI.Model,
				Temperature: cfg.GenAI.Temperature,
			})
			if err != nil {
				log.Printf("[ERROR] Failed to initialize generative AI client: %v", err)
				return fmt.Errorf("failed to initialize generative AI client: %w", err)
			}

			deps.WorkflowService = workflowService.NewService(
				deps.MediaService,
				deps.PaintingService,
				deps.MinuteService,
				deps.DetectionService,
				aiClient,
				visionClient,
				deps.Storage,
				deps.Selections,
				deps.Staging,
				workflowService.Config{
					DefaultClassifyLabel: cfg.Workflow.ClassifyDefaultLabel,
					ProcessAllDelay:      cfg.Workflow.ProcessAllDelay,
					SessionTTL:           cfg.Workflow.SessionTTL,
				},
			)
		}

		if deps.RecognitionService == nil {
			deps.RecognitionService = recognitionService.NewService(
				deps.MediaService,
				deps.PeopleService,
				visionClient,
				deps.Storage,
				recognitionService.Config{
					CreateMissingPeople: cfg.Recognition.CreateMissingPeople,
					SessionTTL:          cfg.Workflow.SessionTTL,
				},
			)
		}
	}

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
