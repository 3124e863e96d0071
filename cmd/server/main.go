package main

import (
	"log"

	"justice_lab_go/config"
	"justice_lab_go/db"
	"justice_lab_go/handlers"
	"justice_lab_go/services"
	"justice_lab_go/services/ai"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Open the blob store, migrating its schema
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize blob store: %v", err)
	}
	defer db.Close()

	// Wire the storage layers and the AI collaborator client
	kv := services.NewKVStore(db.DB)
	caseStore := services.NewCaseStore(kv)
	runStore := services.NewRunStore(kv)
	aiClient := ai.NewClient(cfg.AIBaseURL, cfg.AIAPIKey)
	handlers.Init(cfg, caseStore, runStore, aiClient)

	// Heal a stale active-run pointer left by a previous process
	runStore.EnsureActiveRunValid()

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	// Justice Lab API routes
	api := e.Group("/api/justicelab")
	{
		api.GET("/templates", handlers.ListTemplatesHandler)
		api.POST("/cases/generate", handlers.GenerateCaseHandler)
		api.GET("/cases/:id", handlers.GetCaseHandler)

		api.POST("/runs", handlers.CreateRunHandler)
		api.GET("/runs", handlers.ListRunsHandler)
		api.GET("/runs/active", handlers.GetActiveRunHandler)
		api.PATCH("/runs/active", handlers.PatchActiveRunHandler)
		api.DELETE("/runs/active", handlers.ClearActiveRunHandler)
		api.GET("/runs/:id", handlers.GetRunHandler)
		api.DELETE("/runs/:id", handlers.DeleteRunHandler)
		api.POST("/runs/:id/activate", handlers.ActivateRunHandler)

		api.POST("/runs/:id/audience/scene", handlers.SetAudienceSceneHandler)
		api.POST("/runs/:id/decisions", handlers.ApplyDecisionHandler)
		api.POST("/runs/:id/decisions/suggest", handlers.SuggestDecisionHandler)
		api.POST("/runs/:id/incidents", handlers.RecordIncidentHandler)
		api.POST("/runs/:id/chrono/:action", handlers.ChronoHandler)

		api.POST("/runs/:id/score", handlers.ScoreRunHandler)
		api.POST("/runs/:id/appeal", handlers.AppealRunHandler)
		api.GET("/runs/:id/pieces", handlers.GetRunPiecesHandler)

		api.GET("/stats", handlers.GetStatsHandler)
		api.GET("/journal/export", handlers.ExportJournalHandler)
	}

	// Development-only routes
	if cfg.Environment == "development" {
		dev := e.Group("/dev")
		{
			dev.POST("/reset", handlers.ResetStatsHandler)
		}
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
