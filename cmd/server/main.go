package main

import (
	"os"
	"strconv"
	"time"

	"github.com/fabianengeln/paarspiel/internal/config"
	"github.com/fabianengeln/paarspiel/internal/database"
	"github.com/fabianengeln/paarspiel/internal/handlers"
	"github.com/fabianengeln/paarspiel/internal/middleware"
	"github.com/fabianengeln/paarspiel/internal/services"

	_ "github.com/fabianengeln/paarspiel/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Paarspiel API
// @version         1.0
// @description     Two-player party game: alternating prompts, persisted answers, summary view.
// @host            localhost:8080
// @BasePath        /

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)
	if err := database.Seed(db, cfg.ContentDir); err != nil {
		log.Fatal().Err(err).Msg("failed to seed content")
	}

	ttlMin, _ := strconv.Atoi(cfg.SessionTTL)
	if ttlMin <= 0 {
		ttlMin = 30
	}

	sessions := services.NewSessionStore(time.Duration(ttlMin) * time.Minute)
	defer sessions.Close()

	contentService := services.NewContentService(db, cfg.SelectPolicy)
	gameService := services.NewGameService(db)

	gameHandler := handlers.NewGameHandler(contentService, gameService, sessions)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.LoadHTMLGlob("templates/*")

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/", gameHandler.Home)
	r.POST("/start_game", gameHandler.StartGame)
	r.POST("/end_game", gameHandler.EndGame)
	r.GET("/summary", gameHandler.Summary)
	r.GET("/get_categories", gameHandler.GetCategories)

	r.GET("/game", middleware.RequireGame(sessions, middleware.RedirectToHome), gameHandler.Game)
	r.GET("/get_content", middleware.RequireGame(sessions, middleware.JSONError), gameHandler.GetContent)
	r.POST("/save_answer", middleware.RequireGame(sessions, middleware.JSONStatus), gameHandler.SaveAnswer)
	r.POST("/switch_turn", middleware.RequireGame(sessions, middleware.JSONError), gameHandler.SwitchTurn)

	log.Info().Str("port", cfg.ServerPort).Str("policy", contentService.Policy()).Msg("server starting")
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
