package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/api/middlewares"
	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/api/plan_api"
	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/config"
	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/database"
	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/repository/plan_repository"
	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/services/auth_services"
	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/services/plan_services"
	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/store"
)

func setupCORS(cfg *config.Config, router http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.CorsOrigin},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	return c.Handler(router)
}

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	var db store.Database
	if cfg.MongoURI == "" {
		logger.Warn("no mongo uri configured, using in-memory store")
		db = store.NewMemoryDatabase()
	} else {
		mongoDB, disconnect, err := database.Connect(context.Background(), cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			logger.Error("database connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer disconnect(context.Background())
		logger.Info("database connection successful")
		db = mongoDB
	}

	authService := auth_services.NewAuthService(cfg.AccessSecret)

	// BOARDS
	boardRepo := plan_repository.NewBoardRepo(db)
	cardRepo := plan_repository.NewCardRepo(db)
	boardService := plan_services.NewBoardService(boardRepo, cardRepo)
	boardHandler := plan_api.NewBoardHandler(boardService, authService)

	// CARDS
	checklistRepo := plan_repository.NewChecklistRepo(db)
	toDoListRepo := plan_repository.NewToDoListRepo(db)
	cardService := plan_services.NewCardService(cardRepo, checklistRepo, toDoListRepo)
	cardHandler := plan_api.NewCardHandler(cardService, authService)

	// CHECKLISTS
	checklistService := plan_services.NewChecklistService(checklistRepo)
	checklistHandler := plan_api.NewChecklistHandler(checklistService, authService)

	// TODOLISTS
	toDoListService := plan_services.NewToDoListService(toDoListRepo)
	toDoListHandler := plan_api.NewToDoListHandler(toDoListService, authService)

	r := mux.NewRouter()
	boardHandler.BoardRoutes(r)
	cardHandler.CardRoutes(r)
	checklistHandler.ChecklistRoutes(r)
	toDoListHandler.ToDoListRoutes(r)

	handler := middlewares.RequestLogger(logger, setupCORS(cfg, r))

	httpServer := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: handler,
	}

	go func() {
		logger.Info("starting HTTP server", slog.String("port", cfg.HTTPPort))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped unexpectedly", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("failed to shut down server", slog.String("error", err.Error()))
	}
	logger.Info("server stopped")
}
