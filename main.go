package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loan-wizard/client"
	"loan-wizard/config"
	httpLayer "loan-wizard/http"
	"loan-wizard/repository"
	"loan-wizard/service"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg, err := config.Parse()
	if err != nil {
		config.Exitf("config: %v", err)
	}

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.RedisAddr)
	} else {
		cache = repository.NewMockCache()
	}

	var plans repository.PlanRepository
	if cfg.SQLitePath != "" {
		sqlRepo, err := repository.OpenPlanRepositorySQLite(cfg.SQLitePath)
		if err != nil {
			config.Exitf("open plan store: %v", err)
		}
		defer sqlRepo.Close()
		plans = sqlRepo
	} else {
		plans = repository.NewPlanRepositoryMemory()
	}

	collaborators := client.New(
		cfg.CalcServiceURL,
		cfg.CommunityServiceURL,
		cfg.ChatServiceURL,
		cfg.SpeechServiceURL,
		client.WithTimeout(cfg.ClientTimeout),
	)

	catalog, err := service.LoadCatalog()
	if err != nil {
		config.Exitf("load step catalog: %v", err)
	}

	store := service.NewSessionStore()
	orchestrator := service.NewOrchestratorService(collaborators, collaborators, cache)
	dialogue := service.NewDialogueService(catalog, store, orchestrator)
	whatIf := service.NewWhatIfService(collaborators, store)
	planService := service.NewPlanService(plans, store, orchestrator)
	chat := service.NewChatService(collaborators, store)
	speech := service.NewSpeechService(collaborators, store)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitBurst, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	mux := httpLayer.NewRouter(httpLayer.Handlers{
		Session: httpLayer.NewSessionHandler(dialogue, store),
		WhatIf:  httpLayer.NewWhatIfHandler(whatIf),
		Plan:    httpLayer.NewPlanHandler(planService),
		Chat:    httpLayer.NewChatHandler(chat),
		Speech:  httpLayer.NewSpeechHandler(speech),
		Rates:   httpLayer.NewRatesHandler(orchestrator),
	}, rateLimiter)

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("loan wizard listening", "addr", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("server failed", "err", err)
		return
	case <-quit:
		slog.Info("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown", "err", err)
	}

	slog.Info("server exited")
}
