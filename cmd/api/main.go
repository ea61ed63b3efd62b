package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"homestead-voice-assistant/config"
	_ "homestead-voice-assistant/docs" // Swagger docs
	memoryRepo "homestead-voice-assistant/internal/command/repository/memory"
	"homestead-voice-assistant/internal/command/usecase"
	"homestead-voice-assistant/internal/httpserver"
	"homestead-voice-assistant/internal/middleware"
	"homestead-voice-assistant/internal/parser"
	"homestead-voice-assistant/pkg/datemath"
	"homestead-voice-assistant/pkg/gcalendar"
	"homestead-voice-assistant/pkg/log"
	"homestead-voice-assistant/pkg/speech"
)

// @title       Homestead Voice Assistant API
// @description Voice command interpreter for homestead planning: tasks, inventory, projects and business plans from speech transcripts.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Homestead Voice Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. DateMath parser
	timezone := cfg.Parser.Timezone
	dateMathParser, dtErr := datemath.NewParser(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		timezone = "UTC"
		dateMathParser, _ = datemath.NewParser(timezone)
	}

	// 4. Command parser
	commandParser := parser.New(dateMathParser, nil)

	// 5. Repository
	repo := memoryRepo.New(logger)

	// 6. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 7. Speech synthesis client (optional)
	var synthesizer speech.Synthesizer
	if cfg.Speech.URL != "" && cfg.Speech.APIKey != "" {
		synthesizer = speech.NewClient(cfg.Speech.URL, cfg.Speech.APIKey, cfg.Speech.DefaultVoice)
		logger.Infof(ctx, "Speech synthesis initialized (voice: %s)", cfg.Speech.DefaultVoice)
	} else {
		logger.Warn(ctx, "Speech synthesis not configured, confirmations will be text-only")
	}

	// 8. Command UseCase
	commandUC := usecase.New(logger, commandParser, repo, calendarClient, synthesizer, timezone)

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		CommandUC:   commandUC,
		RateLimit: middleware.RateLimitConfig{
			RPS:   cfg.RateLimit.RPS,
			Burst: cfg.RateLimit.Burst,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
