package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voice-tool-backend/config"
	calendarUC "voice-tool-backend/internal/calendar/usecase"
	"voice-tool-backend/internal/httpserver"
	"voice-tool-backend/internal/locale"
	"voice-tool-backend/internal/middleware"
	notesRepo "voice-tool-backend/internal/notes/repository/file"
	notesUC "voice-tool-backend/internal/notes/usecase"
	"voice-tool-backend/internal/tool"
	"voice-tool-backend/internal/tool/handlers"
	toolUC "voice-tool-backend/internal/tool/usecase"
	"voice-tool-backend/pkg/cloudfn"
	"voice-tool-backend/pkg/gcalendar"
	"voice-tool-backend/pkg/langdetect"
	"voice-tool-backend/pkg/log"
	"voice-tool-backend/pkg/openweather"
)

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

	logger.Info(ctx, "Starting Voice Tool Backend...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Locale resolution
	resolver := locale.NewResolver(logger, langdetect.New())

	// 4. Tool registry
	registry := tool.NewRegistry()
	registry.Register(handlers.NewDateTimeHandler(logger))

	// 5. Calendar domain (optional; requires backend credentials)
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendarID, ensureErr := calendarClient.EnsureCalendar(ctx,
				cfg.GoogleCalendar.CalendarSummary, locale.Default().DefaultTimezone)
			if ensureErr != nil {
				logger.Warnf(ctx, "Failed to resolve calendar %q: %v", cfg.GoogleCalendar.CalendarSummary, ensureErr)
			} else {
				logger.Infof(ctx, "Calendar %q resolved to %s", cfg.GoogleCalendar.CalendarSummary, calendarID)
				calUC := calendarUC.New(logger, calendarClient, calendarID)
				registry.Register(handlers.NewCreateEventHandler(calUC))
				registry.Register(handlers.NewUpdateEventHandler(calUC))
				registry.Register(handlers.NewDeleteEventHandler(calUC))
				registry.Register(handlers.NewGetEventsHandler(calUC))
				registry.Register(handlers.NewGetAllEventsHandler(calUC))
			}
		}
	} else {
		logger.Warn(ctx, "Calendar credentials not configured, calendar tools disabled")
	}

	// 6. Notes domain
	noteUC := notesUC.New(logger, notesRepo.New(logger, cfg.Notes.FilePath))
	registry.Register(handlers.NewAddNoteHandler(noteUC))
	registry.Register(handlers.NewGetNoteHandler(noteUC))
	registry.Register(handlers.NewGetAllNotesHandler(noteUC))
	registry.Register(handlers.NewDeleteNoteHandler(noteUC))

	// 7. Weather
	if cfg.Weather.APIKey != "" {
		weatherClient := openweather.NewClient(cfg.Weather.BaseURL, cfg.Weather.APIKey)
		registry.Register(handlers.NewWeatherHandler(logger, weatherClient))
	} else {
		logger.Warn(ctx, "Weather API key not configured, weather tool disabled")
	}

	// 8. Remote functions
	if len(cfg.RemoteTools.Functions) > 0 {
		remoteClient := cloudfn.NewClient(time.Duration(cfg.RemoteTools.TimeoutSeconds) * time.Second)
		for name, baseURL := range cfg.RemoteTools.Functions {
			registry.Register(handlers.NewRemoteHandler(logger, name, baseURL, remoteClient))
		}
	}

	logger.Infof(ctx, "Registered tools: %v", registry.Names())

	// 9. Invocation router
	routerUC := toolUC.New(logger, resolver, registry)

	// 10. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  middleware.New(logger, cfg.RateLimit),
		ToolUseCase: routerUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 11. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
