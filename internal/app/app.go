package app

import (
	"io"
	"log/slog"

	"github.com/vk/calcgrid/internal/config"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	loader config.Loader
	config *Config
}

// NewApp is the constructor for the main application. Results are printed to
// outW; diagnostics go to logW through the app's own isolated logger.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) *App {
	return &App{
		outW:   outW,
		logger: newLogger(appConfig.LogLevel, appConfig.LogFormat, logW),
		loader: loader,
		config: appConfig,
	}
}
