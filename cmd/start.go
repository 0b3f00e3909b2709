package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"color-api/core/config"
	"color-api/core/loader"
	"color-api/core/logger"
	"color-api/core/server"
	"color-api/feature/convert"
	"color-api/feature/info"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title HEX to RGB Conversion API
// @version 1.0.0
// @description Converts hexadecimal color codes into red, green and blue components.
// @host localhost:3000
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the conversion server",
	Long:  `Starts the HTTP server and loads the documentation and conversion features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Register Features
		mgr := loader.NewManager()
		mgr.Register(info.NewFeature())
		mgr.Register(convert.NewFeature(logg))

		// 4. Build App
		app, err := server.New(cfg.Server, logg, mgr)
		if err != nil {
			logg.Fatal("Failed to build server", zap.Error(err))
		}

		// 5. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 6. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			logg.Error("Shutdown failed", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
