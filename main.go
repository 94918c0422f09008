package main

import (
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/gofiber/fiber/v2/log"

	"hotel-reservas/config"
	"hotel-reservas/database"
	"hotel-reservas/docs"
	"hotel-reservas/handlers"
	"hotel-reservas/repository"
	"hotel-reservas/router"
)

// @title API Reservas Hoteleras
// @version 1.0.0
// @description Documentación de la API para gestionar reservas hoteleras.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}
	log.SetLevel(logLevel(cfg.LogLevel))

	backend, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("cannot open %v storage: %v", cfg.Storage.Driver, err)
	}
	accessor := database.NewAccessor(backend)
	defer accessor.Close()

	docs.SwaggerInfo.Host = cfg.Hostname + ":" + strconv.Itoa(cfg.Port)

	app := router.NewApp(handlers.New(repository.NewReservationRepository(accessor)))

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Errorf("shutdown: %v", err)
		}
	}()

	log.Infof("Servidor iniciado en http://%s (storage: %v)", cfg.Addr(), backend)
	if err := app.Listen(cfg.Addr()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func logLevel(name string) log.Level {
	switch strings.ToLower(name) {
	case "debug":
		return log.LevelDebug
	case "warn", "warning":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}
