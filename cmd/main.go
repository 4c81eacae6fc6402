// @title           Course Enrollment API
// @version         1.0
// @description     Registration, login and course enrollment tracking.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "course_enrollment/docs"
	"course_enrollment/internal/config"
	"course_enrollment/internal/handlers"
	"course_enrollment/internal/logger"
	"course_enrollment/internal/models"
	"course_enrollment/internal/repository"
	"course_enrollment/internal/repository/db"
	"course_enrollment/internal/server"
	"course_enrollment/internal/service"
)

const (
	configDir       = "configs"
	shutdownTimeout = 10 * time.Second
	seedTimeout     = 10 * time.Second
)

func main() {
	// init logger
	log := logger.Get(logger.InfoLevel)

	// load configs/config.yml + APP_* env
	cfg, err := config.Load(configDir)
	if err != nil {
		log.Fatalw("error reading config", "err", err)
	}
	log.SetLevel(cfg.Log.Level)

	// open DB
	gdb, err := db.Open(cfg.DB, logger.NewGormLogger(log, cfg.DB.SlowThreshold))
	if err != nil {
		log.Fatalw("failed to open database", "driver", cfg.DB.Driver, "err", err)
	}
	defer func() {
		if cerr := db.Close(gdb); cerr != nil {
			log.Errorw("failed to close database", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(gdb)
	seedCourses(repos, cfg.Seed, log)

	services := service.NewService(repos, service.Options{
		SigningKey: cfg.Auth.SigningKey,
		TokenTTL:   cfg.Auth.TokenTTL,
		BcryptCost: cfg.Auth.BcryptCost,
	})
	apiHandler := handlers.NewHandler(services, log)

	// start HTTP server
	srv := server.New(cfg.CORS.AllowedOrigins)
	runHTTPServer(srv, cfg, apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

// seedCourses fills an empty catalog from config; courses have no API to create them.
func seedCourses(repos *repository.Repository, seed config.SeedConfig, log *logger.Logger) {
	courses := make([]models.Course, 0, len(seed.Courses))
	for _, c := range seed.Courses {
		courses = append(courses, models.Course{Name: c.Name, Description: c.Description, Price: c.Price})
	}

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	n, err := repos.Courses.SeedIfEmpty(ctx, courses)
	if err != nil {
		log.Fatalw("failed to seed courses", "err", err)
	}
	if n > 0 {
		log.Infow("seeded courses", "count", n)
	}
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, cfg *config.Config, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("starting server", "port", cfg.Port, "db_driver", cfg.DB.Driver)
		if err := srv.Run(cfg.Port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
	_ = log.Sync()
}
