package app

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/campusgate/uniportal/api"
	"github.com/campusgate/uniportal/config"
	"github.com/campusgate/uniportal/database"
	"github.com/campusgate/uniportal/router"
	"github.com/campusgate/uniportal/services/cron"
)

// SetupAndRunServer boots the portal: env, database, cron, routes, listen.
func SetupAndRunServer() error {
	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	env, err := config.Get()
	if err != nil {
		return err
	}

	// Initialize GORM database connection
	store, err := database.StartGORM()
	if err != nil {
		fmt.Println("Check whether Postgres is running and the DB_* variables are set")
		return err
	}

	if err := store.Init(); err != nil {
		fmt.Println("Error running migrations")
		return err
	}

	// Idempotent seed: default settings, admin account, sample programmes
	if err := database.Seed(store.DB()); err != nil {
		return err
	}

	// Cron jobs (enabled unless CRON_ENABLED=false)
	var cronManager *cron.CronManager
	if os.Getenv("CRON_ENABLED") != "false" {
		cronManager = cron.NewCronManager(store.DB())
		if err := cronManager.Start(); err != nil {
			fmt.Println("Warning: Failed to start cron jobs:", err)
		}
	}

	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		store.Close()
	}()

	// Init API
	server := api.NewAPIServer(fmt.Sprintf(":%d", env.PORT))
	app := server.GetEngine()

	app.Use(logger.New())
	app.Use(recover.New())

	// Setup Routes
	router.SetupRoutes(app, store, env)

	return server.Run()
}
