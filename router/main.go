package router

import (
	"log"
	"os"
	"time"

	"github.com/campusgate/uniportal/config"
	"github.com/campusgate/uniportal/database"
	"github.com/campusgate/uniportal/handlers"
	admin_handlers "github.com/campusgate/uniportal/handlers/admin"
	applicant_handlers "github.com/campusgate/uniportal/handlers/applicant"
	auth_handlers "github.com/campusgate/uniportal/handlers/auth"
	chatbot_handlers "github.com/campusgate/uniportal/handlers/chatbot"
	course_handlers "github.com/campusgate/uniportal/handlers/course"
	document_handlers "github.com/campusgate/uniportal/handlers/document"
	program_handlers "github.com/campusgate/uniportal/handlers/program"
	project_handlers "github.com/campusgate/uniportal/handlers/project"
	registration_handlers "github.com/campusgate/uniportal/handlers/registration"
	student_handlers "github.com/campusgate/uniportal/handlers/student"
	"github.com/campusgate/uniportal/model"
	"github.com/campusgate/uniportal/services/accesscode"
	"github.com/campusgate/uniportal/services/registration"
	"github.com/campusgate/uniportal/services/settings"
	"github.com/campusgate/uniportal/utils/auth"
	"github.com/campusgate/uniportal/utils/cache"
	"github.com/campusgate/uniportal/utils/middleware"
	"github.com/campusgate/uniportal/utils/storage"
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes wires every handler onto the fiber app
func SetupRoutes(app *fiber.App, store database.Storage, env *config.Env) {
	if env.JWT_SECRET == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}
	jwtIssuer := env.JWT_ISSUER
	if jwtIssuer == "" {
		jwtIssuer = "uniportal-api"
	}

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret:        env.JWT_SECRET,
		Expiry:        24 * time.Hour,
		RefreshExpiry: 7 * 24 * time.Hour,
		Issuer:        jwtIssuer,
	})

	db := store.DB()

	// Redis-backed brute force protection; the portal still works without it
	var bruteForce *middleware.BruteForceProtection
	redisURL := env.REDIS_URL
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}
	redisCache, err := cache.NewRedisCache(redisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Brute force protection will be disabled.", err)
	} else {
		bruteForce = middleware.NewBruteForceProtection(redisCache)
	}

	// Object storage for documents and project files
	spaces, err := storage.NewSpacesClient(storage.SpacesConfig{
		AccessKey: env.SPACES_ACCESS_KEY,
		SecretKey: env.SPACES_SECRET_KEY,
		Bucket:    env.SPACES_BUCKET,
		Region:    env.SPACES_REGION,
		Endpoint:  env.SPACES_ENDPOINT,
	})
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, db)

	// Services
	settingsService := settings.NewService(db)
	registrationService := registration.NewService(registration.NewGormStore(db), settingsService)
	accessCodeService := accesscode.NewService(db)

	// Handlers
	authHandler := auth_handlers.NewAuthHandler(db, jwtManager, bruteForce)
	programHandler := program_handlers.NewProgramHandler(db)
	courseHandler := course_handlers.NewCourseHandler(db)
	applicationHandler := applicant_handlers.NewApplicationHandler(db)
	studentHandler := student_handlers.NewStudentHandler(db)
	registrationHandler := registration_handlers.NewRegistrationHandler(registrationService)
	chatbotHandler := chatbot_handlers.NewChatbotHandler()
	projectHandler := project_handlers.NewProjectHandler(db, accessCodeService, spaces)
	documentHandler := document_handlers.NewDocumentHandler(db, spaces)
	settingsHandler := admin_handlers.NewSettingsHandler(db, settingsService)

	// Security middleware
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000"
	}
	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    allowedOrigins,
		RateLimitRequests: 100,
		RateLimitWindow:   1 * time.Minute,
	})

	// Health check endpoint (public)
	app.Get("/ping", handlers.Health(store))

	// API v1 group
	api := app.Group("/api/v1")

	// Auth routes (public)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	if bruteForce != nil {
		authGroup.Post("/login", bruteForce.CheckAttempt(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Post("/logout", authMiddleware.Required(), authHandler.Logout)

	// FAQ chatbot (public)
	api.Post("/chatbot", chatbotHandler.Ask)

	// Project archive: code verification and gated listing (public + code)
	projectGroup := api.Group("/projects")
	projectGroup.Post("/verify-code", projectHandler.VerifyCode)
	projectGroup.Get("/", projectHandler.ListProjects)
	projectGroup.Get("/:id/download", projectHandler.DownloadProject)
	projectGroup.Post("/", authMiddleware.Required(), authMiddleware.RequireRoles(model.RoleAdmin), projectHandler.CreateProject)
	projectGroup.Delete("/:id", authMiddleware.Required(), authMiddleware.RequireRoles(model.RoleAdmin), projectHandler.DeleteProject)

	// Access code administration
	codeGroup := api.Group("/access-codes", authMiddleware.Required(), authMiddleware.RequireRoles(model.RoleAdmin))
	codeGroup.Get("/", projectHandler.ListAccessCodes)
	codeGroup.Post("/", projectHandler.CreateAccessCode)
	codeGroup.Delete("/:id", projectHandler.DeactivateAccessCode)

	// Programme catalog: reads for any authenticated user, writes for admins
	programGroup := api.Group("/programs", authMiddleware.Required())
	programGroup.Get("/", programHandler.ListPrograms)
	programGroup.Get("/:id", programHandler.GetProgram)
	programGroup.Post("/", authMiddleware.RequireRoles(model.RoleAdmin), programHandler.CreateProgram)
	programGroup.Put("/:id", authMiddleware.RequireRoles(model.RoleAdmin), programHandler.UpdateProgram)
	programGroup.Delete("/:id", authMiddleware.RequireRoles(model.RoleAdmin), programHandler.DeleteProgram)

	// Course catalog
	courseGroup := api.Group("/courses", authMiddleware.Required())
	courseGroup.Get("/", courseHandler.ListCourses)
	courseGroup.Get("/:id", courseHandler.GetCourse)
	courseGroup.Post("/", authMiddleware.RequireRoles(model.RoleAdmin), courseHandler.CreateCourse)
	courseGroup.Put("/:id", authMiddleware.RequireRoles(model.RoleAdmin), courseHandler.UpdateCourse)
	courseGroup.Delete("/:id", authMiddleware.RequireRoles(model.RoleAdmin), courseHandler.DeleteCourse)

	// Admission applications
	applicationGroup := api.Group("/applications", authMiddleware.Required())
	applicationGroup.Post("/", applicationHandler.Apply)
	applicationGroup.Get("/mine", applicationHandler.MyApplications)
	applicationGroup.Get("/", authMiddleware.RequireRoles(model.RoleAdmin), applicationHandler.ListApplications)
	applicationGroup.Post("/:id/score", authMiddleware.RequireRoles(model.RoleAdmin), applicationHandler.ScoreApplication)
	applicationGroup.Post("/:id/admit", authMiddleware.RequireRoles(model.RoleAdmin), applicationHandler.AdmitApplication)
	applicationGroup.Post("/:id/reject", authMiddleware.RequireRoles(model.RoleAdmin), applicationHandler.RejectApplication)

	// Student self-service course registration
	studentGroup := api.Group("/students", authMiddleware.Required())
	studentGroup.Get("/course-registration", authMiddleware.RequireRoles(model.RoleStudent), registrationHandler.GetView)
	studentGroup.Post("/course-registration", authMiddleware.RequireRoles(model.RoleStudent), registrationHandler.Submit)

	// Student administration
	studentGroup.Get("/", authMiddleware.RequireRoles(model.RoleAdmin), studentHandler.ListStudents)
	studentGroup.Get("/:id", authMiddleware.RequireRoles(model.RoleAdmin), studentHandler.GetStudent)
	studentGroup.Put("/:id", authMiddleware.RequireRoles(model.RoleAdmin), studentHandler.UpdateStudent)
	studentGroup.Put("/:id/programmes/:programmeId/status", authMiddleware.RequireRoles(model.RoleAdmin), studentHandler.UpdateProgrammeStatus)

	// Shared documents
	documentGroup := api.Group("/documents", authMiddleware.Required())
	documentGroup.Get("/", documentHandler.List)
	documentGroup.Get("/:id/download", documentHandler.Download)
	documentGroup.Post("/", authMiddleware.RequireRoles(model.RoleAdmin, model.RoleLecturer), documentHandler.Upload)
	documentGroup.Delete("/:id", authMiddleware.RequireRoles(model.RoleAdmin, model.RoleLecturer), documentHandler.Delete)

	// System settings (admin)
	settingsGroup := api.Group("/admin/settings", authMiddleware.Required(), authMiddleware.RequireRoles(model.RoleAdmin))
	settingsGroup.Get("/", settingsHandler.ListSettings)
	settingsGroup.Put("/", settingsHandler.UpdateSetting)
}
