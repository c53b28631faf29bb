package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"careers-backend/internal/ats"
	googleauth "careers-backend/internal/auth"
	"careers-backend/internal/contact"
	"careers-backend/internal/jobs"
	"careers-backend/internal/shared/config"
	"careers-backend/internal/shared/server"
	"careers-backend/internal/shared/storage/db"
	"careers-backend/internal/users"
)

// App holds shared dependencies wired from config.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	ATSRepo     ats.Repo
	JobsRepo    jobs.Repo
	ContactRepo contact.Repo
	UsersRepo   users.Repo

	ATSService     *ats.Service
	JobsService    *jobs.Service
	ContactService *contact.Service
	UsersService   *users.Service

	ATSHandler     *ats.Handler
	JobsHandler    *jobs.Handler
	ContactHandler *contact.Handler
	UsersHandler   *users.Handler
	GoogleAuth     *googleauth.GoogleService
}

// Build prepares shared dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         app.Config,
		ATSHandler:     app.ATSHandler,
		JobsHandler:    app.JobsHandler,
		ContactHandler: app.ContactHandler,
		UsersHandler:   app.UsersHandler,
		GoogleAuth:     app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func buildServices(app *App) {
	var atsRepo ats.Repo
	var jobsRepo jobs.Repo
	var contactRepo contact.Repo
	var userRepo users.Repo

	if app.DB != nil {
		atsRepo = &ats.PGRepo{DB: app.DB}
		jobsRepo = &jobs.PGRepo{DB: app.DB}
		contactRepo = &contact.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
	} else {
		atsRepo = ats.NewMemoryRepo()
		jobsRepo = jobs.NewMemoryRepo()
		contactRepo = contact.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
	}

	atsSvc := &ats.Service{
		Repo:           atsRepo,
		Limiter:        ats.NewLimiter(0, 0, nil),
		TempDir:        app.Config.TempUploadDir,
		MaxUploadBytes: app.Config.MaxUploadBytes,
		RemoteURL:      app.Config.ATSAPIURL,
		RemoteKey:      app.Config.ATSAPIKey,
	}
	jobsSvc := jobs.NewService(jobsRepo)
	contactSvc := contact.NewService(contactRepo)
	userSvc := users.NewService(userRepo)

	googleAuthSvc := googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		userSvc,
	)

	app.ATSRepo = atsRepo
	app.JobsRepo = jobsRepo
	app.ContactRepo = contactRepo
	app.UsersRepo = userRepo
	app.ATSService = atsSvc
	app.JobsService = jobsSvc
	app.ContactService = contactSvc
	app.UsersService = userSvc
	app.ATSHandler = ats.NewHandler(atsSvc)
	app.JobsHandler = jobs.NewHandler(jobsSvc)
	app.ContactHandler = contact.NewHandler(contactSvc)
	app.UsersHandler = users.NewHandler(userSvc)
	app.GoogleAuth = googleAuthSvc
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
