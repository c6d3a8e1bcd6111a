package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vijaykarthik1/tnstc-leave/internal/config"
	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/leave"
	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/user"
	appHTTP "github.com/Vijaykarthik1/tnstc-leave/internal/handler/http"
	"github.com/Vijaykarthik1/tnstc-leave/internal/pkg/database"
	"github.com/Vijaykarthik1/tnstc-leave/internal/pkg/jwt"
	"github.com/Vijaykarthik1/tnstc-leave/internal/pkg/oauth"
	"github.com/Vijaykarthik1/tnstc-leave/internal/pkg/storage"
	"github.com/Vijaykarthik1/tnstc-leave/internal/repository/postgresql"
	"github.com/Vijaykarthik1/tnstc-leave/internal/repository/sqlite"
	serviceAuth "github.com/Vijaykarthik1/tnstc-leave/internal/service/auth"
	"github.com/Vijaykarthik1/tnstc-leave/internal/service/file"
	serviceLeave "github.com/Vijaykarthik1/tnstc-leave/internal/service/leave"
	serviceUser "github.com/Vijaykarthik1/tnstc-leave/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	userRepo, leaveRequestRepo, closeDB, err := openRepositories(ctx, cfg)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer closeDB()

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage: ", err)
	}

	fileService := file.NewFileService(fileStorage)
	authService := serviceAuth.NewAuthService(userRepo, JWTService, GoogleService, cfg.Leave.AdminEmails)
	leaveService := serviceLeave.NewLeaveService(leaveRequestRepo, userRepo, cfg.Leave.Relievers)
	userService := serviceUser.NewUserService(userRepo, fileService)

	authHandler := appHTTP.NewAuthHandler(authService, GoogleService)
	leaveHandler := appHTTP.NewLeaveHandler(leaveService)
	userHandler := appHTTP.NewUserHandler(userService, fileService)
	reportHandler := appHTTP.NewReportHandler(leaveService)

	router := appHTTP.NewRouter(
		JWTService,
		appHTTP.RouterOptions{
			Env:            cfg.App.Env,
			AllowedOrigins: cfg.App.AllowedOrigins,
			UploadDir:      cfg.Storage.BasePath,
		},
		authHandler,
		leaveHandler,
		userHandler,
		reportHandler,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	}()

	slog.Info("Server running", "addr", "http://localhost"+server.Addr, "db_driver", cfg.Database.Driver)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("Server error: ", err)
	}
}

// openRepositories connects the configured database and returns its repositories.
func openRepositories(ctx context.Context, cfg *config.Config) (user.UserRepository, leave.LeaveRequestRepository, func(), error) {
	switch cfg.Database.Driver {
	case "sqlite":
		db, err := database.NewSQLiteDB(cfg.Database.SQLitePath)
		if err != nil {
			return nil, nil, nil, err
		}
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}
		userRepo, err := sqlite.NewGormUserRepository(db)
		if err != nil {
			closeDB()
			return nil, nil, nil, err
		}
		leaveRequestRepo, err := sqlite.NewGormLeaveRequestRepository(db)
		if err != nil {
			closeDB()
			return nil, nil, nil, err
		}
		return userRepo, leaveRequestRepo, closeDB, nil

	default:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			return nil, nil, nil, err
		}
		if err := postgresql.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, nil, fmt.Errorf("migrate: %w", err)
		}
		return postgresql.NewUserRepository(db), postgresql.NewLeaveRequestRepository(db), db.Close, nil
	}
}
