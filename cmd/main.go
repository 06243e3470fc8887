package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	httpcontext "github.com/dtroode/chessacademy-server/internal/api/http/context"
	"github.com/dtroode/chessacademy-server/internal/api/http/router"
	httpServer "github.com/dtroode/chessacademy-server/internal/api/http/server"
	"github.com/dtroode/chessacademy-server/internal/config"
	"github.com/dtroode/chessacademy-server/internal/crypto"
	"github.com/dtroode/chessacademy-server/internal/health"
	"github.com/dtroode/chessacademy-server/internal/logger"
	"github.com/dtroode/chessacademy-server/internal/model"
	"github.com/dtroode/chessacademy-server/internal/repository/file"
	"github.com/dtroode/chessacademy-server/internal/repository/postgres"
	"github.com/dtroode/chessacademy-server/internal/server"
	"github.com/dtroode/chessacademy-server/internal/service"
	"github.com/dtroode/chessacademy-server/internal/storage/local"
	storage "github.com/dtroode/chessacademy-server/internal/storage/minio"
	"github.com/dtroode/chessacademy-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const healthCheckTimeout = 3 * time.Second

// stores is the active persistence backend.
type stores struct {
	users        model.UserStore
	refresh      model.RefreshTokenStore
	leads        model.LeadStore
	availability model.AvailabilityStore
	pinger       health.Pinger
	close        func()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.NewWithFormat(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err, "backend", cfg.Store.Backend)
	}
	defer st.close()

	tokenManager := token.NewJWT(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	tokenService := service.NewTokenService(tokenManager, st.refresh, logger)
	authService := service.NewAuth(st.users, tokenService, logger)

	seeded, err := authService.SeedAdmins(ctx, cfg.Seed.Users, cfg.Seed.Passwords)
	if err != nil {
		logger.Fatal("failed to seed admin users", "error", err)
	}
	if seeded > 0 {
		logger.Info("seeded admin users", "count", seeded)
	}

	healthService := health.NewService(buildVersion)
	healthService.RegisterChecker("store", health.NewStoreChecker(cfg.Store.Backend, st.pinger, healthCheckTimeout))

	r := router.New(router.Services{
		Auth:         authService,
		Sessions:     tokenService,
		Tokens:       tokenService,
		Leads:        service.NewLead(st.leads, logger),
		Availability: service.NewAvailability(st.availability, logger),
		Health:       healthService,
	}, router.Limits{
		LeadsPerMinute: cfg.RateLimit.LeadsPerMinute,
		AuthRequests:   cfg.RateLimit.AuthRequests,
		AuthWindow:     cfg.RateLimit.AuthWindow,
		GlobalRequests: cfg.RateLimit.GlobalRequests,
		GlobalWindow:   cfg.RateLimit.GlobalWindow,
	}, httpcontext.NewManager(), logger)

	srv := httpServer.NewHTTPServer(r.Register(), cfg.HTTP.Address, httpServer.Timeouts{
		Read:  cfg.HTTP.ReadTimeout,
		Write: cfg.HTTP.WriteTimeout,
	})

	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "backend", cfg.Store.Backend)
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func openStores(ctx context.Context, cfg *config.Config, logger *logger.Logger) (*stores, error) {
	if cfg.Store.Backend == config.BackendPostgres {
		db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, err
		}

		return &stores{
			users:        postgres.NewUserRepository(db),
			refresh:      postgres.NewRefreshTokenRepository(db),
			leads:        postgres.NewLeadRepository(db),
			availability: postgres.NewAvailabilityRepository(db, postgres.NewTransactor(db.Pool)),
			pinger:       db,
			close: func() {
				if err := db.Close(); err != nil {
					logger.Error("failed to close database", "error", err)
				}
			},
		}, nil
	}

	fileStorage, err := openFileStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	cipher, err := crypto.NewFieldCipher(cfg.Encryption.Secret, cfg.Encryption.Salt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive encryption key: %w", err)
	}

	return &stores{
		users:        file.NewUserRepository(fileStorage),
		refresh:      file.NewRefreshTokenRepository(fileStorage),
		leads:        file.NewLeadRepository(fileStorage, cipher, logger),
		availability: file.NewAvailabilityRepository(fileStorage),
		pinger:       health.StorageProbe(fileStorage, "users.json"),
		close:        func() {},
	}, nil
}

func openFileStorage(ctx context.Context, cfg *config.Config) (model.Storage, error) {
	if cfg.File.Driver != config.DriverMinio {
		return local.NewDisk(cfg.File.Dir)
	}

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return storage.NewClient(ctx, minioClient, cfg.Storage.Bucket, storage.WithPrefix(cfg.Storage.Prefix))
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
