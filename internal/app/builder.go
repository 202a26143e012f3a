package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/auth/blacklist"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/auth/guard"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/auth/password"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/auth/token"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/config"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/domain"
	redisx "github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/infra/cache/redis"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/infra/database/postgres"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web"
)

type App struct {
	config *config.Config
	server *web.Server
	log    *log.Logger
	cache  domain.Cache
	repo   domain.UsersRepo
}

// Build собирает сервис целиком: конфиг -> БД -> Redis -> auth-примитивы -> HTTP.
// Все зависимости передаются явно, никаких глобальных синглтонов.
func Build(ctx context.Context) (*App, error) {
	base := log.New(os.Stdout, "[app] ", log.LstdFlags)

	serverLog := log.New(base.Writer(), base.Prefix()+"[server] ", base.Flags())
	pgLog := log.New(base.Writer(), base.Prefix()+"[postgres] ", base.Flags())
	redisLog := log.New(base.Writer(), base.Prefix()+"[redis] ", base.Flags())

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed load config: %w", err)
	}
	base.Printf("\n  configuration: %s-------------------", cfg)

	base.Println("init PostgreSQL")
	pgRepo, err := postgres.NewPGRepo(ctx, pgLog, cfg.GetDSN(), cfg.DBScheme)
	if err != nil {
		return nil, fmt.Errorf("failed init postgres: %w", err)
	}
	base.Println("PostgreSQL is initialized")

	base.Println("init Redis")
	rc := redisx.New(redisx.Config{
		Addr:     cfg.RedisAddr,
		DB:       cfg.RedisDB,
		Password: cfg.RedisPassword,
	}, redisLog)
	if err := rc.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed init redis: %w", err)
	}
	base.Println("Redis is initialized")

	// Auth primitives
	hasher := password.NewDefault()
	tm := token.New(cfg.AuthJWTSecret, cfg.AuthIssuer)
	bl := blacklist.NewStore(rc)

	base.Println("init Server")
	repos := web.Repos{Users: pgRepo, Books: pgRepo, Reviews: pgRepo}
	auth := web.AuthDeps{
		Hasher:      hasher,
		Tokens:      tm,
		Blacklist:   bl,
		AccessGate:  guard.New(tm, bl, guard.RequireAccess),
		RefreshGate: guard.New(tm, bl, guard.RequireRefresh),
	}
	server := web.New(serverLog, cfg, repos, auth, rc)
	base.Println("Server is initialized")

	base.Println("build ended")
	return &App{
		config: cfg,
		server: server,
		log:    base,
		repo:   pgRepo,
		cache:  rc,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.log.Println("start application...")
	go a.server.Run()
	<-ctx.Done()
	a.log.Println("stop application...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	a.server.Close(stopCtx)
	a.repo.Close()
	a.cache.Close()

	return nil
}
