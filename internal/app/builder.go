package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/rize-zxc/Project-Wesker/internal/config"
	"github.com/rize-zxc/Project-Wesker/internal/domain"
	"github.com/rize-zxc/Project-Wesker/internal/infra/cache/memory"
	"github.com/rize-zxc/Project-Wesker/internal/infra/database/postgres"
	"github.com/rize-zxc/Project-Wesker/internal/service"
	"github.com/rize-zxc/Project-Wesker/internal/transport/web"
)

type App struct {
	config *config.Config
	server *web.Server
	log    *log.Logger
	repo   domain.UsersRepo
	cache  domain.Cache
}

func Build(ctx context.Context) (*App, error) {
	base := log.New(os.Stdout, "[app] ", log.LstdFlags)

	serverLog := log.New(base.Writer(), base.Prefix()+"[server] ", base.Flags())
	pgLog := log.New(base.Writer(), base.Prefix()+"[postgres] ", base.Flags())
	cacheLog := log.New(base.Writer(), base.Prefix()+"[cache] ", base.Flags())
	usersLog := log.New(base.Writer(), base.Prefix()+"[users] ", base.Flags())
	postsLog := log.New(base.Writer(), base.Prefix()+"[posts] ", base.Flags())

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

	// Процессные синглтоны: кеш, счетчик, флаг доступности.
	// Создаются здесь один раз и инжектятся по ссылке.
	cache := memory.New(cacheLog)
	counter := service.NewCounter()
	status := service.NewStatus(counter)

	users := service.NewUsers(usersLog, pgRepo, cache, counter)
	posts := service.NewPosts(postsLog, pgRepo, cache, counter)

	base.Println("init Server")
	svc := web.Services{Users: users, Posts: posts, Status: status, Counter: counter}
	server := web.New(serverLog, cfg, svc, pgRepo)
	base.Println("Server is initialized")

	base.Println("build ended")
	return &App{
		config: cfg,
		server: server,
		log:    base,
		repo:   pgRepo,
		cache:  cache,
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
	a.cache.Clear()

	return nil
}
