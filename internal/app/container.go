package app

import (
	"context"
	"errors"
	"time"

	"job-portal/internal/config"
	"job-portal/internal/database"
	"job-portal/internal/database/migration"
	dbpostgres "job-portal/internal/database/postgres"
	"job-portal/internal/infrastructure/cache"
	pgpersist "job-portal/internal/infrastructure/persistence/postgres"
	"job-portal/internal/pkg/jwt"
	"job-portal/internal/pkg/logger"
	"job-portal/internal/repository"
	"job-portal/internal/usecase"
	appuc "job-portal/internal/usecase/application"
	companyuc "job-portal/internal/usecase/company"
	jobuc "job-portal/internal/usecase/job"
	useruc "job-portal/internal/usecase/user"
	"job-portal/internal/ws"

	"go.uber.org/zap"
)

type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	Memory *cache.Memory
	JWT    *jwt.HMACService
	Hub    *ws.Hub

	users *pgpersist.UserRepository

	Auth         usecase.AuthUsecase
	Users        *useruc.Service
	Jobs         *jobuc.Service
	Companies    *companyuc.Service
	Applications *appuc.Service
}

func NewContainer(ctx context.Context, cfg config.Config, l *zap.Logger) (*Container, error) {
	l = logger.OrNop(l)

	connectTimeout := cfg.Database.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = 10 * time.Second
	}
	connCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	db, err := dbpostgres.Connect(connCtx, cfg.Database)
	if err != nil {
		return nil, err
	}

	c := &Container{Config: cfg, Logger: l, DB: db}
	return c, nil
}

// Migrate applies pending schema migrations from MIGRATIONS_DIR.
func (c *Container) Migrate(ctx context.Context) error {
	r := migration.Runner{Dir: c.Config.App.MigrationsDir, Logger: c.Logger}
	return r.Run(ctx, c.DB.SQLDB())
}

// Wire builds repositories and services. The users repository prepares its
// statements here, so the schema must already exist.
func (c *Container) Wire(ctx context.Context) error {
	users, err := pgpersist.NewUserRepository(ctx, c.DB.SQLDB())
	if err != nil {
		return err
	}
	c.users = users

	c.Cache = cache.NewRedis(c.Config.Redis, c.Logger)
	var search jobuc.SearchCache = c.Cache
	if !c.Cache.Available() {
		mem, err := cache.NewMemory(c.Config.Redis.TTL, c.Logger.Named("cache"))
		if err != nil {
			c.Logger.Warn("in-process cache unavailable, searches are not cached", zap.Error(err))
			search = nil
		} else {
			c.Memory = mem
			search = mem
		}
	}
	c.Hub = ws.NewHub(c.Logger.Named("ws"))
	c.JWT = jwt.NewHMACService(
		c.Config.App.AppName,
		c.Config.JWT.AccessSecret,
		c.Config.JWT.RefreshSecret,
		c.Config.JWT.AccessExpiresIn,
		c.Config.JWT.RefreshExpiresIn,
	)

	jobs := repository.NewPostgresJobRepository(c.DB)
	companies := repository.NewPostgresCompanyRepository(c.DB)
	apps := repository.NewPostgresApplicationRepository(c.DB)

	c.Auth = usecase.NewAuthUsecase(users, c.JWT)
	c.Users = useruc.NewService(users)
	c.Companies = companyuc.NewService(companies)
	c.Applications = appuc.NewService(jobs, apps,
		appuc.WithCache(search),
		appuc.WithLogger(c.Logger.Named("applications")),
	)
	c.Jobs = jobuc.NewService(jobs, apps,
		jobuc.WithCache(search),
		jobuc.WithNotifier(c.Hub),
		jobuc.WithLogger(c.Logger.Named("jobs")),
	)
	return nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	var errs []error
	if c.users != nil {
		errs = append(errs, c.users.Close())
	}
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.Memory != nil {
		errs = append(errs, c.Memory.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
