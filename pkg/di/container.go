package di

import (
	"gorm.io/gorm"

	"tasktrack-api/application/serviceimpl"
	"tasktrack-api/domain/repositories"
	"tasktrack-api/domain/services"
	"tasktrack-api/infrastructure/sqlite"
	"tasktrack-api/interfaces/api/handlers"
	"tasktrack-api/pkg/config"
	"tasktrack-api/pkg/logger"
)

type Container struct {
	Config *config.Config

	DB *gorm.DB

	UserRepository repositories.UserRepository
	TaskRepository repositories.TaskRepository

	UserService services.UserService
	TaskService services.TaskService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initDatabase(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initDatabase() error {
	db, err := sqlite.NewDatabase(sqlite.DatabaseConfig{
		Path: c.Config.Database.Path,
	})
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database opened", "path", c.Config.Database.Path)

	if err := sqlite.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	return nil
}

func (c *Container) initRepositories() {
	c.UserRepository = sqlite.NewUserRepository(c.DB)
	c.TaskRepository = sqlite.NewTaskRepository(c.DB)
	logger.Info("Repositories initialized")
}

func (c *Container) initServices() {
	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.Config.JWT.Secret)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.UserRepository)
	logger.Info("Services initialized")
}

// GetHandlerServices bundles the dependencies the HTTP layer consumes.
func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService: c.UserService,
		TaskService: c.TaskService,
		JWTSecret:   c.Config.JWT.Secret,
	}
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) Cleanup() error {
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
