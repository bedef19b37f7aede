package app

import (
	"fmt"
	"sync"

	"github.com/allisson/resourceapi/internal/database"
	resourceDomain "github.com/allisson/resourceapi/internal/resource/domain"
	resourceHTTP "github.com/allisson/resourceapi/internal/resource/http"
	resourceRepository "github.com/allisson/resourceapi/internal/resource/repository"
	resourceUseCase "github.com/allisson/resourceapi/internal/resource/usecase"
)

type resourceComponents struct {
	recordRepository resourceUseCase.RecordRepository
	resourceRegistry *resourceUseCase.Registry
	resourceHandler  *resourceHTTP.ResourceHandler

	recordRepositoryInit sync.Once
	resourceRegistryInit sync.Once
	resourceHandlerInit  sync.Once
}

// RecordRepository returns the record repository based on database driver.
func (c *Container) RecordRepository() (resourceUseCase.RecordRepository, error) {
	return lazy(c, &c.recordRepositoryInit, "recordRepository", &c.recordRepository, c.initRecordRepository)
}

// ResourceRegistry returns the registry holding one adapter per registered schema.
func (c *Container) ResourceRegistry() (*resourceUseCase.Registry, error) {
	return lazy(c, &c.resourceRegistryInit, "resourceRegistry", &c.resourceRegistry, c.initResourceRegistry)
}

// ResourceHandler returns the HTTP handler for /api/v1/:model.
func (c *Container) ResourceHandler() (*resourceHTTP.ResourceHandler, error) {
	c.resourceHandlerInit.Do(func() {
		c.resourceHandler = resourceHTTP.NewResourceHandler(c.Logger())
	})
	return c.resourceHandler, nil
}

func (c *Container) initRecordRepository() (resourceUseCase.RecordRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for record repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverPostgres:
		return resourceRepository.NewPostgreSQLRecordRepository(db), nil
	case database.DriverMySQL:
		return resourceRepository.NewMySQLRecordRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initResourceRegistry() (*resourceUseCase.Registry, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for resource registry: %w", err)
	}

	recordRepository, err := c.RecordRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get record repository for resource registry: %w", err)
	}

	publisher, err := c.EventPublisher()
	if err != nil {
		return nil, fmt.Errorf("failed to get event publisher for resource registry: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for resource registry: %w", err)
	}

	schemas := resourceDomain.Schemas()
	adapters := make([]resourceUseCase.ResourceAdapter, 0, len(schemas))
	for _, schema := range schemas {
		adapter := resourceUseCase.NewResourceAdapter(schema, txManager, recordRepository, publisher)
		if c.config.MetricsEnabled {
			adapter = resourceUseCase.NewResourceAdapterWithMetrics(adapter, businessMetrics)
		}
		adapters = append(adapters, adapter)
	}

	return resourceUseCase.NewRegistry(adapters...), nil
}
