package cron

import (
	"context"

	"shiftboard/config"
	"shiftboard/internal/service"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron)

type Cron struct {
	logger           *zap.Logger
	config           *config.Configuration
	directoryService *service.DirectoryService
	server           *cron.Cron
}

// NewCron .
func NewCron(
	logger *zap.Logger,
	config *config.Configuration,
	directoryService *service.DirectoryService,
) *Cron {
	server := cron.New(
		cron.WithSeconds(),
	)

	return &Cron{
		logger:           logger,
		config:           config,
		directoryService: directoryService,
		server:           server,
	}
}

func (c *Cron) Run() error {
	// 週期預熱參考資料快取，spec 留空則不排程
	if spec := c.config.Roster.WarmupCron; spec != "" {
		if _, err := c.server.AddFunc(spec, c.warmDirectoryCache); err != nil {
			return err
		}
	}

	c.server.Start()
	return nil
}

func (c *Cron) Stop(ctx context.Context) error {
	c.server.Stop()
	return nil
}

func (c *Cron) warmDirectoryCache() {
	if err := c.directoryService.WarmCache(context.Background()); err != nil {
		c.logger.Warn("directory cache warmup failed", zap.Error(err))
	}
}
