// Package managers wires the parkwatch components together and starts them.
package managers

import (
	"context"
	"fmt"
	"sync"

	"github.com/parkspot/parkwatch/internal/dashboard"
	"github.com/parkspot/parkwatch/internal/feed"
	"github.com/parkspot/parkwatch/internal/poll"
	"github.com/parkspot/parkwatch/internal/predict"
	"github.com/parkspot/parkwatch/pkg/config"
	"go.uber.org/zap"
)

// ControllerManager interface for the controller manager
type ControllerManager interface {
	StartControllers() error
}

// Controller is an interface that provides standard methods for the
// long-running component backends
type Controller interface {
	StartController() error
}

type controllerManager struct {
	ctx         context.Context
	wg          *sync.WaitGroup
	logger      *zap.SugaredLogger
	controllers []Controller
}

// NewControllerManager builds the dashboard surface, the presenter over it,
// the dashboard HTTP controller and the poll scheduler from configuration.
func NewControllerManager(ctx context.Context, wg *sync.WaitGroup, provider config.ConfigProvider, logger *zap.SugaredLogger) (ControllerManager, error) {
	cfg, err := provider.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// The view is the single shared surface: the presenter writes it, the
	// dashboard handlers snapshot it.
	view := dashboard.NewView()

	countTargets := make(map[string]dashboard.TextTarget, len(predict.Classifications))
	for _, key := range predict.Classifications {
		countTargets[key] = view.CountTarget(key)
	}
	presenter := dashboard.NewPresenter(countTargets, view.UpdatedTarget(), view.Table())

	dashCtrl, err := dashboard.NewController(ctx, wg, cfg.Dashboard, view, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating dashboard controller: %w", err)
	}

	scheduler := poll.NewScheduler(ctx, wg, feed.NewClient(cfg.Feed.URL), presenter, logger)

	return &controllerManager{
		ctx:         ctx,
		wg:          wg,
		logger:      logger,
		controllers: []Controller{dashCtrl, scheduler},
	}, nil
}

// StartControllers starts every controller; the dashboard server comes up
// before the first poll cycle fires.
func (c *controllerManager) StartControllers() error {
	c.logger.Info("Starting controller manager...")

	for _, controller := range c.controllers {
		if err := controller.StartController(); err != nil {
			return fmt.Errorf("error starting controller: %w", err)
		}
	}

	c.logger.Infof("Started %d controllers successfully", len(c.controllers))
	return nil
}
