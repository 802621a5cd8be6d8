package dashboard

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/parkspot/parkwatch/internal/log"
	"github.com/parkspot/parkwatch/pkg/config"
	"go.uber.org/zap"
)

//go:embed all:assets
var assetsFS embed.FS

const defaultPageTitle = "Parking Predictions"

// Controller serves the dashboard over HTTP: the rendered page, a JSON state
// endpoint mirroring it, and static assets.
type Controller struct {
	ctx        context.Context
	wg         *sync.WaitGroup
	dashConfig config.DashboardData
	Server     http.Server
	FS         fs.FS
	view       *View
	logger     *zap.SugaredLogger
	handlers   *Handlers
}

// NewController creates the dashboard HTTP controller reading from the given
// view.
func NewController(ctx context.Context, wg *sync.WaitGroup, dc config.DashboardData, view *View, logger *zap.SugaredLogger) (*Controller, error) {
	ctrl := &Controller{
		ctx:        ctx,
		wg:         wg,
		dashConfig: dc,
		view:       view,
		logger:     logger,
	}

	// If a ListenAddr was not provided, listen on all interfaces
	if ctrl.dashConfig.ListenAddr == "" {
		logger.Info("dashboard.listen_addr not provided; defaulting to 0.0.0.0 (all interfaces)")
		ctrl.dashConfig.ListenAddr = "0.0.0.0"
	}

	if ctrl.dashConfig.Port == 0 {
		logger.Info("dashboard.port not provided; defaulting to 8080")
		ctrl.dashConfig.Port = 8080
	}

	if ctrl.dashConfig.PageTitle == "" {
		ctrl.dashConfig.PageTitle = defaultPageTitle
	}

	assets, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		return nil, fmt.Errorf("failed to create assets sub-filesystem: %w", err)
	}
	ctrl.FS = assets

	ctrl.handlers = NewHandlers(ctrl)

	router := ctrl.setupRouter()
	ctrl.Server.Addr = fmt.Sprintf("%v:%v", ctrl.dashConfig.ListenAddr, ctrl.dashConfig.Port)
	ctrl.Server.Handler = router

	return ctrl, nil
}

// StartController starts the dashboard HTTP server
func (c *Controller) StartController() error {
	log.Info("Starting dashboard controller...")
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		if c.dashConfig.TLSCertPath != "" && c.dashConfig.TLSKeyPath != "" {
			if err := c.Server.ListenAndServeTLS(c.dashConfig.TLSCertPath, c.dashConfig.TLSKeyPath); err != http.ErrServerClosed {
				log.Errorf("dashboard server error: %v", err)
			}
		} else {
			if err := c.Server.ListenAndServe(); err != http.ErrServerClosed {
				log.Errorf("dashboard server error: %v", err)
			}
		}
	}()

	go func() {
		<-c.ctx.Done()
		log.Info("Shutting down the dashboard server...")
		c.Server.Shutdown(context.Background())
	}()

	return nil
}

// setupRouter configures the HTTP router with all endpoints
func (c *Controller) setupRouter() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/api/state", c.handlers.GetState)
	router.HandleFunc("/", c.handlers.ServeDashboard)

	// Static file serving
	router.PathPrefix("/").Handler(http.FileServer(http.FS(c.FS)))

	return router
}
