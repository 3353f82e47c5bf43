package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/shandysiswandi/goadvice/internal/pkg/pkgadvice"
	"github.com/shandysiswandi/goadvice/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goadvice/internal/pkg/pkglog"
	"github.com/shandysiswandi/goadvice/internal/pkg/pkgmetrics"
	"github.com/shandysiswandi/goadvice/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goadvice/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/goadvice/internal/pkg/pkguid"
	"github.com/shandysiswandi/goadvice/internal/pkg/pkgvalidator"
)

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config pkgconfig.Config

	// libraries
	logger     *slog.Logger
	uuid       pkguid.StringID
	goroutine  *pkgroutine.Manager
	validator  *pkgvalidator.Validator
	metrics    *pkgmetrics.Metrics
	translator *pkgadvice.Translator

	// server
	router      *pkgrouter.Router
	httpServer  *http.Server
	stopTimeout time.Duration

	//
	closerFn map[string]func(context.Context) error
}

func New() *App {
	logger := pkglog.InitLogging(nil, "info")

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
		logger: logger,
	}

	app.initConfig()
	app.initLibraries()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
