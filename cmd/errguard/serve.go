package main

import (
	"context"
	"io"
	"maps"
	"net/http"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/shuldan/errorhandler/pkg/config"
	"github.com/shuldan/errorhandler/pkg/contracts"
	"github.com/shuldan/errorhandler/pkg/errorhandler"
	pkghttp "github.com/shuldan/errorhandler/pkg/http"
	"github.com/shuldan/errorhandler/pkg/logger"
	"github.com/shuldan/errorhandler/pkg/metrics"
	"github.com/shuldan/errorhandler/pkg/process"
	"github.com/shuldan/errorhandler/pkg/severity"
)

const (
	envPrefix = "ERRGUARD_"

	serveCmdUsage = "serve"
	serveCmdShort = "start the guarded HTTP service"
	serveCmdLong  = `Start the HTTP service with the error handler armed.
	Severities listed in error_handler.also_log are logged, every severity
	when the list is empty. Besides /metrics the service exposes a few
	routes that raise failures on purpose:
	- /warn: raises a user warning
	- /panic: panics inside the handler
	- /fail: returns an error from the handler`
	serveCmdExample = `# Serve on port 9000 with debug logging
	errguard serve --addr :9000 -v debug

	# Load configuration from a specific file
	ERRGUARD_LOGGER__FORMAT=json errguard serve -c /etc/errguard.yaml`

	addrFlagName    = "addr"
	shutdownTimeout = 10 * time.Second
)

type serveFlags struct {
	addr string
}

func serveCmd(root *rootFlags) *cobra.Command {
	flags := &serveFlags{}
	cmd := &cobra.Command{
		Use:     serveCmdUsage,
		Short:   heredoc.Doc(serveCmdShort),
		Long:    heredoc.Doc(serveCmdLong),
		Example: heredoc.Doc(serveCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := runGuarded(cmd.Context(), cmd.ErrOrStderr(), root, flags, process.Default())
			if err != nil {
				cmd.PrintErrln(err)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&flags.addr, addrFlagName, "", "listen address, overrides http.addr")
	return cmd
}

// runGuarded serves inside rt.Guard and runs the shutdown functions on
// the way out, whether serve returned or panicked.
func runGuarded(ctx context.Context, w io.Writer, root *rootFlags, flags *serveFlags, rt *process.Runtime) (err error) {
	defer rt.Shutdown()
	rt.Guard(func() {
		err = serve(ctx, w, root, flags, rt)
	})
	return err
}

type service struct {
	handler  *errorhandler.ErrorHandler
	logger   contracts.Logger
	registry *prometheus.Registry
	router   http.Handler
	addr     string
}

func serve(ctx context.Context, w io.Writer, root *rootFlags, flags *serveFlags, rt *process.Runtime) error {
	cfg, err := config.Load(envPrefix, root.configPaths...)
	if err != nil {
		return err
	}
	if root.logLevel != "" {
		cfg = overrideLogLevel(cfg, root.logLevel)
	}

	svc, err := newService(cfg, w, rt)
	if err != nil {
		return err
	}
	if flags.addr != "" {
		svc.addr = flags.addr
	}

	server, err := pkghttp.NewServer(svc.addr, svc.router, svc.logger)
	if err != nil {
		return err
	}

	ctx, cancel := rt.NotifyOnSignals(ctx)
	defer cancel()

	if err := server.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()

	stopCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	return server.Stop(stopCtx)
}

func newService(cfg contracts.Config, w io.Writer, rt *process.Runtime) (*service, error) {
	log, err := logger.NewFromConfig(cfg, w)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	h, err := errorhandler.NewFromConfig(cfg,
		errorhandler.WithLogger(metrics.NewCountingLogger(log, registry)),
		errorhandler.WithHooks(rt),
	)
	if err != nil {
		return nil, err
	}
	if h.LoggedErrorTypes() == severity.None {
		h.AlsoLog(severity.All)
	}

	return &service{
		handler:  h,
		logger:   log,
		registry: registry,
		router:   newRouter(h, rt, registry),
		addr:     cfg.GetString("http.addr", ":8080"),
	}, nil
}

func newRouter(h *errorhandler.ErrorHandler, rt *process.Runtime, registry *prometheus.Registry) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(pkghttp.GinMiddleware(h))

	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/warn", func(c *gin.Context) {
		if err := rt.Trigger(severity.UserWarning, "warning requested", map[string]any{
			"request_id": pkghttp.RequestIDFromContext(c.Request.Context()),
		}); err != nil {
			_ = c.Error(err)
			return
		}
		c.String(http.StatusOK, "warned")
	})
	router.GET("/panic", func(*gin.Context) {
		panic("panic requested")
	})
	router.GET("/fail", func(c *gin.Context) {
		_ = c.Error(errFailRequested)
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler(registry)))

	return pkghttp.RequestIDMiddleware()(router)
}

// overrideLogLevel returns cfg with logger.level replaced.
func overrideLogLevel(cfg contracts.Config, level string) contracts.Config {
	values := cfg.All()
	section, _ := values["logger"].(map[string]any)
	section = maps.Clone(section)
	if section == nil {
		section = make(map[string]any)
	}
	section["level"] = level
	values["logger"] = section
	return config.NewMapConfig(values)
}
