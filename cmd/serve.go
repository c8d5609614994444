package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shelfd/core/logger"
	"shelfd/core/middleware/rayid"
	"shelfd/feature/catalog"
)

// serveCmd starts the local HTTP surface.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog over HTTP",
	Long: `Start a local HTTP server exposing the catalog. Reads come from
the in-memory store; writes run through the optimistic engine, so responses
reflect local state immediately and remote failures are rolled back before
they surface as errors.`,
	RunE: runServe,
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// The HTTP surface observes state through responses; render passes
	// only need a log trace.
	a, err := newApp(ctx, func(l *zap.Logger) catalog.Notifier {
		return catalog.LogNotifier{Log: l}
	})
	if err != nil {
		return err
	}
	logg := a.log
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We log our own startup message
	})

	// RayID must be first to trace everything
	app.Use(rayid.New())

	// Request logging middleware (Zap + RayID)
	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	svc := catalog.NewService(a.engine, logg)
	h := catalog.NewHandler(svc)
	h.RegisterRoutes(app)

	go func() {
		logg.Info("Starting server", zap.String("addr", a.cfg.Server.Addr()))
		if err := app.Listen(a.cfg.Server.Addr()); err != nil {
			logg.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
	logg.Info("Shutting down server...")
	return app.Shutdown()
}
