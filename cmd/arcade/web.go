package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cat-arcade/internal/platform/web"
)

var (
	flagWebAddr    string
	flagSessionTTL int
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the arcade HTTP/WebSocket server",
	Long: `Start an HTTP server hosting game sessions.

Clients create a session, drive it with JSON requests and watch it
through a WebSocket that streams a snapshot after every change.

Endpoints:
  GET    /api/games
  POST   /api/sessions                  {"game": "snake"}
  GET    /api/sessions/:id
  DELETE /api/sessions/:id
  POST   /api/sessions/:id/start
  POST   /api/sessions/:id/restart
  POST   /api/sessions/:id/select       {"entity_id": 3}
  POST   /api/sessions/:id/direction    {"direction": "left", "pressed": true}
  POST   /api/sessions/:id/viewport     {"width": 1280}
  GET    /api/sessions/:id/ws

Examples:
  arcade web
  arcade web --addr :9090 --session-ttl 5`,
	Args: cobra.NoArgs,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", "", "HTTP address (host:port, default from config)")
	webCmd.Flags().IntVar(&flagSessionTTL, "session-ttl", 0, "Idle session lifetime in minutes (default from config)")
}

func runWeb(cmd *cobra.Command, _ []string) error {
	cfg := web.DefaultServerConfig()
	cfg.Address = appConfig.Web.Address
	cfg.SessionTTL = appConfig.Web.SessionTTL()
	cfg.Seed = flagSeed
	if flagWebAddr != "" {
		cfg.Address = flagWebAddr
	}
	if flagSessionTTL > 0 {
		cfg.SessionTTL = time.Duration(flagSessionTTL) * time.Minute
	}

	logger, err := stderrLogger("arcade-web")
	if err != nil {
		return err
	}

	if appConfig.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	server := web.NewServer(cfg, logger)

	fmt.Printf("Starting arcade web server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return server.ListenAndServe(ctx)
}
