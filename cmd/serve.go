package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/coursekit/coursekit/internal/server"
	"github.com/coursekit/coursekit/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the course locally with live reload",
	Long:  `Starts a local dev server that resolves each request against the catalog, renders lessons on the fly, and reloads connected browsers when content changes.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "override the configured port")
	serveCmd.Flags().Bool("open", false, "open the browser automatically")
	serveCmd.Flags().Bool("allow-all", false, "allow all CORS origins")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	port, _ := cmd.Flags().GetInt("port")
	if port == 0 {
		port = cfg.Port
	}
	allowAll, _ := cmd.Flags().GetBool("allow-all")

	renderer, err := site.New(site.Options{
		ContentDir:     cfg.ContentDir,
		HighlightStyle: cfg.HighlightStyle,
		LiveReload:     cfg.LiveReload,
		AssetInclude:   cfg.AssetInclude,
		AssetExclude:   cfg.AssetExclude,
	})
	if err != nil {
		return err
	}

	index, err := site.BuildSearchIndex(cat, cfg.ContentDir)
	if err != nil {
		return fmt.Errorf("building search index: %w", err)
	}

	srv := server.New(server.Config{
		Port:         port,
		ContentDir:   cfg.ContentDir,
		LiveReload:   cfg.LiveReload,
		AllowAll:     allowAll,
		AssetInclude: cfg.AssetInclude,
		AssetExclude: cfg.AssetExclude,
	}, cat, renderer, index)

	if cfg.LiveReload {
		stop, err := server.WatchContent(cfg.ContentDir, func() {
			if err := srv.Refresh(); err != nil {
				log.Printf("serve: refresh after content change: %v", err)
				return
			}
			srv.Hub().Broadcast()
		})
		if err != nil {
			return fmt.Errorf("watching content dir: %w", err)
		}
		defer stop()
	}

	url := fmt.Sprintf("http://localhost:%d", port)
	fmt.Printf("Serving %q at %s — press Ctrl+C to stop\n", cat.Title, url)
	if open, _ := cmd.Flags().GetBool("open"); open {
		go openBrowser(url)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelShutdown()
		return srv.Shutdown(shutdownCtx)
	}
}
