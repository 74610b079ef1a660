package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"skinlab/internal/app/analysis"
	"skinlab/internal/app/config"
	"skinlab/internal/app/handler"
	"skinlab/internal/app/pkg/session"
	"skinlab/internal/app/repository"
)

func main() {
	log.Println("Application start!")

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal(err)
	}
	cfg.SetupLogger()
	gin.SetMode(cfg.GinMode)

	repo := repository.New()
	sessions := session.NewStore(cfg.SessionTTL, func(id string) *analysis.Session {
		return analysis.NewSession(id, repo)
	})

	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxUploadMB << 20

	h := handler.NewHandler(repo, cfg, sessions)
	h.RegisterStatic(router)
	h.RegisterHandler(router)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.ServiceHost, cfg.ServicePort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithField("addr", srv.Addr).Info("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		err := sessions.Run(ctx, time.Minute)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
	log.Println("Application terminated!")
}
