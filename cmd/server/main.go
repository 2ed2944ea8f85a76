package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/go-chi/chi/v5"

	"github.com/voyatra/package-pricing-service/internal/app/pricing/queries"
	"github.com/voyatra/package-pricing-service/internal/app/pricing/queries/candidate_rules"
	"github.com/voyatra/package-pricing-service/internal/app/pricing/queries/get_breakdown"
	"github.com/voyatra/package-pricing-service/internal/app/pricing/repo"
	"github.com/voyatra/package-pricing-service/internal/app/pricing/usecases/price_package"
	"github.com/voyatra/package-pricing-service/internal/app/pricing/usecases/quote_package"
	"github.com/voyatra/package-pricing-service/internal/config"
	"github.com/voyatra/package-pricing-service/internal/pkg/clock"
	committer "github.com/voyatra/package-pricing-service/internal/pkg/committer"
	httppricing "github.com/voyatra/package-pricing-service/internal/transport/http/pricing"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM.
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		log.Println("shutdown signal received")
		cancel()
	}()

	client, err := spanner.NewClient(ctx, cfg.SpannerDatabase)
	if err != nil {
		log.Fatalf("spanner.NewClient: %v", err)
	}
	defer client.Close()

	clk := clock.RealClock{}
	readModel := queries.NewSpannerReadModel(client)
	componentRepo := repo.NewComponentRepo(clk)
	outboxRepo := repo.NewOutboxRepo()
	cm := committer.NewAdapter(client)

	// CQRS wiring
	quoteUC := quote_package.NewInteractor(readModel, clk)
	cmds := httppricing.Commands{
		Price: price_package.NewInteractor(quoteUC, componentRepo, outboxRepo, cm, clk),
	}
	qrys := httppricing.Queries{
		Quote:     quoteUC,
		Breakdown: get_breakdown.NewHandler(readModel),
		Rules:     candidate_rules.NewHandler(readModel),
	}
	h := httppricing.NewHandler(cmds, qrys)

	root := chi.NewRouter()
	root.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	root.Mount("/v1", h.Routes())

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      root,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("http server listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http serve: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}

	log.Println("server stopped")
}
