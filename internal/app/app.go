package app

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/uneclaire/internal/cart"
	"github.com/vladislavdragonenkov/uneclaire/internal/catalog"
	"github.com/vladislavdragonenkov/uneclaire/internal/checkout"
	"github.com/vladislavdragonenkov/uneclaire/internal/contact"
	healthcheck "github.com/vladislavdragonenkov/uneclaire/internal/health"
	"github.com/vladislavdragonenkov/uneclaire/internal/ledger"
	"github.com/vladislavdragonenkov/uneclaire/internal/metrics"
	"github.com/vladislavdragonenkov/uneclaire/internal/rating"
	"github.com/vladislavdragonenkov/uneclaire/internal/version"
)

// Run собирает витрину и ведёт консольную сессию до выхода пользователя
// или сигнала остановки. Вся долговечная часть состояния — это слот корзины;
// реестр заказов намеренно живёт только в памяти сессии.
func Run(ctx context.Context, cfg Config) error {
	return run(ctx, cfg, os.Stdin, os.Stdout)
}

func run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	logger := log.WithField("component", "app")

	stateStore, closeStorage, err := initStateStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStorage()

	storeMetrics := metrics.NewStoreMetrics()

	cartStore := cart.NewStore(stateStore, storeMetrics, log.WithField("component", "cart-store"))
	cartStore.Restore()

	orderLedger := ledger.New(log.WithField("component", "order-ledger"), ledger.WithMetrics(storeMetrics))
	checkoutFlow := checkout.NewFlow(cartStore, orderLedger, log.WithField("component", "checkout"))

	contactForm := contact.NewForm(func(receipt contact.Receipt) {
		// Завершение "отправки" прилетает из таймера, когда приглашение уже
		// показано; печатаем с новой строки.
		_, _ = io.WriteString(out, "\n"+receipt.Acknowledgement()+"\n")
	},
		contact.WithDelay(cfg.ContactSendDelay),
		contact.WithLogger(log.WithField("component", "contact-form")),
	)

	healthHandler := healthcheck.NewHandler(version.GetVersion())
	healthHandler.RegisterChecker("state-store", healthcheck.NewStateStoreChecker(stateStore))

	metricsSrv := startMetricsServer(ctx, cfg.MetricsAddr, logger, healthHandler)
	defer shutdownHTTP(metricsSrv, logger)

	s := &session{
		cart:    cartStore,
		ledger:  orderLedger,
		flow:    checkoutFlow,
		catalog: catalog.Default(),
		contact: contactForm,
		rating:  rating.New(),
		out:     out,
		logger:  logger,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.run(ctx, in)
	}()

	select {
	case <-ctx.Done():
		logger.Info("получен сигнал остановки, завершаем сессию")
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// startMetricsServer запускает HTTP-обработчики /metrics и health-проверок.
func startMetricsServer(ctx context.Context, addr string, logger *log.Entry, healthHandler http.Handler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", healthHandler)
	mux.HandleFunc("/livez", healthcheck.LivenessHandler)

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		logger.Infof("метрики доступны по адресу %s/metrics", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Warn("metrics server failed")
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownHTTP(srv, logger)
	}()

	return srv
}

// shutdownHTTP аккуратно останавливает HTTP-сервер.
func shutdownHTTP(srv *http.Server, logger *log.Entry) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Warn("metrics shutdown with error")
	}
}
