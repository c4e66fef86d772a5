package metrics

import (
	"net/http"
	"time"

	"slideshow-builder/internal/logging"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Serve exposes /metrics on the given port. It blocks, so callers run
// it in a goroutine; for a batch tool the listener simply dies with the
// process.
func Serve(port string) {
	InitializeMetrics()

	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	logging.Info("Metrics listening on :%s", port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logging.Error("Metrics server error: %v", err)
	}
}
