// Package handler is the serverless entrypoint. Platforms that route
// straight to an exported http handler invoke this instead of cmd/app.
package handler

import (
	"net/http"
	"sync"
	"trimly/config"
	"trimly/di"
	"trimly/shared/logger"
)

var (
	initOnce sync.Once
	service  http.Handler
)

func Handler(w http.ResponseWriter, r *http.Request) {
	// chi matches against RequestURI, which some adapters leave blank.
	r.RequestURI = r.URL.String()

	initOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.SetLogLevel(cfg)

		service = di.InitializeService()
	})

	service.ServeHTTP(w, r)
}
