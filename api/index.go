package handler

import (
	"net/http"
	"sync"

	"cowork/config"
	"cowork/di"
	"cowork/shared/logger"
	transport "cowork/transport/http"
)

var (
	server *transport.HTTP
	once   sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
