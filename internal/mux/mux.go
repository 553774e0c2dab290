package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"pokerhands/internal/config"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	equity  config.Equity
	logger  logrus.FieldLogger
}

// NewMux returns a new HTTP mux
func NewMux(version string, cfg config.Config) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		equity:  cfg.Equity,
		logger:  logrus.StandardLogger(),
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/classify").Handler(this.postClassify())
	r.Methods(http.MethodPost).Path("/best").Handler(this.postBest())
	r.Methods(http.MethodPost).Path("/compare").Handler(this.postCompare())
	r.Methods(http.MethodPost).Path("/showdown").Handler(this.postShowdown())
	r.Methods(http.MethodPost).Path("/equity").Handler(this.postEquity())

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusNotFound, nil)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusMethodNotAllowed, nil)
	})

	return this
}
