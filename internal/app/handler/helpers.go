// Package handler contains the HTTP handlers of the movie gateway. Every
// handler reads from the movie manager and writes its result as JSON; any
// failure upstream is reported to the client as a plain 500.
package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// writeJSON marshals v and writes it with the given status. v is marshalled
// before any header is written so a marshal failure can still become a 500.
func writeJSON(res http.ResponseWriter, status int, v any, logger *zap.Logger) {
	response, err := json.Marshal(v)
	if err != nil {
		logger.Error("cannot marshal response", zap.Error(err))
		internalError(res)
		return
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)

	if _, err := res.Write(response); err != nil {
		logger.Info("cannot write response", zap.Error(err))
	}
}

// internalError writes a generic server error without leaking details.
func internalError(res http.ResponseWriter) {
	http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
