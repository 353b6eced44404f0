package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/cognicore/syllo/pkg/syllo"
	"github.com/cognicore/syllo/pkg/syllo/internalerr"
)

func newRouter(engine *syllo.Engine) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/v1/quiz/{lang}", handleQuiz(engine)).Methods(http.MethodGet)
	r.HandleFunc("/v1/quiz/{lang}/multi", handleMultiQuiz(engine)).Methods(http.MethodGet)
	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleQuiz(engine *syllo.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quiz, err := engine.GenerateQuiz(mux.Vars(r)["lang"])
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, quiz)
	}
}

func handleMultiQuiz(engine *syllo.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quiz, err := engine.GenerateMultiQuiz(mux.Vars(r)["lang"])
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, quiz)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, internalerr.ErrInvalidLanguage) {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("write response: %v", err)
	}
}
