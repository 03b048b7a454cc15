package controllers

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/labstack/gommon/log"

	"github.com/Abhigautam23/netsuite-financial-validator/internal/gateway"
	"github.com/Abhigautam23/netsuite-financial-validator/internal/usecase"
)

// App wires the HTTP surface over the reporting usecase. Upload sessions
// live in memory for the process lifetime; there is no persistence.
type App struct {
	Router *mux.Router

	uc       *usecase.ReportingUseCase
	sessions *sessionRegistry
}

func (a *App) Initialize() {
	repo := gateway.NewCSVLedgerRepository()
	a.uc = usecase.NewReportingUseCase(repo)
	a.sessions = newSessionRegistry()

	a.Router = mux.NewRouter().StrictSlash(true)
	a.initializeRoutes()
}

func (a *App) initializeRoutes() {
	a.Router.HandleFunc("/api/uploads", a.CreateUpload).Methods("POST")
	a.Router.HandleFunc("/api/uploads/{id}/filters", a.GetFilterValues).Methods("GET")
	a.Router.HandleFunc("/api/uploads/{id}/validation", a.GetValidation).Methods("GET")
	a.Router.HandleFunc("/api/uploads/{id}/reports/{report}", a.GetReport).Methods("GET")
}

func (a *App) RunServer() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Infof("[Server] Listening on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, a.Router))
}
