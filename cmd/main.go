package main

import (
	"log"
	"net/http"
	"os"

	"github.com/ClinicaFlow/api-financeiro/internal/appointment"
	"github.com/ClinicaFlow/api-financeiro/internal/auth"
	"github.com/ClinicaFlow/api-financeiro/internal/cardfeerule"
	"github.com/ClinicaFlow/api-financeiro/internal/cashflow"
	"github.com/ClinicaFlow/api-financeiro/internal/collaborator"
	"github.com/ClinicaFlow/api-financeiro/internal/cost"
	"github.com/ClinicaFlow/api-financeiro/internal/dashboard"
	"github.com/ClinicaFlow/api-financeiro/internal/patient"
	"github.com/ClinicaFlow/api-financeiro/internal/procedure"
	"github.com/ClinicaFlow/api-financeiro/internal/quote"
	"github.com/ClinicaFlow/api-financeiro/internal/sale"
	"github.com/ClinicaFlow/api-financeiro/internal/utils/db"
	"github.com/ClinicaFlow/api-financeiro/internal/workspace"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis do ambiente")
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := workspace.Migrate(database); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}
	if err := patient.Migrate(database); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}
	if err := procedure.Migrate(database); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}
	if err := collaborator.Migrate(database); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}
	if err := appointment.Migrate(database); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}
	if err := cardfeerule.Migrate(database); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}
	if err := sale.Migrate(database); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}
	if err := cost.Migrate(database); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}
	if err := quote.Migrate(database); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Handlers
	feeRepo := cardfeerule.NewRepository(database)
	feeResolver := cardfeerule.NewResolver(feeRepo)
	saleRepo := sale.NewRepository(database)

	workspaceHandler := workspace.NewHandler(database)
	patientHandler := patient.NewHandler(database)
	procedureHandler := procedure.NewHandler(database)
	collaboratorHandler := collaborator.NewHandler(database)
	appointmentHandler := appointment.NewHandler(database)
	feeHandler := cardfeerule.NewHandler(database)
	saleHandler := sale.NewHandler(database, feeResolver)
	costHandler := cost.NewHandler(database)
	quoteHandler := quote.NewHandler(database, saleRepo, feeResolver)
	cashflowHandler := cashflow.NewHandler(database)
	dashboardHandler := dashboard.NewHandler(database)

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/login", workspaceHandler.Login).Methods("POST")
	r.HandleFunc("/workspaces", workspaceHandler.Register).Methods("POST")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	api.HandleFunc("/workspaces/me", workspaceHandler.Me).Methods("GET")

	// Pacientes
	api.HandleFunc("/pacientes", patientHandler.Create).Methods("POST")
	api.HandleFunc("/pacientes", patientHandler.List).Methods("GET")
	api.HandleFunc("/pacientes/{id}", patientHandler.Get).Methods("GET")

	// Procedimentos
	api.HandleFunc("/procedimentos", procedureHandler.Create).Methods("POST")
	api.HandleFunc("/procedimentos", procedureHandler.List).Methods("GET")
	api.HandleFunc("/procedimentos/{id}", procedureHandler.Update).Methods("PUT")
	api.HandleFunc("/procedimentos/{id}", procedureHandler.Delete).Methods("DELETE")

	// Colaboradores
	api.HandleFunc("/colaboradores", collaboratorHandler.Create).Methods("POST")
	api.HandleFunc("/colaboradores", collaboratorHandler.List).Methods("GET")
	api.HandleFunc("/colaboradores/{id}", collaboratorHandler.Update).Methods("PUT")
	api.HandleFunc("/colaboradores/{id}", collaboratorHandler.Delete).Methods("DELETE")

	// Sessões
	api.HandleFunc("/sessoes", appointmentHandler.Create).Methods("POST")
	api.HandleFunc("/sessoes", appointmentHandler.List).Methods("GET")
	api.HandleFunc("/sessoes/{id}/status", appointmentHandler.UpdateStatus).Methods("PATCH")

	// Tabela de taxas de cartão (configuração do workspace, admin)
	taxas := api.NewRoute().Subrouter()
	taxas.Use(auth.RequireAdmin)
	taxas.HandleFunc("/taxas-cartao", feeHandler.Create).Methods("POST")
	taxas.HandleFunc("/taxas-cartao/{id}", feeHandler.Update).Methods("PUT")
	taxas.HandleFunc("/taxas-cartao/{id}", feeHandler.Delete).Methods("DELETE")
	api.HandleFunc("/taxas-cartao", feeHandler.List).Methods("GET")

	// Vendas e parcelas
	api.HandleFunc("/vendas", saleHandler.Create).Methods("POST")
	api.HandleFunc("/vendas", saleHandler.List).Methods("GET")
	api.HandleFunc("/vendas/{id}", saleHandler.Get).Methods("GET")
	api.HandleFunc("/vendas/{id}", saleHandler.Delete).Methods("DELETE")
	api.HandleFunc("/parcelas/{id}/pagar", saleHandler.PayInstallment).Methods("PATCH")
	api.HandleFunc("/parcelas/{id}/vencer", saleHandler.OverdueInstallment).Methods("PATCH")

	// Custos
	api.HandleFunc("/custos", costHandler.Create).Methods("POST")
	api.HandleFunc("/custos", costHandler.List).Methods("GET")
	api.HandleFunc("/custos/{id}", costHandler.Get).Methods("GET")
	api.HandleFunc("/custos/{id}", costHandler.Update).Methods("PUT")
	api.HandleFunc("/custos/{id}", costHandler.Delete).Methods("DELETE")

	// Orçamentos
	api.HandleFunc("/orcamentos", quoteHandler.Create).Methods("POST")
	api.HandleFunc("/orcamentos", quoteHandler.List).Methods("GET")
	api.HandleFunc("/orcamentos/{id}", quoteHandler.Get).Methods("GET")
	api.HandleFunc("/orcamentos/{id}", quoteHandler.Delete).Methods("DELETE")
	api.HandleFunc("/orcamentos/{id}/status", quoteHandler.UpdateStatus).Methods("PATCH")
	api.HandleFunc("/orcamentos/{id}/converter", quoteHandler.Convert).Methods("POST")

	// Agregações
	api.HandleFunc("/fluxo-caixa", cashflowHandler.Get).Methods("GET")
	api.HandleFunc("/dashboard", dashboardHandler.Get).Methods("GET")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}
	log.Println("Servidor rodando em http://localhost:" + porta)
	log.Fatal(http.ListenAndServe(":"+porta, handler))
}
