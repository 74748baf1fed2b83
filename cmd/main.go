package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/AcasaResidencial/api-financeiro/internal/acordotrabalhista"
	"github.com/AcasaResidencial/api-financeiro/internal/auth"
	"github.com/AcasaResidencial/api-financeiro/internal/financeiro"
	"github.com/AcasaResidencial/api-financeiro/internal/hospede"
	"github.com/AcasaResidencial/api-financeiro/internal/notificacao"
	"github.com/AcasaResidencial/api-financeiro/internal/pagamentomensal"
	"github.com/AcasaResidencial/api-financeiro/internal/parcelaacordo"
	"github.com/AcasaResidencial/api-financeiro/internal/reajuste"
	"github.com/AcasaResidencial/api-financeiro/internal/utils/db"
)

func main() {
	// .env é opcional; em produção as variáveis vêm do ambiente.
	_ = godotenv.Load()

	conn, err := db.ConnectDataBase()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := conn.AutoMigrate(
		&auth.Usuario{},
		&hospede.Hospede{},
		&financeiro.RegistroFinanceiro{},
		&reajuste.ReajusteFinanceiro{},
		&pagamentomensal.PagamentoMensal{},
		&acordotrabalhista.AcordoTrabalhista{},
		&parcelaacordo.ParcelaAcordo{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Handlers
	authHandler := auth.NewHandler(conn)
	hospedeHandler := hospede.NewHandler(hospede.NewRepository(conn))
	financeiroHandler := financeiro.NewHandler(financeiro.NewRepository(conn))
	pagamentoHandler := pagamentomensal.NewHandler(pagamentomensal.NewRepository(conn))
	acordoHandler := acordotrabalhista.NewHandler(acordotrabalhista.NewRepository(conn))
	parcelaHandler := parcelaacordo.NewHandler(parcelaacordo.NewRepository(conn))
	notificacaoHandler := notificacao.NewHandler()

	// Router
	r := mux.NewRouter()

	// Rota pública
	r.HandleFunc("/login", authHandler.Login).Methods("POST")

	// Rotas autenticadas
	api := r.PathPrefix("/").Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Hóspedes
	api.HandleFunc("/hospedes", hospedeHandler.Criar).Methods("POST")
	api.HandleFunc("/hospedes", hospedeHandler.Listar).Methods("GET")
	api.HandleFunc("/hospedes/{id}", hospedeHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/hospedes/{id}", hospedeHandler.Atualizar).Methods("PUT")

	// Registro financeiro do hóspede
	api.HandleFunc("/hospedes/{id}/financeiro", financeiroHandler.Criar).Methods("POST")
	api.HandleFunc("/hospedes/{id}/financeiro", financeiroHandler.BuscarPorHospede).Methods("GET")
	api.HandleFunc("/hospedes/{id}/financeiro", financeiroHandler.Atualizar).Methods("PUT")

	// Pagamentos mensais
	api.HandleFunc("/hospedes/{id}/pagamentos", pagamentoHandler.Registrar).Methods("POST")
	api.HandleFunc("/hospedes/{id}/pagamentos", pagamentoHandler.Listar).Methods("GET")

	// Reajustes de mensalidade
	api.HandleFunc("/hospedes/{id}/reajustes", financeiroHandler.AplicarReajuste).Methods("POST")
	api.HandleFunc("/hospedes/{id}/reajustes", financeiroHandler.ListarReajustes).Methods("GET")

	// Acordos trabalhistas
	api.HandleFunc("/acordos", acordoHandler.Criar).Methods("POST")
	api.HandleFunc("/acordos", acordoHandler.Listar).Methods("GET")
	api.HandleFunc("/acordos/estatisticas", acordoHandler.EstatisticasGerais).Methods("GET")
	api.HandleFunc("/acordos/{id}", acordoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/acordos/{id}/parcelas", parcelaHandler.ListByAcordo).Methods("GET")
	api.HandleFunc("/parcelas-acordo/{pid}/pagamento", parcelaHandler.MarcarPagamento).Methods("PATCH")

	// Relatórios
	api.HandleFunc("/relatorios/receita-mensal", financeiroHandler.ReceitaMensal).Methods("GET")

	// Ponte de notificações (o relay de WhatsApp roda como processo separado)
	api.HandleFunc("/notificar", notificacaoHandler.EnviarAlerta).Methods("POST")

	// Rotas restritas a administradores
	admin := r.PathPrefix("/").Subrouter()
	admin.Use(auth.MiddlewareAutenticacao, auth.RequireAdmin)
	admin.HandleFunc("/usuarios", authHandler.CriarUsuario).Methods("POST")
	admin.HandleFunc("/hospedes/{id}", hospedeHandler.Deletar).Methods("DELETE")
	admin.HandleFunc("/acordos/{id}", acordoHandler.Deletar).Methods("DELETE")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{os.Getenv("CORS_ORIGIN")},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	log.Printf("Servidor rodando em http://localhost:%s", porta)
	log.Fatal(http.ListenAndServe(":"+porta, handler))
}
