package main

import (
	"fmt"
	"net/http"

	"transportbilty/config"
	"transportbilty/db"
	"transportbilty/db/mongo"
	"transportbilty/db/postgres"
	"transportbilty/handlers"
	"transportbilty/repository"
	"transportbilty/routes"
)

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()

	var store db.DB
	var biltyRepo repository.BiltyRepository

	switch db.DBType(cfg.DBType) {
	case db.Postgres:
		db.RunMigrations(cfg.PostgresURL)

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		store = pg
		biltyRepo = repository.NewPostgresBiltyRepo(pg.Conn)

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		store = mg
		biltyRepo = repository.NewMongoBiltyRepo(mg.Client)

	default:
		panic("DB_TYPE not supported")
	}
	defer store.Disconnect()

	// Handlers
	biltyHandler := &handlers.BiltyHandler{
		Repo:         biltyRepo,
		Timeout:      cfg.QueryTimeout,
		SuggestLimit: cfg.SuggestLimit,
	}
	pdfHandler := &handlers.PDFHandler{
		Repo:    biltyRepo,
		Header:  cfg.PrintHeader,
		Timeout: cfg.QueryTimeout,
	}

	routes.SetupRoutes(biltyHandler, pdfHandler)

	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		panic(err)
	}
}
