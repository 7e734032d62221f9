package main

import (
	"grafica_gestao/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title Grafica Gestao API
// @version 1.0
// @description Sales-to-delivery workflow API for a print shop: quotes, production Kanban, catalog, delivery calendar and deposit payments.
// @BasePath /
func main() {
	routes.Run()
}
