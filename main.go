package main

import (
	"github.com/SundayYogurt/contacts_service/config"
	"github.com/SundayYogurt/contacts_service/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
