package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"

	"github.com/jorge-castellon-jr/chess-tcg/internal/config"
	"github.com/jorge-castellon-jr/chess-tcg/internal/serverapp"
)

func main() {
	configPath := flag.String("config", "chess_tcg_config.yml", "path to YAML config file")
	flag.Parse()

	// A missing .env is fine; real env vars still apply.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	handler, err := serverapp.NewHandler(serverapp.Options{
		Config:        cfg,
		UseDiskStatic: serverapp.UseDiskStaticByEnv(),
		Logger:        log.Default(),
	})
	if err != nil {
		log.Fatalf("build server: %v", err)
	}

	log.Printf("listening on http://localhost%s", cfg.Server.Addr)
	log.Fatal(http.ListenAndServe(cfg.Server.Addr, handler))
}
