package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/vaibhavharit14/BudgetBox/internal/config"
	"github.com/vaibhavharit14/BudgetBox/internal/database"
	"github.com/vaibhavharit14/BudgetBox/internal/handler"
	"github.com/vaibhavharit14/BudgetBox/internal/router"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("jwt.secret is not configured (set it in config.yaml or BB_JWT_SECRET)")
	}

	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	if cfg.Demo.Enabled {
		authHandler := handler.NewAuthHandler(db, cfg.JWT.Secret, cfg.JWT.Issuer,
			cfg.JWT.ExpireHours, cfg.Security.BcryptCost)
		if err := authHandler.EnsureDemoUser(cfg.Demo.Email, cfg.Demo.Password); err != nil {
			log.Printf("could not ensure demo user: %v", err)
		} else {
			log.Printf("demo user provisioned: %s", cfg.Demo.Email)
		}
	}

	r := router.SetupRouter(cfg, db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
