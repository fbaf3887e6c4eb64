package main

import (
	"os"

	"github.com/luminotest/go-backend/internal/app"
	config "github.com/luminotest/go-backend/internal/cfg"
	"github.com/luminotest/go-backend/pkg/logger"
)

//	@title			Luminotest Quotation API
//	@version		1.0
//	@description	Сервис приёма запросов на котировки лабораторных испытаний
//	@BasePath		/api

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
