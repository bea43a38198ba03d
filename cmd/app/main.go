package main

import (
	"pitstop/config"
	"pitstop/di"
	"pitstop/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
