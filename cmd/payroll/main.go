package main

import (
	"github.com/Sn4iZer/Payroll-System/internal/app"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := app.Run(); err != nil {
		logger.Fatal("run payroll failed", zap.Error(err))
	}
}
