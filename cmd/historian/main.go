// cmd/historian/main.go
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/wclam/hideseek/internal/historian"
)

func main() {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	svc := historian.New(logger)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		svc.Stop()
	}()

	if err := svc.Run(); err != nil {
		log.Fatalf("historian exited: %v", err)
	}
}
