package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ecdhprobe/infrastructure/logging"
	"ecdhprobe/presentation"
	"ecdhprobe/settings"
)

func main() {
	appCtx, appCtxCancel := context.WithCancel(context.Background())
	defer appCtxCancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		<-sigChan
		appCtxCancel()
	}()

	conf, confErr := settings.NewManager().Configuration()
	if confErr != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %s\n", confErr)
		os.Exit(1)
	}

	logWriter, logWriterErr := logging.NewWriter(conf.LogFilePath)
	if logWriterErr != nil {
		fmt.Fprintf(os.Stderr, "log sink error: %s\n", logWriterErr)
		os.Exit(1)
	}
	defer func() {
		_ = logWriter.Close()
	}()

	logger := logging.NewLogLogger(logWriter)
	logger.Infof("ECDH Test App starting...")

	if err := presentation.StartProbe(appCtx, conf, logger); err != nil {
		logger.Errorf("probe terminated: %s", err)
		os.Exit(1)
	}
	logger.Infof("ECDH Test App exiting")
}
