package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/3-lines-studio/prerender/example/app"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	handler := app.New(app.SeededStore(), logger)

	logger.Info("serving demo app", "addr", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
