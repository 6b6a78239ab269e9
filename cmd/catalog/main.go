// Command catalog prints the built-in book catalog to stdout.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"path"
	"runtime"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"audiobookify/internal/logger"
	"audiobookify/internal/opds"
	"audiobookify/internal/storage/books"
)

func getEnvOrDefault(key, default_ string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}

	return default_
}

var (
	logLevel = getEnvOrDefault("LOG_LEVEL", "debug")
	format   = flag.String("format", "json", "output format, json or opds")
)

func main() {
	flag.Parse()

	_, thisFile, _, _ := runtime.Caller(0)

	lvl, validLvl := logger.ParseLevel(logLevel)
	logger.SetupSLog(lvl, path.Dir(path.Dir(path.Dir(thisFile))), nil)

	if !validLvl {
		slog.Error("Invalid log level specified in LOG_LEVEL, one of debug, info, warn or error expected")
		os.Exit(1)
	}

	bs, err := books.NewCatalogRepository(slog.Default()).GetAll(context.Background())
	if err != nil {
		slog.Error("Failed to read catalog: " + err.Error())
		os.Exit(1)
	}

	var out []byte
	switch *format {
	case "json":
		out, err = json.MarshalIndent(bs, "", "  ")
		out = append(out, '\n')
	case "opds":
		out, err = opds.Marshal(opds.BuildFeed(bs, "", nil, slog.Default()))
	default:
		slog.Error("Unknown format " + *format + ", one of json or opds expected")
		os.Exit(1)
	}

	if err != nil {
		slog.Error("Failed to render catalog: " + err.Error())
		os.Exit(1)
	}

	if _, err = os.Stdout.Write(out); err != nil {
		slog.Error("Failed to write catalog: " + err.Error())
		os.Exit(1)
	}
}
