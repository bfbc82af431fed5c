// gv100ad command line tool
// Loads a GV100AD dataset and answers registry queries or serves them over HTTP
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/charmap"

	"github.com/nainya/gv100ad/internal/logger"
	"github.com/nainya/gv100ad/internal/metrics"
	"github.com/nainya/gv100ad/internal/server"
	"github.com/nainya/gv100ad/pkg/gvdb"
	"github.com/nainya/gv100ad/pkg/keys"
	"github.com/nainya/gv100ad/pkg/parser"
	"github.com/nainya/gv100ad/pkg/record"
)

var (
	flagFile     string
	flagEncoding string
	flagLenient  bool
	flagLogLevel string
	flagPretty   bool
)

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "gv100ad",
		Short:         "Query tool for GV100AD municipality registry datasets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagFile, "file", envOr("GV100AD_FILE", ""), "path to the GV100AD dataset file")
	root.PersistentFlags().StringVar(&flagEncoding, "encoding", envOr("GV100AD_ENCODING", "utf8"), "dataset encoding: utf8 or latin1")
	root.PersistentFlags().BoolVar(&flagLenient, "lenient", false, "skip lines with an unknown satzart")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", envOr("LOG_LEVEL", "info"), "log level: trace, debug, info, warn, error")
	root.PersistentFlags().BoolVar(&flagPretty, "pretty", true, "pretty-print logs")

	root.AddCommand(lookupCmd(), childrenCmd(), listCmd(), statsCmd(), serveCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newLogger() *logger.Logger {
	return logger.NewLogger(logger.Config{Level: flagLogLevel, Pretty: flagPretty})
}

func parserOptions(log *logger.Logger) ([]parser.Option, error) {
	opts := []parser.Option{parser.WithLogger(log.ParserLogger())}
	switch flagEncoding {
	case "utf8":
	case "latin1":
		opts = append(opts, parser.WithEncoding(charmap.ISO8859_1))
	default:
		return nil, fmt.Errorf("unknown encoding %q", flagEncoding)
	}
	if flagLenient {
		opts = append(opts, parser.WithLenient())
	}
	return opts, nil
}

func loadDatabase(log *logger.Logger) (*gvdb.Database, time.Duration, error) {
	if flagFile == "" {
		return nil, 0, fmt.Errorf("no dataset file; set --file or GV100AD_FILE")
	}
	opts, err := parserOptions(log)
	if err != nil {
		return nil, 0, err
	}
	start := time.Now()
	db, err := gvdb.Open(flagFile, opts...)
	duration := time.Since(start)
	records := 0
	if db != nil {
		for _, kind := range allKinds {
			records += db.Len(kind)
		}
	}
	log.LogConstruction(flagFile, duration, records, err)
	if err != nil {
		return nil, duration, err
	}
	return db, duration, nil
}

var allKinds = []keys.Kind{
	keys.KindLand,
	keys.KindRegierungsbezirk,
	keys.KindRegion,
	keys.KindKreis,
	keys.KindVerband,
	keys.KindGemeinde,
}

func parseKind(s string) (keys.Kind, error) {
	kind, ok := keys.KindFromString(s)
	if !ok {
		return 0, fmt.Errorf("unknown kind %q (expected land, regierungsbezirk, region, kreis, verband or gemeinde)", s)
	}
	return kind, nil
}

func lookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup KIND KEY",
		Short: "Print the record stored under a key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			db, _, err := loadDatabase(newLogger())
			if err != nil {
				return err
			}
			rec, err := db.Lookup(kind, args[1])
			if err != nil {
				return err
			}
			printRecord(rec)
			return nil
		},
	}
}

func childrenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "children KIND KEY CHILDKIND",
		Short: "Print the records of CHILDKIND below a key, in ascending key order",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			childKind, err := parseKind(args[2])
			if err != nil {
				return err
			}
			parent, err := keys.Parse(kind, args[1])
			if err != nil {
				return err
			}
			db, _, err := loadDatabase(newLogger())
			if err != nil {
				return err
			}
			children, err := db.ChildrenOf(childKind, parent)
			if err != nil {
				return err
			}
			for _, rec := range children {
				printRecord(rec)
			}
			return nil
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list KIND",
		Short: "Print all records of a kind, in ascending key order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			db, _, err := loadDatabase(newLogger())
			if err != nil {
				return err
			}
			for _, rec := range db.All(kind) {
				printRecord(rec)
			}
			return nil
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print per-kind record counts for the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, duration, err := loadDatabase(newLogger())
			if err != nil {
				return err
			}
			for _, kind := range allKinds {
				fmt.Printf("%-18s %d\n", kind, db.Len(kind))
			}
			fmt.Printf("%-18s %s\n", "load time", duration.Round(time.Millisecond))
			return nil
		},
	}
}

func serveCmd() *cobra.Command {
	defaultPort := 8080
	if v := os.Getenv("GV100AD_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			defaultPort = p
		}
	}
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve registry queries over HTTP, with /metrics and /healthz",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			db, loadDuration, err := loadDatabase(log)
			if err != nil {
				return err
			}

			m := metrics.NewMetrics()
			m.ObserveDataset(db, loadDuration)
			srv := server.NewServer(db, log, m)

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-sigChan
				log.Info().Msg("shutting down gracefully")
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				_ = srv.Shutdown(ctx)
			}()

			return srv.Serve(port)
		},
	}
	cmd.Flags().IntVar(&port, "port", defaultPort, "HTTP listen port")
	return cmd
}

func printRecord(rec record.Record) {
	switch r := rec.(type) {
	case *record.Gemeinde:
		line := fmt.Sprintf("%s  %s", r.Key, r.Name)
		if r.PopulationTotal != nil {
			line += fmt.Sprintf("  (%d residents)", *r.PopulationTotal)
		}
		fmt.Println(line)
	default:
		fmt.Printf("%s  %s\n", rec.RecordKey(), rec.RecordName())
	}
}
