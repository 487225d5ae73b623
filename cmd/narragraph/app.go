package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/c360studio/narragraph/assemble"
	"github.com/c360studio/narragraph/cascade"
	"github.com/c360studio/narragraph/config"
	"github.com/c360studio/narragraph/enrich"
	"github.com/c360studio/narragraph/graph"
	"github.com/c360studio/narragraph/ingest"
	"github.com/c360studio/narragraph/lexicon"
	"github.com/c360studio/narragraph/llm"
	"github.com/c360studio/narragraph/narrative"
	"github.com/c360studio/narragraph/ontology"
	"github.com/c360studio/narragraph/parse"
	"github.com/c360studio/narragraph/resolve"
)

func newRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "narragraph",
		Short:        "Convert narrative text into an RDF knowledge graph",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newProcessCommand())
	root.AddCommand(newIngestCommand())
	root.AddCommand(newVersionCommand())
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the narragraph version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "narragraph", version)
		},
	}
}

// engine bundles the wired processing chain for one run.
type engine struct {
	cfg       *config.Config
	lex       *lexicon.Lexicon
	index     *ontology.Index
	processor *narrative.Processor
	mapper    *cascade.Mapper
	nc        *nats.Conn
}

// buildEngine wires the full chain from configuration.
func buildEngine(cfg *config.Config, logger *slog.Logger) (*engine, error) {
	lex, err := loadLexicon(cfg)
	if err != nil {
		return nil, err
	}
	index, err := ontology.NewIndex()
	if err != nil {
		return nil, fmt.Errorf("load ontology index: %w", err)
	}

	mapper := cascade.New(lex, index, cascade.WithLogger(logger))
	assembler := assemble.New(mapper, lex, index, assemble.WithLogger(logger))

	opts := []narrative.Option{
		narrative.WithLogger(logger),
		narrative.WithMetrics(narrative.NewMetrics(prometheus.DefaultRegisterer)),
	}

	if cfg.Model.Endpoint != "" {
		client := llm.NewClient(cfg.Model.Endpoint, cfg.Model.APIKey, cfg.Model.Name,
			llm.WithLogger(logger),
			llm.WithHTTPClient(&http.Client{Timeout: cfg.Model.Timeout}))
		opts = append(opts, narrative.WithAnalyzer(llm.NewAnalyzer(client, logger)))
	}
	if cfg.Enrich.Enabled {
		opts = append(opts, narrative.WithEnricher(
			enrich.New(cfg.Enrich.GeoNamesUser, enrich.WithLogger(logger))))
	}

	eng := &engine{cfg: cfg, lex: lex, index: index, mapper: mapper}

	if cfg.NATS.URL != "" {
		nc, err := nats.Connect(cfg.NATS.URL, nats.Name("narragraph"))
		if err != nil {
			return nil, fmt.Errorf("connect to NATS: %w", err)
		}
		eng.nc = nc
		publisher, err := graph.NewPublisher(nc)
		if err != nil {
			nc.Close()
			return nil, err
		}
		opts = append(opts, narrative.WithPublisher(publisher))
	}

	eng.processor = narrative.NewProcessor(assembler, opts...)
	return eng, nil
}

func (e *engine) close() {
	if e.nc != nil {
		e.nc.Close()
	}
}

func loadLexicon(cfg *config.Config) (*lexicon.Lexicon, error) {
	if cfg.Lexicon.IdiomPath == "" && cfg.Lexicon.PrepositionPath == "" {
		return lexicon.MustLoad(), nil
	}
	lex, err := lexicon.Load(cfg.Lexicon.IdiomPath, cfg.Lexicon.PrepositionPath)
	if err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}
	return lex, nil
}

func newProcessCommand() *cobra.Command {
	var (
		outDir    string
		biography bool
		watch     bool
	)

	cmd := &cobra.Command{
		Use:   "process <glob>...",
		Short: "Process parsed narrative documents into Turtle graphs",
		Long: `Process reads parsed narrative JSON documents (one per file, as
emitted by the external dependency parser), runs coreference resolution,
ontology mapping, and graph assembly, and writes one .ttl file per
narrative.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.Default()
			cfg, err := config.NewLoader(logger).Load()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if cfg.Metrics.Addr != "" {
				go serveMetrics(cfg.Metrics.Addr, logger)
			}

			files, err := expandGlobs(args)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no files match %s", strings.Join(args, " "))
			}

			eng, err := buildEngine(cfg, logger)
			if err != nil {
				return err
			}
			defer eng.close()

			if err := processFiles(ctx, eng, files, outDir, biography, logger); err != nil {
				return err
			}
			if !watch || cfg.Lexicon.IdiomPath == "" && cfg.Lexicon.PrepositionPath == "" {
				return nil
			}
			return watchLexicon(ctx, eng, cfg, files, outDir, biography, logger)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out-dir", "o", ".", "directory for .ttl output")
	cmd.Flags().BoolVar(&biography, "biography", false, "treat narratives as biographical (default event locations)")
	cmd.Flags().BoolVar(&watch, "watch", false, "reprocess when lexicon override files change")
	return cmd
}

// expandGlobs resolves doublestar patterns to a sorted, deduplicated file
// list. Literal paths pass through.
func expandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		if !strings.ContainsAny(pattern, "*?[{") {
			if !seen[pattern] {
				seen[pattern] = true
				files = append(files, pattern)
			}
			continue
		}
		base, rest := doublestar.SplitPattern(pattern)
		matches, err := doublestar.Glob(os.DirFS(base), rest)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			full := filepath.Join(base, m)
			if !seen[full] {
				seen[full] = true
				files = append(files, full)
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

func processFiles(ctx context.Context, eng *engine, files []string, outDir string, biography bool, logger *slog.Logger) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for _, file := range files {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read %s: %w", file, err)
		}
		doc, err := parse.DecodeNarrative(data)
		if err != nil {
			logger.Error("narrative skipped", "file", file, "error", err)
			continue
		}
		if biography {
			doc.Biography = true
		}

		rctx := resolve.NewContext(eng.mapper, logger)
		result, err := eng.processor.Process(ctx, doc, rctx)
		if err != nil {
			logger.Error("narrative failed", "file", file, "error", err)
			continue
		}

		out := filepath.Join(outDir, strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))+".ttl")
		if err := os.WriteFile(out, []byte(result.Turtle), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		logger.Info("graph written", "file", out, "sentences", result.Sentences, "skipped", result.Skipped)
	}
	return nil
}

// watchLexicon blocks, reprocessing the inputs whenever the lexicon
// override files change.
func watchLexicon(ctx context.Context, eng *engine, cfg *config.Config, files []string, outDir string, biography bool, logger *slog.Logger) error {
	watcher, err := lexicon.NewWatcher(cfg.Lexicon.IdiomPath, cfg.Lexicon.PrepositionPath, logger)
	if err != nil {
		return fmt.Errorf("watch lexicon: %w", err)
	}
	go watcher.Run(ctx)

	logger.Info("watching lexicon files for changes")
	for {
		select {
		case <-ctx.Done():
			return nil
		case lex, ok := <-watcher.Reloaded:
			if !ok {
				return nil
			}
			logger.Info("lexicon reloaded, reprocessing")
			mapper := cascade.New(lex, eng.index, cascade.WithLogger(logger))
			assembler := assemble.New(mapper, lex, eng.index, assemble.WithLogger(logger))
			eng.mapper = mapper
			eng.processor = narrative.NewProcessor(assembler, narrative.WithLogger(logger))
			if err := processFiles(ctx, eng, files, outDir, biography, logger); err != nil {
				logger.Error("reprocess failed", "error", err)
			}
		}
	}
}

func serveMetrics(addr string, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("metrics listening", "addr", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("metrics server failed", "error", err)
	}
}

func newIngestCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "ingest <url>",
		Short: "Fetch a web narrative and emit pre-parse text",
		Long: `Ingest fetches a page, extracts the article body, and writes the
narrative as plain sentences with paragraph markers, ready for the external
dependency parser.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.Default()
			cfg, err := config.NewLoader(logger).Load()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fetcher := ingest.NewFetcher(cfg.Ingest.Timeout, cfg.Ingest.UserAgent, cfg.Ingest.MaxContentSize)
			page, err := fetcher.Fetch(ctx, args[0])
			if err != nil {
				return err
			}
			article, err := ingest.NewConverter().Convert(page.Body, page.FinalURL)
			if err != nil {
				return err
			}
			doc := ingest.Segment(article, page.FinalURL)

			var sb strings.Builder
			sb.WriteString("# " + doc.Title + "\n")
			for _, sentence := range doc.Sentences {
				sb.WriteString(sentence.Text + "\n")
			}

			if out == "" || out == "-" {
				fmt.Fprint(cmd.OutOrStdout(), sb.String())
				return nil
			}
			if err := os.WriteFile(out, []byte(sb.String()), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			logger.Info("narrative written", "file", out, "sentences", len(doc.Sentences))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file (- for stdout)")
	return cmd
}
