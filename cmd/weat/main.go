package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/chainsawriot/methodshub-weat/internal/config"
	"github.com/chainsawriot/methodshub-weat/internal/domain"
	"github.com/chainsawriot/methodshub-weat/internal/glove"
	"github.com/chainsawriot/methodshub-weat/internal/service"
	"github.com/chainsawriot/methodshub-weat/internal/tui"
	"github.com/chainsawriot/methodshub-weat/internal/vectorstore"
	"github.com/chainsawriot/methodshub-weat/internal/vectorstore/memory"
	"github.com/chainsawriot/methodshub-weat/internal/vectorstore/qdrant"
)

func main() {
	_ = godotenv.Load()

	var (
		cfgPath      = flag.String("config", "", "Path to YAML config file (optional; uses ~/.config/weat/config.yaml if not provided)")
		pretrained   = flag.String("pretrained", "", "Path to a pretrained embedding file (word f1 f2 ... fR per line); overrides the config source")
		method       = flag.String("method", "guess", "Bias metric: mac, rnd, rnsb, semaxis, nas, ect, weat or guess")
		sFlag        = flag.String("s", "", "Target word set S: comma-separated words or @file with one word per line")
		tFlag        = flag.String("t", "", "Target word set T")
		aFlag        = flag.String("a", "", "Attribute word set A")
		bFlag        = flag.String("b", "", "Attribute word set B")
		permutations = flag.Int("pvalue", 0, "Run a WEAT permutation test with this many permutations")
		useTUI       = flag.Bool("tui", false, "Start the interactive terminal UI")
	)
	flag.Parse()
	corpus := flag.Args()

	var cfg *config.AppConfig
	var err error
	if *cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(*cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *pretrained != "" {
		cfg.Embeddings.Source = "pretrained"
		cfg.Embeddings.PretrainedPath = *pretrained
	}

	// Build the embedding space
	var space *domain.EmbeddingSpace
	switch cfg.Embeddings.Source {
	case "train", "":
		if len(corpus) == 0 {
			fmt.Println("Usage: weat [flags] corpus1.txt [corpus2.txt ...]  (or --pretrained glove.txt)")
			os.Exit(1)
		}
		space, err = service.TrainSpace(corpus, glove.Config{
			WindowSize:    cfg.Training.WindowSize,
			Rank:          cfg.Training.Rank,
			LearningRate:  cfg.Training.LearningRate,
			MaxIterations: cfg.Training.MaxIterations,
			Tolerance:     cfg.Training.ConvergenceTolerance,
			XMax:          cfg.Training.XMax,
			Alpha:         cfg.Training.Alpha,
			Seed:          cfg.Training.Seed,
		})
		if err != nil {
			log.Fatalf("training failed: %v", err)
		}
	case "pretrained":
		if cfg.Embeddings.PretrainedPath == "" {
			log.Fatalf("pretrained source selected but no pretrained_path configured")
		}
		space, err = service.LoadSpace(cfg.Embeddings.PretrainedPath)
		if err != nil {
			log.Fatalf("loading pretrained embeddings failed: %v", err)
		}
	default:
		log.Fatalf("unknown embeddings source: %s", cfg.Embeddings.Source)
	}

	// Assemble the word-vector store
	var st vectorstore.Storage
	switch cfg.Store.Type {
	case "memory", "":
		st = memory.NewStorage()
	case "qdrant":
		if cfg.Store.Qdrant == nil {
			log.Fatalf("qdrant config missing")
		}
		st = qdrant.NewStorage(qdrant.Config{
			URL:        cfg.Store.Qdrant.URL,
			APIKey:     os.Getenv(cfg.Store.Qdrant.APIKeyEnv),
			Collection: cfg.Store.Qdrant.Collection,
			Timeout:    time.Duration(cfg.Store.Qdrant.TimeoutSecs) * time.Second,
		})
	default:
		log.Fatalf("unknown store: %s", cfg.Store.Type)
	}

	svc, err := service.New(space, st, cfg.Query.TopK)
	if err != nil {
		log.Fatalf("service init failed: %v", err)
	}

	if *useTUI {
		info := fmt.Sprintf("Loaded %d words, %d dimensions.", space.Len(), space.Dim())
		m := tui.New(svc, info)
		if _, err := tea.NewProgram(m).Run(); err != nil {
			log.Fatal(err)
		}
		return
	}

	sWords, err := parseWordSet(*sFlag)
	if err != nil {
		log.Fatalf("parsing -s: %v", err)
	}
	tWords, err := parseWordSet(*tFlag)
	if err != nil {
		log.Fatalf("parsing -t: %v", err)
	}
	aWords, err := parseWordSet(*aFlag)
	if err != nil {
		log.Fatalf("parsing -a: %v", err)
	}
	bWords, err := parseWordSet(*bFlag)
	if err != nil {
		log.Fatalf("parsing -b: %v", err)
	}

	res, err := svc.Query(sWords, tWords, aWords, bWords, *method)
	if err != nil {
		log.Fatalf("query failed: %v", err)
	}
	fmt.Printf("method:      %s\n", res.Method)
	fmt.Printf("effect size: %.6f\n", res.EffectSize)
	if len(res.Breakdown) > 0 {
		fmt.Println("breakdown:")
		for _, ws := range res.Breakdown {
			fmt.Printf("  %-20s %10.6f\n", ws.Word, ws.Score)
		}
	}
	if *permutations > 0 {
		p, err := svc.WEATPValue(sWords, tWords, aWords, bWords, *permutations, cfg.Training.Seed)
		if err != nil {
			log.Fatalf("permutation test failed: %v", err)
		}
		fmt.Printf("p-value:     %.6f (%d permutations)\n", p, *permutations)
	}
}

// parseWordSet parses a comma-separated word list, or, with a leading @, a
// file with one word per line. Words are lowercased.
func parseWordSet(value string) ([]string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if strings.HasPrefix(value, "@") {
		f, err := os.Open(value[1:])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		var words []string
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			if w := strings.ToLower(strings.TrimSpace(scanner.Text())); w != "" {
				words = append(words, w)
			}
		}
		return words, scanner.Err()
	}
	var words []string
	for _, w := range strings.Split(value, ",") {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			words = append(words, w)
		}
	}
	return words, nil
}
