package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"lextrie/internal"
	"lextrie/internal/config"
	_ "lextrie/pkg/compressfile"
	"lextrie/pkg/logger"
	_ "lextrie/pkg/office"
	_ "lextrie/pkg/plaintext"
	"lextrie/pkg/search/lexicon"
	"lextrie/pkg/search/trie"
)

var (
	ConfigFile    string
	InputFile     string
	FileType      int
	Words         string
	SearchWords   string
	Prefixes      string
	Complete      string
	Fold          bool
	Verbose       bool
	DetailVerbose bool
)

func main() {
	flag.StringVar(&ConfigFile, "c", "", "config file")
	flag.StringVar(&InputFile, "i", "", "input file to load words from")
	flag.IntVar(&FileType, "t", 0, "file type (0 = detect from file name)")
	flag.StringVar(&Words, "w", "", "comma separated words to insert")
	flag.StringVar(&SearchWords, "s", "", "comma separated words to search")
	flag.StringVar(&Prefixes, "p", "", "comma separated prefixes to check")
	flag.StringVar(&Complete, "l", "", "list stored words starting with this prefix")
	flag.BoolVar(&Fold, "fold", true, "fold uppercase letters in loaded text")
	flag.BoolVar(&Verbose, "v", false, "verbose")
	flag.BoolVar(&DetailVerbose, "vv", false, "detail verbose")
	flag.Parse()

	if InputFile == "" && Words == "" {
		flag.Usage()
		return
	}

	if err := run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(out io.Writer) error {
	cfg, err := config.LoadConfig(ConfigFile)
	if err != nil {
		return err
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Setup(os.Stderr, cfg.Log.Verbose, cfg.Log.Debug)
	internal.TmpDir = cfg.Extract.TmpDir

	t := trie.New()
	loader := lexicon.NewLoader(t, lexicon.Options{
		Fold:      cfg.Lexicon.Fold,
		MinLength: cfg.Lexicon.MinLength,
		MaxLength: cfg.Lexicon.MaxLength,
	})

	var stats lexicon.Stats
	if InputFile != "" {
		st, err := loader.LoadFile(InputFile, FileType)
		if err != nil {
			return err
		}
		stats.Add(st)
	}
	if Words != "" {
		stats.Add(loader.AddWords(splitList(Words)))
	}
	fmt.Fprintf(out, "loaded: %s words=%d nodes=%d\n", stats, t.Len(), t.Size())

	query(out, t)
	return nil
}

// applyFlags 显式传入的命令行参数覆盖配置
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fold":
			cfg.Lexicon.Fold = Fold
		case "v":
			cfg.Log.Verbose = Verbose
		case "vv":
			cfg.Log.Debug = DetailVerbose
		}
	})
	if cfg.Log.Debug {
		cfg.Log.Verbose = true
	}
}

func query(out io.Writer, t *trie.Trie) {
	for _, w := range splitList(SearchWords) {
		ok, err := t.Search(w)
		if err != nil {
			fmt.Fprintf(out, "search %s: %v\n", w, err)
			continue
		}
		fmt.Fprintf(out, "search %s: %t\n", w, ok)
	}
	for _, p := range splitList(Prefixes) {
		ok, err := t.StartsWith(p)
		if err != nil {
			fmt.Fprintf(out, "prefix %s: %v\n", p, err)
			continue
		}
		fmt.Fprintf(out, "prefix %s: %t\n", p, ok)
	}
	if Complete != "" {
		words, err := t.WordsWithPrefix(Complete)
		if err != nil {
			fmt.Fprintf(out, "complete %s: %v\n", Complete, err)
			return
		}
		fmt.Fprintf(out, "complete %s: %s\n", Complete, strings.Join(words, " "))
	}
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
