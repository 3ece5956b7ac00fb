// tstquery loads a word list into a ternary search tree and answers
// pattern queries from the command line. A query containing the '.'
// wildcard runs a partial match, anything else runs a near-neighbor
// search with a configurable mismatch budget.
package main

import (
	"bufio"
	"flag"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/aglyzov/go-tst/counter"
	"github.com/aglyzov/go-tst/tst"
)

type config struct {
	Words    string `toml:"words"`    // path to the word list, one word per line
	Distance int    `toml:"distance"` // near-search mismatch budget
	Fold     bool   `toml:"fold"`     // fold case and diacritics before insert/lookup
	Limit    int    `toml:"limit"`    // max results per query, 0 for all
}

func loadConfig(path string, cfg *config) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

func loadWords(path string, fold bool) (*counter.Counter, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	words := counter.NewCounter()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		if fold {
			word = tst.Fold(word)
		}
		words.Inc(word)
	}
	return words, scanner.Err()
}

func main() {
	cfg := config{Distance: 1}

	cfgPath := flag.String("config", "", "TOML config file")
	wordsPath := flag.String("words", "", "word list file, one word per line")
	distance := flag.Int("d", -1, "near-search mismatch budget (overrides config)")
	limit := flag.Int("limit", 0, "max results per query, 0 for all")
	debugMode := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(false)
	}

	if *cfgPath != "" {
		if err := loadConfig(*cfgPath, &cfg); err != nil {
			log.Fatal("cannot read config", "path", *cfgPath, "err", err)
		}
		log.Debug("config loaded", "path", *cfgPath)
	}
	if *wordsPath != "" {
		cfg.Words = *wordsPath
	}
	if *distance >= 0 {
		cfg.Distance = *distance
	}
	if *limit > 0 {
		cfg.Limit = *limit
	}
	if cfg.Words == "" {
		log.Fatal("no word list given: use -words or a config file")
	}
	if flag.NArg() == 0 {
		log.Fatal("no queries given")
	}

	words, err := loadWords(cfg.Words, cfg.Fold)
	if err != nil {
		log.Fatal("cannot load word list", "path", cfg.Words, "err", err)
	}
	log.Debug("word list loaded", "path", cfg.Words, "distinct", words.Len())

	for _, query := range flag.Args() {
		if cfg.Fold {
			query = tst.Fold(query)
		}

		var matches []tst.KV
		if strings.ContainsRune(query, tst.Wildcard) {
			log.Debug("partial match", "pattern", query)
			matches = words.Tree().PartialMatch(query)
		} else {
			log.Debug("near search", "pattern", query, "distance", cfg.Distance)
			matches = words.Tree().NearSearch(query, cfg.Distance)
		}

		if cfg.Limit > 0 && len(matches) > cfg.Limit {
			matches = matches[:cfg.Limit]
		}
		if len(matches) == 0 {
			log.Warn("no matches", "query", query)
			continue
		}
		for _, kv := range matches {
			log.Info(query, "match", kv.Key, "count", kv.Val)
		}
	}
}
