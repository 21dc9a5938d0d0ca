// Command intentcli is a debug REPL for exercising a model interactively:
// load a model JSON file, then type utterances and see the recognized
// intent, entities, and alternates.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/shlex"

	"github.com/speechsdk/intentcore/intent"
	"github.com/speechsdk/intentcore/locale"
	"github.com/speechsdk/intentcore/model"
)

var (
	modelPath = flag.String("model", "", "path to a model JSON file (defaults to model.DefaultModelDir()/default.json)")
	localeTag = flag.String("locale", "en-us", "locale tag used to tokenize utterances")
	cachePath = flag.String("cache", "", "path to a compiled-pattern cache file: loaded if present, (re)written after compiling the model otherwise")
)

func main() {
	flag.Usage = printUsage
	flag.Parse()

	path := *modelPath
	if path == "" {
		dir, err := model.DefaultModelDir()
		if err != nil {
			exitWithError(err)
		}
		path = dir + string(os.PathSeparator) + "default.json"
	}

	loc := locale.Parse(*localeTag)
	data, err := os.ReadFile(path)
	if err != nil {
		exitWithError(fmt.Errorf("reading model file %q: %w", path, err))
	}

	m, err := loadModel(path, data, loc)
	if err != nil {
		exitWithError(err)
	}

	r := intent.NewRecognizer()
	r.ApplyModels([]*model.Model{m})

	fmt.Printf("loaded model %q (%d patterns) from %s\n", m.ID, len(m.Patterns), path)
	runREPL(r)
}

// loadModel builds a Model from the given model JSON, consulting
// --cache first: a hit skips recompiling every pattern phrase and rehydrates
// only the entity catalog from data. A miss compiles the model normally and
// writes the cache for next time.
func loadModel(path string, data []byte, loc locale.Tag) (*model.Model, error) {
	if *cachePath != "" {
		if cached, err := model.LoadCompiledCache(*cachePath, loc); err == nil {
			catalog, err := model.EntitiesFromJSON(data, loc)
			if err != nil {
				return nil, fmt.Errorf("loading entities for cached model %q: %w", path, err)
			}
			cached.Catalog = catalog
			log.Printf("loaded %d compiled patterns from cache %s\n", len(cached.Patterns), *cachePath)
			return cached, nil
		}
	}

	m, err := model.LoadJSON("default", data, loc)
	if err != nil {
		return nil, fmt.Errorf("loading model %q: %w", path, err)
	}

	if *cachePath != "" {
		if err := model.SaveCompiledCache(*cachePath, m); err != nil {
			log.Printf("warning: failed to write compiled cache %s: %v\n", *cachePath, err)
		}
	}
	return m, nil
}

func runREPL(r *intent.Recognizer) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			handleLine(r, line)
		}
		fmt.Print("> ")
	}
}

func handleLine(r *intent.Recognizer, line string) {
	fields, err := shlex.Split(line)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shlex.Split: %v\n", err)
		return
	}
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "quit", "exit":
		os.Exit(0)
	default:
		// Treat the whole line as an utterance to recognize, not a
		// sub-command - this keeps "recognize" implicit for the common
		// case of pasting a sentence with its own quoting.
		result := r.RecognizeOnce(line)
		printResult(result)
	}
}

func printResult(result intent.IntentResult) {
	fmt.Println(formatTable(result))
	if result.IntentID != "" {
		log.Printf("recognized intent %q\n", result.IntentID)
	} else {
		log.Printf("no intent matched\n")
	}
}

func printUsage() {
	f := flag.CommandLine.Output()
	fmt.Fprintf(f, "Usage: %s [options...]\n", os.Args[0])
	flag.PrintDefaults()
}

func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "%v\n", err)
	os.Exit(1)
}
