package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"

	"github.com/lexkit/lexkit/learn"
	"github.com/lexkit/lexkit/pipeline"
	"github.com/lexkit/lexkit/quiz"
	"github.com/lexkit/lexkit/rewrite"
	"github.com/lexkit/lexkit/story"
	"github.com/lexkit/lexkit/summarize"
	"github.com/lexkit/lexkit/transform"
)

type featureSelection struct {
	Summary   bool
	Structure bool
	Quiz      bool
	Learn     bool
	Story     bool
	Info      bool
	Classify  bool
	Redact    bool
}

type options struct {
	inputPath string
	level     string
	style     string
	questions int
	seed      int64
	features  featureSelection
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "textscan: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "textscan: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (options, error) {
	var opts options
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: go run ./cmd/textscan [flags] <textfile>\n")
		fmt.Fprintf(flag.CommandLine.Output(), "Reads stdin when no file is given.\n")
		flag.PrintDefaults()
	}
	summary := flag.Bool("summary", false, "Emit the prose summary")
	structure := flag.Bool("structure", false, "Emit the structured summary")
	quizFlag := flag.Bool("quiz", false, "Generate quiz questions")
	learnFlag := flag.Bool("learn", false, "Emit concepts, glossary, and pre-reading")
	storyFlag := flag.Bool("story", false, "Retell the document as a story")
	info := flag.Bool("info", false, "Extract entities, statistics, and headings")
	classify := flag.Bool("classify", false, "Classify the document type")
	redact := flag.Bool("redact", false, "Emit a redacted copy")
	level := flag.String("level", "intermediate", "Reader level: beginner, intermediate, advanced")
	style := flag.String("style", "neutral", "Rewriting style: neutral, storytelling, academic")
	questions := flag.Int("questions", 5, "Number of quiz questions")
	seed := flag.Int64("seed", 0, "Random seed for quiz generation (0 = random)")
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		return options{}, fmt.Errorf("at most one input file")
	}
	if flag.NArg() == 1 {
		opts.inputPath = flag.Arg(0)
	}
	opts.level = *level
	opts.style = *style
	opts.questions = *questions
	opts.seed = *seed
	opts.features = featureSelection{
		Summary:   *summary,
		Structure: *structure,
		Quiz:      *quizFlag,
		Learn:     *learnFlag,
		Story:     *storyFlag,
		Info:      *info,
		Classify:  *classify,
		Redact:    *redact,
	}
	if opts.features == (featureSelection{}) {
		opts.features = featureSelection{Summary: true, Structure: true, Quiz: true, Learn: true, Story: true, Info: true, Classify: true, Redact: true}
	}
	return opts, nil
}

func run(opts options) error {
	raw, err := readInput(opts.inputPath)
	if err != nil {
		return err
	}

	styleOpt := summarize.WithStyle(rewrite.ParseStyle(opts.style))
	doc := pipeline.New(pipeline.WithSummaryOptions(styleOpt)).Process(string(raw))

	if opts.features.Summary {
		if err := emitSection("summary", map[string]interface{}{
			"summary": doc.Summary.CoreSummary,
			"quality": doc.Quality,
		}); err != nil {
			return err
		}
	}

	if opts.features.Structure {
		if err := emitSection("structure", doc.Summary); err != nil {
			return err
		}
	}

	if opts.features.Quiz {
		genOpts := []quiz.GeneratorOption{}
		if opts.seed != 0 {
			genOpts = append(genOpts, quiz.WithSeed(opts.seed))
		}
		questions := quiz.NewGenerator(genOpts...).
			Generate(string(raw), quiz.ParseDifficulty(opts.level), opts.questions)
		if err := emitSection("quiz", questions); err != nil {
			return err
		}
	}

	if opts.features.Learn {
		concepts := learn.NewConceptExtractor().Extract(doc.Repaired)
		expansion := learn.NewExpander().Expand(doc.Repaired, learn.ParseLevel(opts.level), concepts)
		if err := emitSection("learn", expansion); err != nil {
			return err
		}
	}

	if opts.features.Story {
		if err := emitSection("story", story.NewTeller().Tell(doc.Summary)); err != nil {
			return err
		}
	}

	if opts.features.Info {
		if err := emitSection("info", transform.ExtractInformation(doc.Repaired)); err != nil {
			return err
		}
		if issues := transform.ValidateGrammar(doc.Repaired); len(issues) > 0 {
			if err := emitSection("grammar", issues); err != nil {
				return err
			}
		}
	}

	if opts.features.Classify {
		if err := emitSection("classification", transform.Classify(doc.Repaired)); err != nil {
			return err
		}
	}

	if opts.features.Redact {
		if err := emitSection("redaction", transform.Redact(doc.Repaired, nil)); err != nil {
			return err
		}
	}

	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

func emitSection(name string, v interface{}) error {
	data, err := sonic.ConfigDefault.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	fmt.Printf("== %s ==\n%s\n\n", name, data)
	return nil
}
