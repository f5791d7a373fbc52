package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/yungbote/kinetic-backend/internal/modules/motiongraph"
	"github.com/yungbote/kinetic-backend/internal/modules/motiongraph/scenesource"
	"github.com/yungbote/kinetic-backend/internal/modules/motiongraph/storyboard"
	"github.com/yungbote/kinetic-backend/internal/platform/envutil"
	"github.com/yungbote/kinetic-backend/internal/platform/logger"
	"github.com/yungbote/kinetic-backend/internal/platform/openai"
)

type wordList []string

func (l *wordList) String() string { return strings.Join(*l, ",") }
func (l *wordList) Set(v string) error {
	for _, w := range strings.Split(v, ",") {
		if w = strings.TrimSpace(w); w != "" {
			*l = append(*l, w)
		}
	}
	return nil
}

func main() {
	var (
		in, out, sheet string
		format, style  string
		tone           string
		fps            int
		seed           int64
		useAI          bool
		highlightWords wordList
	)
	flag.StringVar(&in, "in", "-", "script file, or - for stdin")
	flag.StringVar(&out, "out", "", "output path; .yaml/.yml writes YAML, anything else JSON (default stdout JSON)")
	flag.StringVar(&sheet, "storyboard", "", "optional PNG contact sheet path")
	flag.StringVar(&format, "format", "", "reels, tiktok, horizontal or square")
	flag.StringVar(&style, "style", "", "template style")
	flag.StringVar(&tone, "tone", "", "global tone override")
	flag.IntVar(&fps, "fps", 0, "frame rate (default 30)")
	flag.Int64Var(&seed, "seed", 0, "pacing seed (default derived from the text)")
	flag.BoolVar(&useAI, "ai", false, "ask the language model for the scene breakdown when OPENAI_API_KEY is set")
	flag.Var(&highlightWords, "highlight", "word to highlight (repeatable or comma separated)")
	flag.Parse()

	_ = godotenv.Load()

	log, err := logger.New(envutil.String("LOG_MODE", "development"))
	if err != nil {
		fmt.Printf("init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	text, err := readScript(in)
	if err != nil {
		fmt.Printf("read script: %v\n", err)
		os.Exit(1)
	}

	opts := motiongraph.Options{
		Format:         format,
		TemplateStyle:  style,
		HighlightWords: highlightWords,
		FPS:            fps,
		Tone:           tone,
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts.Seed = &seed
		}
	})

	var gen scenesource.JSONGenerator
	if useAI {
		c, err := openai.NewClient(log, openai.ConfigFromEnv())
		switch {
		case errors.Is(err, openai.ErrDisabled):
			log.Warn("OPENAI_API_KEY not set; using the deterministic fallback")
		case err != nil:
			fmt.Printf("init openai client: %v\n", err)
			os.Exit(1)
		default:
			gen = c
		}
	}
	source := scenesource.New(log, gen, scenesource.Config{
		Timeout:   time.Duration(envutil.Int("SCENE_SOURCE_TIMEOUT_SECONDS", 20)) * time.Second,
		MaxScenes: envutil.Int("SCENE_SOURCE_MAX_SCENES", 12),
	})

	ctx := context.Background()
	res, err := motiongraph.NewAssembler(log, source).Assemble(ctx, text, opts)
	if err != nil {
		fmt.Printf("build timeline: %v\n", err)
		os.Exit(1)
	}

	if err := writeTimeline(res.Timeline, out); err != nil {
		fmt.Printf("write timeline: %v\n", err)
		os.Exit(1)
	}
	if sheet != "" {
		r, err := storyboard.NewRenderer()
		if err != nil {
			fmt.Printf("init storyboard: %v\n", err)
			os.Exit(1)
		}
		png, err := r.Render(ctx, res.Timeline, storyboard.Options{})
		if err != nil {
			fmt.Printf("render storyboard: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(sheet, png, 0o644); err != nil {
			fmt.Printf("write storyboard: %v\n", err)
			os.Exit(1)
		}
	}
	log.Info("Timeline built",
		"source", res.Source,
		"scenes", len(res.Timeline.Scenes),
		"elapsed_ms", res.Elapsed.Milliseconds(),
	)
}

func readScript(path string) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

func writeTimeline(tl *motiongraph.Timeline, path string) error {
	var (
		body []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		body, err = motiongraph.EncodeYAML(tl)
	default:
		body, err = motiongraph.EncodeJSON(tl)
	}
	if err != nil {
		return err
	}
	if path == "" {
		_, err = os.Stdout.Write(append(body, '\n'))
		return err
	}
	return os.WriteFile(path, body, 0o644)
}
