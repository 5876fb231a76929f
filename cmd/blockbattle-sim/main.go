package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/plus3/blockbattle/config"
	"github.com/plus3/blockbattle/match"
	"github.com/plus3/blockbattle/netsync"
)

func main() {
	profilePath := flag.String("profile", "", "YAML tuning profile. Defaults are used when empty.")
	matches := flag.Int("matches", 10, "The number of bot-versus-bot matches to play.")
	seed := flag.Uint64("seed", 0, "Seed of the first match; 0 uses the profile seed.")
	maxFrames := flag.Int("max-frames", 20000, "Frames after which an unfinished match is abandoned.")
	frameDelta := flag.Duration("dt", 50*time.Millisecond, "Simulated time per frame.")
	dumpDir := flag.String("dump", "", "Directory to write the final snapshot of every player to.")
	verbose := flag.Bool("v", false, "Log every bot decision.")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()

	profile := config.Default()
	if *profilePath != "" {
		p, err := config.Load(*profilePath)
		if err != nil {
			log.Fatal().Err(err).Msg("load-profile")
		}
		profile = p
	}
	if *seed == 0 {
		*seed = profile.Seed
	}

	log.Info().Str("profile", profile.Name).Int("matches", *matches).Msg("starting")

	report := &Report{
		Profile:   profile.Name,
		Matches:   *matches,
		MaxFrames: *maxFrames,
		Frame:     *frameDelta,
	}
	start := time.Now()

	for i := 0; i < *matches; i++ {
		opts := match.DefaultOptions(*seed + uint64(i))
		opts.Rules = profile.Rules
		opts.Planner = profile.Planner
		opts.Bot = profile.Bot
		opts.Log = log
		m := match.New(opts)
		s := match.NewDefaultScheduler(m)

		for f := 0; f < *maxFrames && !m.Over(); f++ {
			s.Once(frameDelta.Seconds())
		}
		report.Add(m, s.GetStats())

		if *dumpDir != "" {
			if err := dump(*dumpDir, m); err != nil {
				log.Error().Err(err).Msg("dump-snapshot")
			}
		}
	}

	report.TotalTime = time.Since(start)
	report.Finalize()

	if err := report.Generate(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("generate-report")
	}
}

// dump writes each player's final snapshot in wire form.
func dump(dir string, m *match.Match) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, p := range m.Players {
		snap, err := p.Engine.Snapshot()
		if err != nil {
			return err
		}
		name := filepath.Join(dir, fmt.Sprintf("%s-%s.bin", m.ID, p.Name))
		if err := os.WriteFile(name, netsync.Encode(snap), 0o644); err != nil {
			return err
		}
	}
	return nil
}
