package main

import (
	"flag"
	"os"
	"time"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/plus3/blockbattle/config"
	"github.com/plus3/blockbattle/match"
	"github.com/plus3/blockbattle/match/debugui"
)

func main() {
	profilePath := flag.String("profile", "", "YAML tuning profile. Defaults are used when empty.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed shared by both players.")
	human := flag.Bool("human", false, "Play the left board from the keyboard.")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	profile := config.Default()
	if *profilePath != "" {
		p, err := config.Load(*profilePath)
		if err != nil {
			log.Fatal().Err(err).Msg("load-profile")
		}
		profile = p
	}

	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow("blockbattle", screenWidth, screenHeight)
	imgui.CurrentIO().SetIniFilename("")

	opts := match.DefaultOptions(*seed)
	opts.Rules = profile.Rules
	opts.Planner = profile.Planner
	opts.Bot = profile.Bot
	opts.Log = log
	if *human {
		opts.Names[0] = "you"
		opts.Bots[0] = false
	}
	m := match.New(opts)

	scheduler := match.NewDefaultScheduler(m)
	panels := &debugui.PanelSystem{}
	perf := debugui.NewPerformancePanel(scheduler, 120)
	timer := newFrameTimer()
	panels.Add(func() { perf.Render(timer.delta()) })
	for _, p := range m.Players {
		panels.Add(debugui.NewPlayerPanel(p).Render)
	}
	scheduler.Register(panels)

	game := &Game{
		match:     m,
		scheduler: scheduler,
		panels:    panels,
		backend:   backend,
		human:     *human,
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("run-game")
	}
}

type frameTimer struct {
	last time.Time
}

func newFrameTimer() *frameTimer {
	return &frameTimer{last: time.Now()}
}

func (ft *frameTimer) delta() float32 {
	now := time.Now()
	d := float32(now.Sub(ft.last).Seconds())
	ft.last = now
	return d
}
