package main

import (
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/plus3/blockbattle/match"
)

type Report struct {
	// Configuration
	Profile   string
	Matches   int
	MaxFrames int
	Frame     time.Duration

	// Results
	TotalTime time.Duration
	Wins      [2]int
	Draws     int
	Abandoned int
	Players   [2]PlayerTotals
	Systems   []SystemTotals
	Frames    Stats
}

type PlayerTotals struct {
	Name     string
	Pieces   int
	Lines    int
	Sent     int
	Received int
	Finesse  int
}

type SystemTotals struct {
	Name  string
	Total time.Duration
	Max   time.Duration
}

type Stats struct {
	Min     int64
	Max     int64
	Avg     int64
	Samples []int64
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total int64
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / int64(len(s.Samples))
}

// Add folds one finished or abandoned match into the report.
func (r *Report) Add(m *match.Match, stats *match.SchedulerStats) {
	switch {
	case !m.Over():
		r.Abandoned++
	case m.Winner() == match.NoWinner:
		r.Draws++
	default:
		r.Wins[m.Winner()]++
	}
	r.Frames.Samples = append(r.Frames.Samples, m.Frames())

	for i, p := range m.Players {
		c := p.Engine.Counters()
		t := &r.Players[i]
		t.Name = p.Name
		t.Pieces += c.PiecesPlaced
		t.Lines += c.LinesCleared
		t.Sent += c.AttacksSent
		t.Received += p.Received()
		t.Finesse += c.FinesseErrors
	}

	if r.Systems == nil {
		r.Systems = make([]SystemTotals, len(stats.Systems))
	}
	for i, sys := range stats.Systems {
		r.Systems[i].Name = sys.Name
		r.Systems[i].Total += sys.TotalDuration
		r.Systems[i].Max = max(r.Systems[i].Max, sys.MaxDuration)
	}
}

func (r *Report) Finalize() {
	r.Frames.Finalize()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Match Simulation Report

## Configuration
- **Profile:** {{.Profile}}
- **Matches:** {{.Matches}}
- **Frame:** {{.Frame}} (abandon after {{.MaxFrames}} frames)

## Outcomes
- **{{(index .Players 0).Name}} wins:** {{index .Wins 0}}
- **{{(index .Players 1).Name}} wins:** {{index .Wins 1}}
- **Draws:** {{.Draws}}
- **Abandoned:** {{.Abandoned}}
- **Frames per match:** avg {{.Frames.Avg}}, min {{.Frames.Min}}, max {{.Frames.Max}}

## Players
{{range .Players}}- **{{.Name}}:** {{.Pieces}} pieces, {{.Lines}} lines, {{.Sent}} sent, {{.Received}} received, {{.Finesse}} finesse errors{{if .Pieces}} ({{apm .Sent .Pieces}} attack per piece){{end}}
{{end}}
## Systems
{{range .Systems}}- {{.Name}}: total {{.Total}}, max {{.Max}}
{{end}}
- **Wall Time:** {{.TotalTime}}
`

	fm := template.FuncMap{
		"apm": func(sent, pieces int) string {
			return fmt.Sprintf("%.2f", float64(sent)/float64(pieces))
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
