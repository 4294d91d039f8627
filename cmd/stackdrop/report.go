package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Lines    int
	Pieces   int
	Seed     uint64

	// Results
	TotalSolved    int64
	Overflows      int64
	Failures       int64
	HeightSum      int64
	Placements     int
	RowsCleared    int
	PeakHeight     int
	TotalTime      time.Duration
	SolveTime      Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// AvgHeight is the mean final height over solved puzzles.
func (r *Report) AvgHeight() float64 {
	if r.TotalSolved == 0 {
		return 0
	}
	return float64(r.HeightSum) / float64(r.TotalSolved)
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Stackdrop Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Generated Puzzles:** {{.Lines}}
- **Placements per Puzzle:** {{.Pieces}}
- **Seed:** {{.Seed}}

## Results
- **Puzzles Solved:** {{.TotalSolved}}
- **Overflowed Puzzles:** {{.Overflows}}
- **Failed Puzzles:** {{.Failures}}
- **Placements:** {{.Placements}}
- **Rows Cleared:** {{.RowsCleared}}
- **Peak Height:** {{.PeakHeight}}
- **Average Final Height:** {{printf "%.2f" .AvgHeight}}
- **Total Test Time:** {{.TotalTime}}
- **Solve Time (Puzzle):**
  - **Avg:** {{.SolveTime.Avg}}
  - **Min:** {{.SolveTime.Min}}
  - **Max:** {{.SolveTime.Max}}

## Memory Usage (MiB)
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} (start) -> {{mb .MemStatsEnd.HeapAlloc}} (end)
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} (start) -> {{mb .MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc | mb}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{usub64 .MemStatsEnd.PauseTotalNs .MemStatsStart.PauseTotalNs | ns}}
- **Num GC Cycles:** {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{end}}`

	fm := template.FuncMap{
		"mb": func(v any) string {
			switch val := v.(type) {
			case uint64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			case int64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			default:
				return "N/A"
			}
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"usub64": func(a, b uint64) uint64 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
