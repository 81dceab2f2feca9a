package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// ProgressBar wraps the progressbar library with our custom styling
type ProgressBar struct {
	bar   *progressbar.ProgressBar
	phase string
	total int
}

// Phase represents a stage of an extraction run
type Phase string

const (
	PhaseDiscovering Phase = "Discovering"
	PhaseParsing     Phase = "Parsing"
	PhaseWriting     Phase = "Writing"
	PhaseReporting   Phase = "Reporting"
)

// NewProgressBar creates a new progress bar for a specific phase
func NewProgressBar(phase Phase, total int) *ProgressBar {
	return NewProgressBarWithOutput(phase, total, os.Stdout)
}

// NewProgressBarWithOutput creates a new progress bar with custom output
func NewProgressBarWithOutput(phase Phase, total int, output io.Writer) *ProgressBar {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(output),
		progressbar.OptionSetDescription(fmt.Sprintf("[%s]", phase)),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionEnableColorCodes(true),
	)

	return &ProgressBar{
		bar:   bar,
		phase: string(phase),
		total: total,
	}
}

func discardBar(phase Phase, total int) *ProgressBar {
	return &ProgressBar{
		bar:   progressbar.NewOptions(total, progressbar.OptionSetWriter(io.Discard)),
		phase: string(phase),
		total: total,
	}
}

// Increment increments the progress bar by 1
func (pb *ProgressBar) Increment() error {
	return pb.bar.Add(1)
}

// SetTotal updates the total count of the progress bar
func (pb *ProgressBar) SetTotal(total int) {
	pb.total = total
	pb.bar.ChangeMax(total)
}

// Finish completes the progress bar
func (pb *ProgressBar) Finish() error {
	return pb.bar.Finish()
}

// Describe shows the item currently being processed next to the phase name
func (pb *ProgressBar) Describe(item string) {
	pb.bar.Describe(fmt.Sprintf("[%s] %s", pb.phase, item))
}

// Pipeline represents a multi-phase progress tracking system
type Pipeline struct {
	phases   []Phase
	current  int
	bars     []*ProgressBar
	disabled bool
	output   io.Writer
}

// NewPipeline creates a new pipeline progress tracker on stdout
func NewPipeline(phases []Phase) *Pipeline {
	return NewPipelineWithOutput(phases, os.Stdout)
}

// NewPipelineWithOutput creates a new pipeline with custom output
func NewPipelineWithOutput(phases []Phase, output io.Writer) *Pipeline {
	return &Pipeline{
		phases:  phases,
		current: -1,
		bars:    make([]*ProgressBar, 0, len(phases)),
		output:  output,
	}
}

// Disable turns all following bars into no-ops
func (p *Pipeline) Disable() {
	p.disabled = true
}

// NextPhase finishes the current phase and returns the bar of the next one.
// Calling it past the last phase returns a bar that renders nothing.
func (p *Pipeline) NextPhase(total int) *ProgressBar {
	p.finishCurrent()

	p.current++
	if p.current >= len(p.phases) {
		return discardBar(Phase("done"), total)
	}

	phase := p.phases[p.current]
	var bar *ProgressBar
	if p.disabled {
		bar = discardBar(phase, total)
	} else {
		bar = NewProgressBarWithOutput(phase, total, p.output)
	}
	p.bars = append(p.bars, bar)
	return bar
}

// Current returns the name of the active phase, or "" before the first one
func (p *Pipeline) Current() Phase {
	if p.current < 0 || p.current >= len(p.phases) {
		return ""
	}
	return p.phases[p.current]
}

// Finish completes all phases
func (p *Pipeline) Finish() {
	p.finishCurrent()
}

func (p *Pipeline) finishCurrent() {
	if p.current >= 0 && p.current < len(p.bars) {
		p.bars[p.current].Finish()
	}
}
