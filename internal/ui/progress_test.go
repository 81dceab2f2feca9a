package ui

import (
	"bytes"
	"testing"
)

func TestPipelinePhases(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewPipelineWithOutput([]Phase{PhaseDiscovering, PhaseParsing}, out)

	if p.Current() != "" {
		t.Errorf("Current() before start = %q, expected empty", p.Current())
	}

	bar := p.NextPhase(3)
	if p.Current() != PhaseDiscovering {
		t.Errorf("Current() = %q, expected %q", p.Current(), PhaseDiscovering)
	}
	bar.Describe("cetus")
	bar.Increment()
	bar.SetTotal(5)

	p.NextPhase(1).Increment()
	if p.Current() != PhaseParsing {
		t.Errorf("Current() = %q, expected %q", p.Current(), PhaseParsing)
	}

	// Past the last phase: still usable, renders nothing
	extra := p.NextPhase(2)
	if extra == nil {
		t.Fatal("NextPhase past the end returned nil")
	}
	extra.Increment()
	p.Finish()

	if out.Len() == 0 {
		t.Error("Expected progress output for enabled pipeline")
	}
}

func TestPipelineDisabled(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewPipelineWithOutput([]Phase{PhaseWriting}, out)
	p.Disable()

	bar := p.NextPhase(2)
	bar.Increment()
	bar.Increment()
	p.Finish()

	if out.Len() != 0 {
		t.Errorf("Disabled pipeline wrote output: %q", out.String())
	}
}
