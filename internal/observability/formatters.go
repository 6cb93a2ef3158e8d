// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/careerpath/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of the classified resume profile.
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Role:       %s\n", profile.CurrentRole))
	sb.WriteString(fmt.Sprintf("Education:  %s\n", profile.EducationLevel))
	sb.WriteString("\n")

	skills := profile.RealSkills()
	if len(skills) > 0 {
		sb.WriteString("Detected Skills:\n")
		count := min(len(skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", skills[i]))
		}
		if len(skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	signals := []string{}
	if profile.HasProductExperience {
		signals = append(signals, "✓product")
	}
	if profile.HasMetrics {
		signals = append(signals, "✓metrics")
	}
	if profile.HasLeadership {
		signals = append(signals, "✓leadership")
	}
	if profile.IsStudent {
		signals = append(signals, "student")
	}
	if len(signals) > 0 {
		sb.WriteString(fmt.Sprintf("Signals: [%s]", strings.Join(signals, " ")))
	}

	p.printBox("CLASSIFIED RESUME PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTier outputs the computed experience tier.
func (p *Printer) PrintTier(tier types.Tier, score int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Level:       %s %s\n", tier.Badge, tier.Level))
	sb.WriteString(fmt.Sprintf("Score:       %d\n", score))
	sb.WriteString(fmt.Sprintf("Start phase: %d", tier.StartPhase))

	p.printBox("EXPERIENCE TIER", sb.String())
}

// PrintRoadmap outputs a compact summary of the generated roadmap.
func (p *Printer) PrintRoadmap(roadmap *types.Roadmap) {
	if roadmap == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total actions: %d\n\n", roadmap.TotalActions()))

	for i := range roadmap.Phases {
		phase := &roadmap.Phases[i]
		sb.WriteString(fmt.Sprintf("Phase %d: %s\n", i+1, phase.Title))
		count := min(len(phase.Actions), maxItemsToShow)
		for j := 0; j < count; j++ {
			action := phase.Actions[j]
			title := action.Title
			if len(title) > 40 {
				title = title[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("  [%s] %s (%dh)\n", action.Priority, title, action.EffortHours))
		}
		if len(phase.Actions) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(phase.Actions)-maxItemsToShow))
		}
		if i < len(roadmap.Phases)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("GENERATED ROADMAP", sb.String())
}

// PrintGaps outputs the identified resume gaps.
func (p *Printer) PrintGaps(gaps []string) {
	if len(gaps) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))   //nolint:errcheck
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO GAPS FOUND") //nolint:errcheck
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))   //nolint:errcheck
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d gaps:\n\n", len(gaps)))

	for i, gap := range gaps {
		if len(gap) > 45 {
			gap = gap[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", gap))
		if i < len(gaps)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RESUME GAPS", sb.String())
}

// PrintTimeline outputs the completion estimate.
func (p *Printer) PrintTimeline(estimate *types.TimelineEstimate) {
	if estimate == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total effort: %d hours\n", estimate.TotalHours))
	sb.WriteString(fmt.Sprintf("Duration:     %d weeks (%d months)\n", estimate.TotalWeeks, estimate.TotalMonths))
	sb.WriteString(fmt.Sprintf("Commitment:   %d hrs/week", estimate.WeeklyHours))

	p.printBox("TIMELINE ESTIMATE", sb.String())
}

// PrintStep reports pipeline progress in plain lines.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintStep(step, total int, description string) {
	fmt.Fprintf(p.out, "[Step %d/%d] %s\n", step, total, description)
}
