package viz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/ornilab/flapsweep/internal/collect"
	"github.com/ornilab/flapsweep/internal/table"
	"github.com/ornilab/flapsweep/internal/wing"
)

const historyCapacity = 600

type TickMsg time.Time

// caseDoneMsg carries the outcome of a single solver case back into the
// event loop. On success the row has already been appended to the table.
type caseDoneMsg struct {
	rec collect.Record
	err error
}

// Model drives a sweep one case at a time and renders live progress.
// Cases run sequentially: the next case launches only after the previous
// one has landed and its row is committed, so the output table keeps the
// same ordering the batch commands produce.
type Model struct {
	ctx       context.Context
	collector *collect.Collector
	writer    *table.Writer
	cases     []wing.Case

	next     int
	running  bool
	inFlight bool
	done     bool
	started  time.Time
	liftHist []float64
	last     collect.Record
	haveLast bool
	err      error
}

// NewModel prepares a dashboard over the given cases. The caller probes
// the solver and creates the writer first, so a missing solver surfaces
// before any terminal state is touched.
func NewModel(ctx context.Context, c *collect.Collector, w *table.Writer, cases []wing.Case) Model {
	return Model{
		ctx:       ctx,
		collector: c,
		writer:    w,
		cases:     cases,
		running:   true,
		inFlight:  len(cases) > 0,
		done:      len(cases) == 0,
		started:   time.Now(),
		liftHist:  make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	if m.done {
		return tea.Quit
	}
	return tea.Batch(m.launch(m.next), tick())
}

// launch runs one case outside the event loop and reports back. The row
// append happens inside the command so a failed write surfaces exactly
// like a failed solve.
func (m Model) launch(i int) tea.Cmd {
	wc := m.cases[i]
	return func() tea.Msg {
		rec, _, err := m.collector.RunOne(m.ctx, wc)
		if err == nil {
			err = m.writer.Append(rec.Row())
		}
		return caseDoneMsg{rec: rec, err: err}
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles key input, case completions, and clock ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
			if m.running && !m.inFlight && !m.done {
				m.inFlight = true
				return m, m.launch(m.next)
			}
		}
	case caseDoneMsg:
		m.inFlight = false
		if msg.err != nil {
			m.err = fmt.Errorf("case %d/%d: %w", m.next+1, len(m.cases), msg.err)
			m.done = true
			return m, tea.Quit
		}
		m.last = msg.rec
		m.haveLast = true
		m.liftHist = append(m.liftHist, msg.rec.AverageLift)
		if len(m.liftHist) > historyCapacity {
			m.liftHist = m.liftHist[1:]
		}
		m.next++
		if m.next >= len(m.cases) {
			m.done = true
			return m, tea.Quit
		}
		if m.running {
			m.inFlight = true
			return m, m.launch(m.next)
		}
	case TickMsg:
		if m.done {
			return m, nil
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("FLAPSWEEP") + "\n")

	status := "RUNNING"
	switch {
	case m.err != nil:
		status = failStyle.Render("FAILED")
	case m.done:
		status = "DONE"
	case !m.running && m.inFlight:
		status = pausedStyle.Render("PAUSING (case in flight)")
	case !m.running:
		status = pausedStyle.Render("PAUSED")
	}
	s.WriteString(status + "\n\n")

	if len(m.liftHist) > 1 {
		chart := asciigraph.Plot(m.liftHist, asciigraph.Height(4), asciigraph.Width(40), asciigraph.Caption("Average lift (N)"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	frac := 0.0
	if len(m.cases) > 0 {
		frac = float64(m.next) / float64(len(m.cases))
	}
	s.WriteString(labelStyle.Render("Progress") + valueStyle.Render(fmt.Sprintf("%s %d/%d", progressBar(frac, 20), m.next, len(m.cases))) + "\n")
	s.WriteString(labelStyle.Render("Elapsed") + valueStyle.Render(time.Since(m.started).Round(time.Second).String()) + "\n")
	s.WriteString(labelStyle.Render("Output") + valueStyle.Render(m.writer.Path()) + "\n")
	if m.haveLast {
		c := m.last.Case
		desc := fmt.Sprintf("%s ws=%.2f ar=%.2f tr=%.2f fp=%.2f va=%.2f aoa=%.1f",
			c.Airfoil, c.Wingspan, c.AspectRatio, c.TaperRatio, c.FlappingPeriod, c.AirSpeed, c.AngleOfAttack)
		s.WriteString(labelStyle.Render("Last case") + valueStyle.Render(desc) + "\n")
		s.WriteString(labelStyle.Render("Lift") + valueStyle.Render(fmt.Sprintf("%.4f N", m.last.AverageLift)) + "\n")
		s.WriteString(labelStyle.Render("Induced drag") + valueStyle.Render(fmt.Sprintf("%.4f N", m.last.AverageInducedDrag)) + "\n")
	}
	if m.err != nil {
		s.WriteString("\n" + failStyle.Render(m.err.Error()) + "\n")
	}
	s.WriteString(helpStyle.Render("SP:Pause Q:Quit"))
	return statsStyle.Render(s.String())
}

// Err reports the failure that stopped the sweep, if any.
func (m Model) Err() error { return m.err }

// Done reports whether every case completed.
func (m Model) Done() bool { return m.done && m.err == nil && m.next == len(m.cases) }

// Completed returns the number of rows committed so far.
func (m Model) Completed() int { return m.next }
