package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/vinom-droid/domain"
	"github.com/beka-birhanu/vinom-droid/game/droid"
	"github.com/beka-birhanu/vinom-droid/game/maze"
	"github.com/beka-birhanu/vinom-droid/service/i"
	"github.com/google/uuid"
)

const (
	defaultDroidName    = "R2D2"
	defaultKeepReports  = 100
	defaultMaxDimension = maze.MaxDimension

	maxFrames = 1000
)

var (
	ErrReportNotFound = errors.New("report not found")
	ErrMazeTooLarge   = errors.New("maze exceeds the allowed dimensions")
)

// Explorer runs one droid per request and keeps the latest reports in memory.
type Explorer struct {
	logger       i.Logger
	droidLogger  droid.Logger
	maxDimension int
	keepReports  int
	reports      map[uuid.UUID]*dmn.Report
	order        []uuid.UUID // report IDs, oldest first
	sync.RWMutex
}

// ExplorerConfig holds the dependencies and limits of an Explorer.
type ExplorerConfig struct {
	Logger       i.Logger     // Service logger, required
	DroidLogger  droid.Logger // Decision trace of every droid, optional
	MaxDimension int          // Largest width or depth accepted
	KeepReports  int          // Reports kept before the oldest is evicted
}

// NewExplorer creates an Explorer, defaulting unset limits.
func NewExplorer(c *ExplorerConfig) (*Explorer, error) {
	if c == nil || c.Logger == nil {
		return nil, errors.New("explorer logger is required")
	}

	e := &Explorer{
		logger:       c.Logger,
		droidLogger:  c.DroidLogger,
		maxDimension: c.MaxDimension,
		keepReports:  c.KeepReports,
		reports:      make(map[uuid.UUID]*dmn.Report),
	}
	if e.maxDimension <= 0 || e.maxDimension > maze.MaxDimension {
		e.maxDimension = defaultMaxDimension
	}
	if e.keepReports <= 0 {
		e.keepReports = defaultKeepReports
	}
	return e, nil
}

// Explore parses the layout and runs a fresh droid through it.
func (e *Explorer) Explore(req dmn.ExploreRequest) (*dmn.Report, error) {
	m, err := maze.Parse(req.Layout)
	if err != nil {
		e.logger.Warning(fmt.Sprintf("rejected layout: %s", err))
		return nil, err
	}

	width, depth := m.Dimensions()
	if max(width, depth) > e.maxDimension {
		return nil, fmt.Errorf("%w: %dx%dx%d, limit %d", ErrMazeTooLarge, width, width, depth, e.maxDimension)
	}

	name := req.Name
	if name == "" {
		name = defaultDroidName
	}

	report := &dmn.Report{
		ID:        uuid.New(),
		Name:      name,
		Width:     width,
		Depth:     depth,
		CreatedAt: time.Now().UTC(),
	}

	options := []droid.Option{droid.WithLogger(e.droidLogger)}
	if req.Frames {
		options = append(options, droid.WithObserver(func(step int, lm *droid.LocalMap) {
			if len(report.Frames) >= maxFrames {
				report.FramesTruncated = true
				return
			}
			report.Frames = append(report.Frames, droid.Render(lm))
		}))
	}

	d := droid.New(name, options...)
	steps, err := d.Run(m)
	report.Steps = steps
	report.Solved = err == nil
	if err != nil {
		report.Error = err.Error()
		e.logger.Warning(fmt.Sprintf("droid %s stopped after %d steps: %s", name, steps, err))
	} else {
		e.logger.Info(fmt.Sprintf("droid %s solved a %dx%dx%d maze in %d steps", name, width, width, depth, steps))
	}
	if lm := d.Map(); lm != nil {
		report.Map = droid.Render(lm)
	}
	report.Trail = d.Path()

	e.save(report)
	return report, nil
}

// Report returns a stored report.
func (e *Explorer) Report(id uuid.UUID) (*dmn.Report, error) {
	e.RLock()
	defer e.RUnlock()

	report, ok := e.reports[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrReportNotFound, id)
	}
	return report, nil
}

// save stores the report, evicting the oldest ones beyond the limit.
func (e *Explorer) save(report *dmn.Report) {
	e.Lock()
	defer e.Unlock()

	e.reports[report.ID] = report
	e.order = append(e.order, report.ID)
	for len(e.order) > e.keepReports {
		delete(e.reports, e.order[0])
		e.order = e.order[1:]
	}
}
