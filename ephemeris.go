package celestial

import (
	"io"
	"sync"

	kitlog "github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/soniakeys/unit"
)

// BodyPosition is the result of one position query. Err is set when the
// Kepler solver failed for that body only.
type BodyPosition struct {
	Body     string
	JT       float64
	Elements PropagatedElements
	Anomaly  AnomalySolution
	Position HeliocentricPosition
	Err      error
}

// StarPosition holds the horizontal coordinates of a star.
type StarPosition struct {
	Star       Star
	HourAngle  float64 // radians
	Horizontal Horizontal
	Visible    bool
}

// Ephemeris computes positions for sets of bodies and stars.
type Ephemeris struct {
	tol           float64
	maxIterations int
	metrics       *Metrics
	logger        kitlog.Logger
}

// EphemerisOption configures an Ephemeris.
type EphemerisOption func(*Ephemeris)

// WithLogger sets the logger (a no-op logger by default).
func WithLogger(l kitlog.Logger) EphemerisOption {
	return func(e *Ephemeris) {
		e.logger = l
	}
}

// WithMetrics sets where solver metrics are recorded.
func WithMetrics(m *Metrics) EphemerisOption {
	return func(e *Ephemeris) {
		e.metrics = m
	}
}

// WithSolver sets the Kepler solver tolerance and iteration cap.
func WithSolver(tol float64, maxIterations int) EphemerisOption {
	return func(e *Ephemeris) {
		e.tol = tol
		e.maxIterations = maxIterations
	}
}

// NewEphemeris returns an Ephemeris using the default solver budget.
func NewEphemeris(opts ...EphemerisOption) *Ephemeris {
	e := &Ephemeris{tol: DefaultTolerance, maxIterations: DefaultMaxIterations, logger: kitlog.NewNopLogger()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewLogger returns a logfmt logger on w, filtered at the given level
// (one of debug, info, warn, error).
func NewLogger(w io.Writer, lvl string) kitlog.Logger {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(w))
	var opt level.Option
	switch lvl {
	case "debug":
		opt = level.AllowDebug()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		opt = level.AllowInfo()
	}
	klog = level.NewFilter(klog, opt)
	return kitlog.With(klog, "ts", kitlog.DefaultTimestampUTC)
}

// Body computes the position of a single body at the Julian time jt.
func (e *Ephemeris) Body(obj CelestialObject, jt float64) BodyPosition {
	logger := kitlog.With(e.logger, "body", obj.Name)
	bp := BodyPosition{Body: obj.Name, JT: jt}
	bp.Elements = obj.Elements.Propagate(jt)
	bp.Anomaly, bp.Position, bp.Err = ComputePositionWith(bp.Elements, e.tol, e.maxIterations)
	e.metrics.observeSolve(obj.Name, bp.Anomaly, bp.Err)
	if bp.Err != nil {
		level.Error(logger).Log("msg", "position failed", "jt", jt, "err", bp.Err)
		return bp
	}
	level.Debug(logger).Log("jt", jt, "elements", bp.Elements, "anomaly", bp.Anomaly, "iterations", bp.Anomaly.Iterations)
	return bp
}

// Bodies computes the positions of all objects at jt concurrently. Results are
// in the order of objs and a failure only affects its own entry.
func (e *Ephemeris) Bodies(objs []CelestialObject, jt float64) []BodyPosition {
	rslt := make([]BodyPosition, len(objs))
	var wg sync.WaitGroup
	for i, obj := range objs {
		wg.Add(1)
		go func(i int, obj CelestialObject) {
			defer wg.Done()
			rslt[i] = e.Body(obj, jt)
		}(i, obj)
	}
	wg.Wait()
	level.Info(e.logger).Log("msg", "ephemeris computed", "bodies", len(objs), "jt", jt)
	return rslt
}

// Stars returns the horizontal coordinates of the stars for the local
// sidereal time lst and observer latitude (radians).
func (e *Ephemeris) Stars(stars []Star, lst unit.Angle, latitude float64) []StarPosition {
	rslt := make([]StarPosition, len(stars))
	for i, s := range stars {
		h := HourAngle(lst.Rad(), s.RA.Rad())
		hz := ToHorizontal(h, s.Dec.Rad(), latitude)
		rslt[i] = StarPosition{s, h, hz, hz.Altitude >= 0}
		e.metrics.observeHorizontal()
	}
	level.Info(e.logger).Log("msg", "horizontal coordinates computed", "stars", len(stars), "lst", lst.Deg())
	return rslt
}

// Observe returns the horizontal coordinates of the stars seen by obs at jt.
// Visibility uses the observer's elevation mask.
func (e *Ephemeris) Observe(obs Observer, stars []Star, jt JulianTime) []StarPosition {
	rslt := e.Stars(stars, obs.LocalSiderealTime(jt), obs.LatΦ)
	visible := 0
	for i := range rslt {
		rslt[i].Visible = obs.Visible(rslt[i].Horizontal)
		if rslt[i].Visible {
			visible++
		}
	}
	level.Debug(e.logger).Log("observer", obs, "jt", jt.JT, "visible", visible)
	return rslt
}
