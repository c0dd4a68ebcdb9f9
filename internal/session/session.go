// Package session drives the interactive area calculator dialogue.
//
// A Session is a small state machine:
//
//	Start -> SelectShape -> CollectParameters -> Compute -> Report -> AskRepeat
//	                ^                                                    |
//	                +------------------------ yes -----------------------+
//	                                                                     | no
//	                                                                    End
//
// All reads go through prompt.Reader, which absorbs invalid input. End of
// input at any prompt ends the session the same way as answering "no".
package session

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/google/uuid"

	"github.com/zjrosen/areacalc/internal/log"
	"github.com/zjrosen/areacalc/internal/prompt"
	"github.com/zjrosen/areacalc/internal/shape"
	"github.com/zjrosen/areacalc/internal/ui/styles"
)

// Transcript strings.
const (
	Banner       = "Area Calculator"
	MenuHeader   = "Choose a shape:"
	OptionPrompt = "Option: "
	ResultHeader = "Result"
	RepeatPrompt = "Do you want to calculate another area? (yes/no): "
	Farewell     = "Program ended"

	MsgAreaOverflow = "The area is too large to represent. Please enter smaller values."
)

// DefaultPrecision is the number of digits printed after the decimal point.
const DefaultPrecision = 6

// State is a step of the dialogue.
type State int

const (
	StateStart State = iota
	StateSelectShape
	StateCollectParameters
	StateCompute
	StateReport
	StateAskRepeat
	StateEnd
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateSelectShape:
		return "select_shape"
	case StateCollectParameters:
		return "collect_parameters"
	case StateCompute:
		return "compute"
	case StateReport:
		return "report"
	case StateAskRepeat:
		return "ask_repeat"
	case StateEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Result is one completed calculation.
type Result struct {
	Shape  string
	Values []float64
	Area   float64
}

// Option configures a Session.
type Option func(*Session)

// WithTheme sets the transcript theme.
func WithTheme(theme styles.Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}

// WithPrecision sets the digits printed after the decimal point.
func WithPrecision(digits int) Option {
	return func(s *Session) {
		s.precision = digits
	}
}

// WithResultHook calls fn after every reported calculation. The session
// itself keeps no history.
func WithResultHook(fn func(Result)) Option {
	return func(s *Session) {
		s.onResult = fn
	}
}

// WithID overrides the generated session id used in log lines.
func WithID(id string) Option {
	return func(s *Session) {
		s.id = id
	}
}

// Session holds the state of one interactive dialogue.
type Session struct {
	registry  shape.Registry
	reader    *prompt.Reader
	out       io.Writer
	theme     styles.Theme
	precision int
	id        string
	onResult  func(Result)

	// current iteration, reset on every SelectShape
	def    shape.Definition
	values []float64
	area   float64

	calculations int
}

// New creates a Session reading answers from in and writing the transcript
// to out.
func New(registry shape.Registry, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		registry:  registry,
		out:       out,
		theme:     styles.Plain(),
		precision: DefaultPrecision,
		id:        uuid.NewString(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reader = prompt.NewReader(in, out, prompt.WithDiagnosticStyle(s.theme.Diagnostic))
	return s
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// Run drives the dialogue until the user declines to continue or the input
// ends. Returns an error only when reading the input fails.
func (s *Session) Run() error {
	log.Info(log.CatSession, "session started", "session", s.id, "shapes", s.registry.Size())

	state := StateStart
	for state != StateEnd {
		next, err := s.step(state)
		if errors.Is(err, prompt.ErrInputClosed) {
			log.Info(log.CatSession, "input closed", "session", s.id, "state", state)
			next, err = StateEnd, nil
		}
		if err != nil {
			log.ErrorErr(log.CatSession, "session failed", err, "session", s.id, "state", state)
			return fmt.Errorf("session %s: %s: %w", s.id, state, err)
		}
		log.Debug(log.CatSession, "transition", "session", s.id, "from", state, "to", next)
		state = next
	}

	s.println()
	s.println(Farewell)
	s.println()
	log.Info(log.CatSession, "session ended", "session", s.id, "calculations", s.calculations)
	return nil
}

func (s *Session) step(state State) (State, error) {
	switch state {
	case StateStart:
		s.println()
		s.println(s.theme.Title(Banner))
		s.println()
		return StateSelectShape, nil
	case StateSelectShape:
		return s.selectShape()
	case StateCollectParameters:
		return s.collectParameters()
	case StateCompute:
		return s.compute(), nil
	case StateReport:
		s.report()
		return StateAskRepeat, nil
	case StateAskRepeat:
		s.println()
		again, err := s.reader.YesNo(RepeatPrompt)
		if err != nil {
			return state, err
		}
		if again {
			return StateSelectShape, nil
		}
		return StateEnd, nil
	default:
		log.Error(log.CatSession, "unknown state", "session", s.id, "state", int(state))
		return StateEnd, fmt.Errorf("unknown state %d", state)
	}
}

func (s *Session) selectShape() (State, error) {
	s.println(MenuHeader)
	for _, entry := range s.registry.List() {
		s.println(s.theme.MenuIndex(strconv.Itoa(entry.Index)) + " - " + entry.Name)
	}

	choice, err := s.reader.MenuChoice(OptionPrompt, 1, s.registry.Size())
	if err != nil {
		return StateSelectShape, err
	}
	def, err := s.registry.Get(choice)
	if err != nil {
		return StateSelectShape, err
	}

	s.def = def
	s.values = make([]float64, def.Arity())
	s.area = 0
	log.Debug(log.CatSession, "shape selected", "session", s.id, "shape", def.Name)
	return StateCollectParameters, nil
}

func (s *Session) collectParameters() (State, error) {
	for i, p := range s.def.Params {
		v, err := s.readParameter(p)
		if err != nil {
			return StateCollectParameters, err
		}
		s.values[i] = v
	}

	// Cross-field checks re-read only the offending field.
	for {
		violation := s.def.Validate(s.values)
		if violation == nil {
			break
		}
		log.Debug(log.CatInput, "cross-field check failed", "session", s.id, "shape", s.def.Name,
			"field", s.def.Params[violation.Field].Name)
		s.reader.Diagnose(violation.Message)

		v, err := s.readParameter(s.def.Params[violation.Field])
		if err != nil {
			return StateCollectParameters, err
		}
		s.values[violation.Field] = v
	}
	return StateCompute, nil
}

// compute stores the area, or asks for every parameter again when the
// values are finite but the area is not.
func (s *Session) compute() State {
	area := s.def.Compute(s.values)
	if math.IsInf(area, 0) || math.IsNaN(area) {
		log.Warn(log.CatShape, "area not representable", "session", s.id, "shape", s.def.Name, "values", s.values)
		s.reader.Diagnose(MsgAreaOverflow)
		return StateCollectParameters
	}
	s.area = area
	return StateReport
}

func (s *Session) readParameter(p shape.Parameter) (float64, error) {
	label := "Enter " + p.Name + ": "
	switch p.Kind {
	case shape.IntAtLeast:
		n, err := s.reader.IntAtLeast(label, p.Min)
		return float64(n), err
	default:
		return s.reader.PositiveFloat(label)
	}
}

func (s *Session) report() {
	s.println()
	s.println(s.theme.Heading(ResultHeader))
	s.println("Shape: " + s.def.Name)
	s.println("Area: " + FormatArea(s.area, s.precision))

	s.calculations++
	if s.onResult != nil {
		s.onResult(Result{
			Shape:  s.def.Name,
			Values: append([]float64(nil), s.values...),
			Area:   s.area,
		})
	}
	log.Info(log.CatSession, "area computed", "session", s.id, "shape", s.def.Name, "area", s.area)
}

// FormatArea formats an area with a fixed number of decimal places.
func FormatArea(area float64, digits int) string {
	return strconv.FormatFloat(area, 'f', digits, 64)
}

func (s *Session) println(parts ...string) {
	for _, p := range parts {
		_, _ = io.WriteString(s.out, p)
	}
	_, _ = io.WriteString(s.out, "\n")
}
