package locomotion

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
)

const (
	// DefaultBaseStep is the distance moved per tick at speed 1.
	DefaultBaseStep = 0.0005
	// DefaultRotationRate is the fraction of π turned per tick at speed 1.
	DefaultRotationRate = 0.001
	// MinSpeed is the lowest accepted speed; lower values are clamped up to it.
	MinSpeed = 1
)

// ErrInvalidBounds is returned when a bound interval has min > max on some axis.
var ErrInvalidBounds = errors.New("invalid bounds")

// Facing is which of the two opposite travel directions the walker is moving in.
type Facing int

const (
	Forward Facing = iota
	Backward
)

func (f Facing) String() string {
	switch f {
	case Forward:
		return "Forward"
	case Backward:
		return "Backward"
	}
	return fmt.Sprintf("Facing(%d)", int(f))
}

// sign returns +1 for Forward and -1 for Backward.
func (f Facing) sign() float64 {
	if f == Backward {
		return -1
	}
	return 1
}

// Action is what the walker is currently doing.
type Action int

const (
	Idle Action = iota
	Move
)

func (a Action) String() string {
	switch a {
	case Idle:
		return "Idle"
	case Move:
		return "Move"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// State is the observable locomotion state derived from action and the rotating flag.
type State int

const (
	StateIdle State = iota
	StateMovingStraight
	StateRotating
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateMovingStraight:
		return "MovingStraight"
	case StateRotating:
		return "Rotating"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Options configures a Walker. Zero BaseStep and RotationRate fall back to the defaults;
// Speed below MinSpeed is clamped (with a warning) like SetSpeed.
type Options struct {
	Speed        float64
	BaseStep     float64
	RotationRate float64
	Min          Vec3
	Max          Vec3
	Logger       *slog.Logger
}

// Walker drives a Transform back and forth between Min.Z and Max.Z, turning around smoothly
// at each end. It owns only the state machine; position and rotation live in the Transform.
type Walker struct {
	tf           Transform
	log          *slog.Logger
	speed        float64
	baseStep     float64
	rotationRate float64
	min          Vec3
	max          Vec3
	facing       Facing
	rotating     bool
	action       Action
	boundsErr    error
}

// New returns an idle walker facing Forward that will move tf. The bounds in opts are
// validated; an invalid interval is returned as an error and no walker is created.
func New(tf Transform, opts Options) (*Walker, error) {
	if tf == nil {
		return nil, errors.New("locomotion: nil transform")
	}
	w := &Walker{
		tf:           tf,
		log:          opts.Logger,
		speed:        MinSpeed,
		baseStep:     opts.BaseStep,
		rotationRate: opts.RotationRate,
	}
	if w.log == nil {
		w.log = slog.Default()
	}
	if w.baseStep == 0 {
		w.baseStep = DefaultBaseStep
	}
	if w.rotationRate == 0 {
		w.rotationRate = DefaultRotationRate
	}
	if opts.Speed != 0 {
		w.SetSpeed(opts.Speed)
	}
	if err := w.SetBounds(opts.Min, opts.Max); err != nil {
		return nil, err
	}
	return w, nil
}

// SetSpeed sets the speed multiplier. Values below MinSpeed are logged and clamped to MinSpeed.
func (w *Walker) SetSpeed(v float64) {
	if v < MinSpeed || math.IsNaN(v) {
		w.log.Warn("Speed below minimum, clamping", "speed", v, "min", MinSpeed)
		v = MinSpeed
	}
	w.speed = v
}

// Speed returns the effective speed multiplier.
func (w *Walker) Speed() float64 {
	return w.speed
}

// SetBounds replaces the bound intervals on all axes. If min > max on any axis nothing is
// changed and the error names the first offending axis. A walker already moving keeps
// patrolling the previous bounds; only a later SetAction(Move) is refused until a valid
// configuration is set.
func (w *Walker) SetBounds(min, max Vec3) error {
	for a := AxisX; a <= AxisZ; a++ {
		if min.Get(a) > max.Get(a) {
			w.boundsErr = fmt.Errorf("%w: min %s %g > max %s %g", ErrInvalidBounds, a, min.Get(a), a, max.Get(a))
			return w.boundsErr
		}
	}
	w.min = min
	w.max = max
	w.boundsErr = nil
	return nil
}

// SetAxisBounds replaces the bound interval on one axis. See SetBounds for failure behavior.
func (w *Walker) SetAxisBounds(a Axis, min, max float64) error {
	if min > max {
		w.boundsErr = fmt.Errorf("%w: min %s %g > max %s %g", ErrInvalidBounds, a, min, a, max)
		return w.boundsErr
	}
	w.min = w.min.With(a, min)
	w.max = w.max.With(a, max)
	w.boundsErr = nil
	return nil
}

// Bounds returns the current bound intervals.
func (w *Walker) Bounds() (min, max Vec3) {
	return w.min, w.max
}

// SetAction switches between Idle and Move. Entering Move fails while the last bounds
// configuration was rejected.
func (w *Walker) SetAction(a Action) error {
	if a == Move && w.boundsErr != nil {
		return w.boundsErr
	}
	w.action = a
	return nil
}

// Action returns the current action.
func (w *Walker) Action() Action {
	return w.action
}

// Facing returns the current travel direction.
func (w *Walker) Facing() Facing {
	return w.facing
}

// Rotating reports whether the walker is turning around.
func (w *Walker) Rotating() bool {
	return w.rotating
}

// State returns Idle, MovingStraight or Rotating.
func (w *Walker) State() State {
	switch {
	case w.action != Move:
		return StateIdle
	case w.rotating:
		return StateRotating
	default:
		return StateMovingStraight
	}
}

// Tick advances the state machine by one frame, mutating the transform in place.
func (w *Walker) Tick() {
	if w.action != Move {
		return
	}
	if !w.rotating {
		w.moveStraight()
		return
	}
	w.rotate()
}

func (w *Walker) moveStraight() {
	movePOV(w.tf, w.baseStep*w.speed)
	z := w.tf.Position().Z
	switch w.facing {
	case Forward:
		if z <= w.min.Z {
			w.facing = Backward
			w.rotating = true
		}
	case Backward:
		if z >= w.max.Z {
			w.facing = Forward
			w.rotating = true
		}
	}
}

func (w *Walker) rotate() {
	rotatePOV(w.tf, math.Pi*w.facing.sign()*w.rotationRate*w.speed)
	// Exit is not symmetric across facings: y >= 0 also ends a turn that crosses zero.
	y := w.tf.Rotation().Y
	if math.Abs(y) >= math.Pi || y >= 0 {
		w.rotating = false
	}
}
