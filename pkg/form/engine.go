package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/relato/pkg/logger"
	"github.com/dmitrymomot/relato/pkg/statemachine"
	"github.com/dmitrymomot/relato/pkg/validator"
)

// Engine validates the complaint form against host bindings. All methods
// are safe for concurrent use; each runs to completion before the next.
type Engine struct {
	mu     sync.Mutex
	cfg    Config
	loc    *time.Location
	clock  func() time.Time
	newID  func() uuid.UUID
	log    *slog.Logger
	fields []*field
	index  map[FieldName]*field
	phase  *statemachine.Machine[phase, phaseEvent]
	// pending is the success outcome awaiting acknowledgement.
	pending *Outcome
	// effects are host writes queued under mu and run by unlock.
	effects []func()
}

type field struct {
	desc    Descriptor
	binding Binding
	state   *statemachine.Machine[State, fieldEvent]
	message string
}

func (f *field) bound() bool {
	return f.binding.Input != nil
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithConfig replaces the validation limits.
func WithConfig(cfg Config) Option {
	return func(e *Engine) {
		e.cfg = cfg
	}
}

// WithStrict overrides Config.Strict.
func WithStrict(strict bool) Option {
	return func(e *Engine) {
		e.cfg.Strict = strict
	}
}

// WithClock sets the time source used for birthdate checks and reports.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// WithIDGenerator sets the report id source.
func WithIDGenerator(fn func() uuid.UUID) Option {
	return func(e *Engine) {
		if fn != nil {
			e.newID = fn
		}
	}
}

// New builds an engine over bindings. Fields without an Input are reported
// and skipped; fields without an error display still validate but only mark
// the input. With strict configuration both conditions, and bindings for
// unknown fields, make New fail instead.
func New(bindings Bindings, opts ...Option) (*Engine, error) {
	e := &Engine{
		cfg:   DefaultConfig(),
		clock: time.Now,
		newID: uuid.New,
		log:   logger.Discard(),
		index: make(map[FieldName]*field, len(registry)),
		phase: newPhaseMachine(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.With(logger.Component("form"))

	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}
	loc, err := e.cfg.location()
	if err != nil {
		return nil, err
	}
	e.loc = loc

	var problems []error
	for name := range bindings {
		if !IsRegistered(name) {
			e.log.Warn("binding for unknown field ignored", logger.Field(name.String()))
			problems = append(problems, fmt.Errorf("%w: %s", ErrUnknownField, name))
		}
	}

	for _, desc := range descriptors(e.cfg, e.now, e.loc) {
		b := bindings[desc.Name]
		f := &field{desc: desc, binding: b, state: newFieldMachine()}
		switch {
		case b.Input == nil:
			e.log.Error("field input not found", logger.Field(desc.Name.String()))
			problems = append(problems, fmt.Errorf("%w: %s", ErrMissingInput, desc.Name))
		case b.Error == nil:
			e.log.Warn("field error display not defined", logger.Field(desc.Name.String()))
			problems = append(problems, fmt.Errorf("%w: %s", ErrMissingErrorDisplay, desc.Name))
		}
		e.fields = append(e.fields, f)
		e.index[desc.Name] = f
	}

	if e.cfg.Strict && len(problems) > 0 {
		return nil, errors.Join(problems...)
	}
	return e, nil
}

func (e *Engine) now() time.Time {
	return e.clock()
}

// Fields returns the registry descriptors in validation order.
func (e *Engine) Fields() []Descriptor {
	out := make([]Descriptor, len(e.fields))
	for i, f := range e.fields {
		out[i] = f.desc
	}
	return out
}

// State returns the display state of name, or an empty State for fields
// outside the registry.
func (e *Engine) State(name FieldName) State {
	e.mu.Lock()
	defer e.mu.Unlock()
	f, ok := e.index[name]
	if !ok {
		return ""
	}
	return f.state.Current()
}

// Message returns the error message currently shown for name.
func (e *Engine) Message(name FieldName) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if f, ok := e.index[name]; ok {
		return f.message
	}
	return ""
}

// Confirming reports whether a successful submission awaits Acknowledge.
func (e *Engine) Confirming() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.phase.Current() == phaseConfirming
}

// Input runs raw keystroke input through the field mask, writes the result
// back to the host and returns it. Unmasked fields are written back
// unchanged. No validation happens here.
func (e *Engine) Input(name FieldName, raw string) string {
	e.mu.Lock()
	defer e.unlock()

	f, ok := e.lookup(name)
	if !ok {
		return raw
	}
	value := raw
	if f.desc.Mask != nil {
		value = f.desc.Mask(raw)
	}
	in := f.binding.Input
	e.queue(func() { in.SetValue(value) })
	return value
}

// ValidateField validates one field and updates its display. Unknown and
// unbound fields report false.
func (e *Engine) ValidateField(name FieldName) bool {
	e.mu.Lock()
	defer e.unlock()

	f, ok := e.lookup(name)
	if !ok {
		return false
	}
	return e.validate(f).IsValid()
}

// Blur is the leave-field hook; it validates the field.
func (e *Engine) Blur(name FieldName) bool {
	return e.ValidateField(name)
}

// ValidateAll validates every bound field in registry order without
// stopping at the first failure. It returns the overall validity and the
// first invalid field.
func (e *Engine) ValidateAll() (bool, FieldName) {
	e.mu.Lock()
	defer e.unlock()

	first, _ := e.validateAll()
	return first == "", first
}

// Submit handles a submit attempt. Nothing is transmitted: on failure the
// first invalid field is scrolled into view and focused, on success the
// form waits for Acknowledge and the report is returned. Submitting again
// before acknowledging returns the pending outcome.
func (e *Engine) Submit(ctx context.Context) Outcome {
	began := time.Now()
	e.mu.Lock()
	defer e.unlock()

	e.log.InfoContext(ctx, "form submit attempt", logger.Event("submit"))

	if e.pending != nil {
		e.log.DebugContext(ctx, "submission already awaiting acknowledgement",
			logger.SubmissionID(e.pending.Report.ID))
		return *e.pending
	}

	first, errs := e.validateAll()
	if first != "" {
		in := e.index[first].binding.Input
		e.queue(in.ScrollIntoView, in.Focus)

		e.log.InfoContext(ctx, "form has validation errors",
			logger.Event("validation_failed"),
			logger.Field(first.String()),
			logger.Fields(errs.Fields()...),
			logger.Duration(time.Since(began)),
		)
		return Outcome{Status: StatusValidationFailure, FirstInvalid: first, Errors: errs}
	}

	values := make(map[FieldName]Value, len(e.fields))
	for _, f := range e.fields {
		if f.bound() {
			values[f.desc.Name] = e.read(f)
		}
	}
	report := newReport(e.newID(), e.now().In(e.loc), e.loc, values)

	if _, err := e.phase.Fire(eventSucceeded); err != nil {
		e.log.ErrorContext(ctx, "unexpected form phase", logger.Error(err))
	}
	e.pending = &Outcome{Status: StatusSuccess, Report: report}

	e.log.InfoContext(ctx, "form validated",
		logger.Event("submitted"),
		logger.SubmissionID(report.ID),
		logger.Duration(time.Since(began)),
	)
	e.log.DebugContext(ctx, "report snapshot", slog.Any("report", report))
	return *e.pending
}

// Acknowledge closes the success confirmation and resets the form.
func (e *Engine) Acknowledge() error {
	e.mu.Lock()
	defer e.unlock()

	if _, err := e.phase.Fire(eventAcknowledged); err != nil {
		if statemachine.IsNoTransitionAvailableError(err) {
			return ErrNothingToAcknowledge
		}
		return err
	}
	e.pending = nil
	e.reset()
	return nil
}

// Reset clears every value and every error display.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.unlock()

	e.phase.Reset()
	e.pending = nil
	e.reset()
}

func (e *Engine) reset() {
	for _, f := range e.fields {
		if !f.bound() {
			continue
		}
		e.queue(func() { f.binding.Input.SetValue("") })
		f.message = ""
		_, _ = f.state.Fire(eventReset)
		e.clear(f)
	}
	e.log.Debug("form reset", logger.Event("reset"))
}

func (e *Engine) lookup(name FieldName) (*field, bool) {
	f, ok := e.index[name]
	if !ok {
		e.log.Warn("unknown field", logger.Field(name.String()))
		return nil, false
	}
	if !f.bound() {
		e.log.Debug("field has no input, skipped", logger.Field(name.String()))
		return nil, false
	}
	return f, true
}

func (e *Engine) read(f *field) Value {
	return f.desc.normalize(f.binding.Input.Value())
}

// validateAll returns the first invalid field, empty when all pass, and
// every failure as ValidationErrors.
func (e *Engine) validateAll() (FieldName, validator.ValidationErrors) {
	var (
		first FieldName
		rules []validator.Rule
	)
	for _, f := range e.fields {
		if !f.bound() {
			continue
		}
		res := e.validate(f)
		if !res.IsValid() && first == "" {
			first = f.desc.Name
		}
		rules = append(rules, res.Rule(f.desc.Name.String()))
	}
	return first, validator.ExtractValidationErrors(validator.Apply(rules...))
}

// validate runs the field validator and pushes display updates only when
// the state or the message changed.
func (e *Engine) validate(f *field) validator.Result {
	res := f.desc.Validate(e.read(f))

	event := eventPassed
	if !res.IsValid() {
		event = eventFailed
	}
	prev := f.state.Current()
	next, err := f.state.Fire(event)
	if err != nil {
		e.log.Error("field state transition failed", logger.Field(f.desc.Name.String()), logger.Error(err))
		return res
	}

	if next == prev && res.Message() == f.message {
		return res
	}
	f.message = res.Message()

	if res.IsValid() {
		e.clear(f)
	} else {
		e.show(f, f.message)
	}
	return res
}

func (e *Engine) show(f *field, msg string) {
	in, display := f.binding.Input, f.binding.Error
	e.queue(func() {
		if display != nil {
			display.SetMessage(msg)
			display.Show()
		}
		in.SetErrored(true)
	})
}

func (e *Engine) clear(f *field) {
	in, display := f.binding.Input, f.binding.Error
	e.queue(func() {
		if display != nil {
			display.SetMessage("")
			display.Hide()
		}
		in.SetErrored(false)
	})
}

// queue adds host writes. Must be called with mu held.
func (e *Engine) queue(fns ...func()) {
	e.effects = append(e.effects, fns...)
}

// unlock releases mu and then runs the queued host writes in order, so host
// callbacks may call back into the engine.
func (e *Engine) unlock() {
	effects := e.effects
	e.effects = nil
	e.mu.Unlock()
	for _, fn := range effects {
		fn()
	}
}
