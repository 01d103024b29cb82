package form

import (
	"sync"

	"github.com/dmitrymomot/relato/pkg/file"
)

// Input is the host control of one field. Value is read while the engine
// holds its lock and must not call back into the engine; the other methods
// run after the lock is released and may.
type Input interface {
	Value() Value
	// SetValue replaces the displayed text. An empty string also clears a
	// chosen file.
	SetValue(string)
	// SetErrored toggles the control's error styling.
	SetErrored(bool)
	Focus()
	ScrollIntoView()
}

// ErrorDisplay is the inline message area next to a field. Its methods run
// outside the engine lock.
type ErrorDisplay interface {
	SetMessage(string)
	Show()
	Hide()
}

// Binding couples a field to its host capabilities. Error is optional.
type Binding struct {
	Input Input
	Error ErrorDisplay
}

// Bindings maps registered fields to their host capabilities.
type Bindings map[FieldName]Binding

// MemoryInput is an Input kept in memory. It records focus, scroll and
// errored-mark calls so hosts without a real UI, and tests, can inspect
// what the engine asked for.
type MemoryInput struct {
	mu            sync.Mutex
	text          string
	file          *file.Attachment
	errored       bool
	erroredCalls  int
	focusCalls    int
	scrollCalls   int
	setValueCalls int
}

// NewMemoryInput returns an input holding text.
func NewMemoryInput(text string) *MemoryInput {
	return &MemoryInput{text: text}
}

// NewMemoryFileInput returns a file input holding a; nil means no file.
func NewMemoryFileInput(a *file.Attachment) *MemoryInput {
	return &MemoryInput{file: a}
}

func (m *MemoryInput) Value() Value {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Value{Text: m.text, File: m.file}
}

func (m *MemoryInput) SetValue(s string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = s
	if s == "" {
		m.file = nil
	}
	m.setValueCalls++
}

// SetFile replaces the chosen attachment.
func (m *MemoryInput) SetFile(a *file.Attachment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.file = a
}

func (m *MemoryInput) SetErrored(errored bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errored = errored
	m.erroredCalls++
}

func (m *MemoryInput) Focus() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.focusCalls++
}

func (m *MemoryInput) ScrollIntoView() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scrollCalls++
}

func (m *MemoryInput) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

func (m *MemoryInput) File() *file.Attachment {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.file
}

func (m *MemoryInput) Errored() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errored
}

// ErroredCalls counts SetErrored calls.
func (m *MemoryInput) ErroredCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.erroredCalls
}

func (m *MemoryInput) FocusCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.focusCalls
}

func (m *MemoryInput) ScrollCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scrollCalls
}

func (m *MemoryInput) SetValueCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.setValueCalls
}

// MemoryErrorDisplay is an ErrorDisplay kept in memory.
type MemoryErrorDisplay struct {
	mu        sync.Mutex
	message   string
	visible   bool
	showCalls int
	hideCalls int
}

func NewMemoryErrorDisplay() *MemoryErrorDisplay {
	return &MemoryErrorDisplay{}
}

func (d *MemoryErrorDisplay) SetMessage(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.message = msg
}

func (d *MemoryErrorDisplay) Show() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.visible = true
	d.showCalls++
}

func (d *MemoryErrorDisplay) Hide() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.visible = false
	d.hideCalls++
}

func (d *MemoryErrorDisplay) Message() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.message
}

func (d *MemoryErrorDisplay) Visible() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.visible
}

func (d *MemoryErrorDisplay) ShowCalls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.showCalls
}

func (d *MemoryErrorDisplay) HideCalls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.hideCalls
}

// MemoryForm holds one MemoryInput and MemoryErrorDisplay per registered
// field, ready to hand to New.
type MemoryForm struct {
	Inputs   map[FieldName]*MemoryInput
	Displays map[FieldName]*MemoryErrorDisplay
}

// NewMemoryForm creates empty in-memory controls for every registered field.
func NewMemoryForm() *MemoryForm {
	f := &MemoryForm{
		Inputs:   make(map[FieldName]*MemoryInput, len(registry)),
		Displays: make(map[FieldName]*MemoryErrorDisplay, len(registry)),
	}
	for _, spec := range registry {
		f.Inputs[spec.name] = &MemoryInput{}
		f.Displays[spec.name] = NewMemoryErrorDisplay()
	}
	return f
}

// Bindings returns the bindings of every field of f.
func (f *MemoryForm) Bindings() Bindings {
	b := make(Bindings, len(f.Inputs))
	for name, in := range f.Inputs {
		bind := Binding{Input: in}
		if d, ok := f.Displays[name]; ok {
			bind.Error = d
		}
		b[name] = bind
	}
	return b
}

// Set stores text in the input of name.
func (f *MemoryForm) Set(name FieldName, text string) {
	if in, ok := f.Inputs[name]; ok {
		in.SetValue(text)
	}
}
