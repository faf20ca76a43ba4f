package annotation

import (
	"sort"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	usecaseErrors "github.com/johnquangdev/contact-qa/internal/usecase/errors"
)

// Auto-dismissing review surfaces
const (
	DialogTagEntry = "tag-entry"
	DialogLegend   = "legend"
)

// DialogTimeouts maps each dialog to its inactivity timeout
type DialogTimeouts map[string]time.Duration

// DefaultDialogTimeouts are the dashboard's dismiss delays
func DefaultDialogTimeouts() DialogTimeouts {
	return DialogTimeouts{
		DialogTagEntry: 5 * time.Second,
		DialogLegend:   7 * time.Second,
	}
}

// Dialogs tracks open dialogs and dismisses each after its inactivity
// timeout. Every open dialog owns one timer; closing the dialog or stopping
// Dialogs cancels it, and a timer that lost the race against a reset is
// ignored when it fires.
type Dialogs struct {
	mu       sync.Mutex
	clock    clock.Clock
	timeouts DialogTimeouts
	open     map[string]*dialogTimer
	seq      uint64
	stopped  bool

	onDismiss func(name string)
}

type dialogTimer struct {
	timer *clock.Timer
	gen   uint64
}

// NewDialogs creates dialog timers. onDismiss, when set, runs after a dialog
// was dismissed by its timer.
func NewDialogs(clk clock.Clock, timeouts DialogTimeouts, onDismiss func(name string)) *Dialogs {
	if clk == nil {
		clk = clock.New()
	}
	if timeouts == nil {
		timeouts = DefaultDialogTimeouts()
	}
	return &Dialogs{
		clock:     clk,
		timeouts:  timeouts,
		open:      make(map[string]*dialogTimer),
		onDismiss: onDismiss,
	}
}

// Open shows a dialog and (re)starts its timer
func (d *Dialogs) Open(name string) error {
	timeout, ok := d.timeouts[name]
	if !ok {
		return usecaseErrors.ErrUnknownDialog
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return nil
	}
	d.schedule(name, timeout)
	return nil
}

// Touch resets the timer of an open dialog. Closed dialogs stay closed.
func (d *Dialogs) Touch(name string) error {
	timeout, ok := d.timeouts[name]
	if !ok {
		return usecaseErrors.ErrUnknownDialog
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, open := d.open[name]; !open || d.stopped {
		return nil
	}
	d.schedule(name, timeout)
	return nil
}

// Close hides a dialog and cancels its timer
func (d *Dialogs) Close(name string) error {
	if _, ok := d.timeouts[name]; !ok {
		return usecaseErrors.ErrUnknownDialog
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancel(name)
	return nil
}

// IsOpen reports whether a dialog is showing
func (d *Dialogs) IsOpen(name string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, ok := d.open[name]
	return ok
}

// OpenDialogs lists the open dialogs by name
func (d *Dialogs) OpenDialogs() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	names := make([]string, 0, len(d.open))
	for name := range d.open {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stop cancels every timer. Later calls to Open and Touch do nothing.
func (d *Dialogs) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for name := range d.open {
		d.cancel(name)
	}
	d.stopped = true
}

func (d *Dialogs) schedule(name string, timeout time.Duration) {
	if prev, ok := d.open[name]; ok {
		prev.timer.Stop()
	}
	d.seq++
	gen := d.seq

	dt := &dialogTimer{gen: gen}
	dt.timer = d.clock.AfterFunc(timeout, func() { d.expire(name, gen) })
	d.open[name] = dt
}

func (d *Dialogs) cancel(name string) {
	if dt, ok := d.open[name]; ok {
		dt.timer.Stop()
		delete(d.open, name)
	}
}

func (d *Dialogs) expire(name string, gen uint64) {
	d.mu.Lock()
	dt, ok := d.open[name]
	if !ok || dt.gen != gen || d.stopped {
		d.mu.Unlock()
		return
	}
	delete(d.open, name)
	d.mu.Unlock()

	if d.onDismiss != nil {
		d.onDismiss(name)
	}
}
