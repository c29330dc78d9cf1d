package hooks

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	ErrCallbackExists = errors.New("hooks: callback already registered")
	ErrCallbackNil    = errors.New("hooks: callback is nil")
	ErrInvalidName    = errors.New("hooks: invalid name")
)

// Callback receives the per-run argument for a hook.
type Callback[T any] func(T)

// Entry describes one registration without its callback.
type Entry struct {
	Hook     string
	Name     string
	Priority int
}

type registration[T any] struct {
	Entry
	seq uint64
	cb  Callback[T]
}

// Registry stores named callbacks per hook. Callbacks on a hook run by
// ascending priority, then by registration order.
type Registry[T any] struct {
	mu    sync.RWMutex
	seq   uint64
	hooks map[string][]registration[T]
}

func New[T any]() *Registry[T] {
	return &Registry[T]{hooks: make(map[string][]registration[T])}
}

// ValidateName checks hook and callback names.
func ValidateName(name string) error {
	if !isValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Add registers cb under name on hook at priority.
func (r *Registry[T]) Add(hook, name string, priority int, cb Callback[T]) error {
	hook = strings.TrimSpace(hook)
	name = strings.TrimSpace(name)
	if err := ValidateName(hook); err != nil {
		return err
	}
	if err := ValidateName(name); err != nil {
		return err
	}
	if cb == nil {
		return ErrCallbackNil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, reg := range r.hooks[hook] {
		if reg.Name == name && reg.Priority == priority {
			return fmt.Errorf("%w: hook=%q name=%q priority=%d", ErrCallbackExists, hook, name, priority)
		}
	}
	r.seq++
	r.hooks[hook] = append(r.hooks[hook], registration[T]{
		Entry: Entry{Hook: hook, Name: name, Priority: priority},
		seq:   r.seq,
		cb:    cb,
	})
	sortRegistrations(r.hooks[hook])
	return nil
}

// Remove drops the registration matching name and priority on hook.
func (r *Registry[T]) Remove(hook, name string, priority int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	regs := r.hooks[hook]
	for i, reg := range regs {
		if reg.Name == name && reg.Priority == priority {
			r.hooks[hook] = append(regs[:i:i], regs[i+1:]...)
			if len(r.hooks[hook]) == 0 {
				delete(r.hooks, hook)
			}
			return true
		}
	}
	return false
}

// Has returns the lowest priority name is registered at on hook.
func (r *Registry[T]) Has(hook, name string) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, reg := range r.hooks[hook] {
		if reg.Name == name {
			return reg.Priority, true
		}
	}
	return 0, false
}

// Entries lists hook registrations in run order.
func (r *Registry[T]) Entries(hook string) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	regs := r.hooks[hook]
	out := make([]Entry, 0, len(regs))
	for _, reg := range regs {
		out = append(out, reg.Entry)
	}
	return out
}

// Hooks lists hook names with at least one registration, sorted.
func (r *Registry[T]) Hooks() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.hooks))
	for hook := range r.hooks {
		out = append(out, hook)
	}
	sort.Strings(out)
	return out
}

// Run invokes every callback on hook with arg and returns how many ran.
// Callbacks are called without the lock held, so they may add or remove
// registrations; one removed before its turn is skipped.
func (r *Registry[T]) Run(hook string, arg T) int {
	r.mu.RLock()
	snapshot := append([]registration[T](nil), r.hooks[hook]...)
	r.mu.RUnlock()

	ran := 0
	for _, reg := range snapshot {
		if !r.registered(hook, reg.seq) {
			continue
		}
		reg.cb(arg)
		ran++
	}
	return ran
}

// Clone copies every registration into an independent registry.
func (r *Registry[T]) Clone() *Registry[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := &Registry[T]{seq: r.seq, hooks: make(map[string][]registration[T], len(r.hooks))}
	for hook, regs := range r.hooks {
		out.hooks[hook] = append([]registration[T](nil), regs...)
	}
	return out
}

func (r *Registry[T]) registered(hook string, seq uint64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, reg := range r.hooks[hook] {
		if reg.seq == seq {
			return true
		}
	}
	return false
}

func sortRegistrations[T any](regs []registration[T]) {
	sort.SliceStable(regs, func(i, j int) bool {
		if regs[i].Priority != regs[j].Priority {
			return regs[i].Priority < regs[j].Priority
		}
		return regs[i].seq < regs[j].seq
	})
}

func isValidName(id string) bool {
	if id == "" {
		return false
	}
	lastSep := false
	for i := 0; i < len(id); i++ {
		c := id[i]
		isLower := c >= 'a' && c <= 'z'
		isDigit := c >= '0' && c <= '9'
		isSep := c == '.' || c == '-' || c == '_'
		if !(isLower || isDigit || isSep) {
			return false
		}
		if i == 0 || i == len(id)-1 {
			if isSep {
				return false
			}
		}
		if isSep && lastSep {
			return false
		}
		lastSep = isSep
	}
	return true
}
