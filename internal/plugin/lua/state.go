package lua

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keypress/internal/input/key"
	"github.com/dshills/keypress/internal/input/keymap"
)

// DefaultExecutionTimeout bounds a single DoString, DoFile or Call.
const DefaultExecutionTimeout = 5 * time.Second

// State wraps gopher-lua with the keys module installed.
//
// gopher-lua's LState is not goroutine-safe. The mutex serializes calls
// made through State; code that reaches L directly must synchronize itself.
type State struct {
	L *lua.LState

	mu sync.Mutex

	host             key.Host
	keymap           func() *keymap.Table
	executionTimeout time.Duration

	closed bool
}

// StateOption configures a State.
type StateOption func(*State)

// WithHost sets the host used when rendering labels.
func WithHost(h key.Host) StateOption {
	return func(s *State) {
		s.host = h
	}
}

// WithKeymap sets the table consulted by keys.command. The function is
// called on every lookup, so a keymap.Watcher's Current method can be
// passed to follow reloads.
func WithKeymap(current func() *keymap.Table) StateOption {
	return func(s *State) {
		s.keymap = current
	}
}

// WithExecutionTimeout sets the execution timeout for Lua calls.
// A zero or negative duration disables the timeout.
func WithExecutionTimeout(d time.Duration) StateOption {
	return func(s *State) {
		s.executionTimeout = d
	}
}

// NewState creates a new Lua state with the keys module registered.
func NewState(opts ...StateOption) (*State, error) {
	state := &State{
		host:             key.CurrentHost(),
		executionTimeout: DefaultExecutionTimeout,
	}
	for _, opt := range opts {
		opt(state)
	}

	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})
	state.L = L

	openSafeLibraries(L)
	(&keysModule{host: state.host, keymap: state.keymap}).Register(L)

	return state, nil
}

// openSafeLibraries opens only safe Lua standard libraries.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// Base functions that reach the file system or compile arbitrary chunks.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "module", "require"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// DoFile executes a Lua file.
func (s *State) DoFile(path string) error {
	return s.do(func() error {
		return s.L.DoFile(path)
	})
}

// DoString executes a Lua string.
func (s *State) DoString(code string) error {
	return s.do(func() error {
		return s.L.DoString(code)
	})
}

// Call calls a global Lua function with the given arguments.
// Returns an empty slice (not nil) if the function returns no values.
func (s *State) Call(fn string, args ...lua.LValue) ([]lua.LValue, error) {
	var results []lua.LValue
	err := s.do(func() error {
		fnVal := s.L.GetGlobal(fn)
		if fnVal.Type() != lua.LTFunction {
			if fnVal == lua.LNil {
				return fmt.Errorf("function %q not found", fn)
			}
			return fmt.Errorf("%q is not a function (got %s)", fn, fnVal.Type())
		}

		stackTop := s.L.GetTop()
		s.L.Push(fnVal)
		for _, arg := range args {
			s.L.Push(arg)
		}
		if err := s.L.PCall(len(args), lua.MultRet, nil); err != nil {
			return err
		}

		nRet := s.L.GetTop() - stackTop
		results = make([]lua.LValue, 0, max(nRet, 0))
		for i := 0; i < nRet; i++ {
			results = append(results, s.L.Get(stackTop+i+1))
		}
		if nRet > 0 {
			s.L.Pop(nRet)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// do runs fn under the lock with the execution timeout and panic recovery.
func (s *State) do(fn func() error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}

	ctx := context.Background()
	if s.executionTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.executionTimeout)
		defer cancel()
	}
	s.L.SetContext(ctx)
	defer s.L.RemoveContext()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
		if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %v", ErrExecutionTimeout, err)
		}
	}()
	return fn()
}

// GetGlobal returns a global variable value.
func (s *State) GetGlobal(name string) lua.LValue {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return lua.LNil
	}
	return s.L.GetGlobal(name)
}

// Host returns the host used for labels.
func (s *State) Host() key.Host {
	return s.host
}

// Close releases all resources associated with the Lua state.
// After Close is called, all other methods will return ErrStateClosed.
func (s *State) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.L.Close()
	s.closed = true
	return nil
}
