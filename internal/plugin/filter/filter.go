// Package filter runs Lua scripts that decide which characters a text field
// accepts.
//
// A script defines
//
//	function accept(ch, text)
//	  return ch ~= " "
//	end
//
// where ch is the candidate character and text the current content. The
// script runs in a state with only the base, table, string and math
// libraries, and without dofile, loadfile, load or loadstring.
package filter

import (
	"context"
	"errors"
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/fieldkit/internal/logging"
)

// DefaultTimeout bounds a single accept call.
const DefaultTimeout = 50 * time.Millisecond

const acceptFunc = "accept"

// Filter is a loaded filter script. It implements controller.CharFilter.
//
// Filter is not safe for concurrent use; gopher-lua states belong to one
// goroutine.
type Filter struct {
	L       *lua.LState
	name    string
	timeout time.Duration
	log     *logging.Logger
	closed  bool
}

// Option configures a Filter.
type Option func(*Filter)

// WithTimeout bounds each accept call.
func WithTimeout(d time.Duration) Option {
	return func(f *Filter) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithLogger sets the logger used for script failures.
func WithLogger(l *logging.Logger) Option {
	return func(f *Filter) {
		if l != nil {
			f.log = l
		}
	}
}

// LoadFile loads the filter script at path.
func LoadFile(path string, opts ...Option) (*Filter, error) {
	f := newFilter(path, opts)
	if err := f.run(func() error { return f.L.DoFile(path) }); err != nil {
		f.Close()
		return nil, &ScriptError{Script: path, Err: err}
	}
	if err := f.checkAccept(); err != nil {
		return nil, err
	}
	return f, nil
}

// LoadString loads a filter from source; name identifies it in errors.
func LoadString(name, src string, opts ...Option) (*Filter, error) {
	f := newFilter(name, opts)
	if err := f.run(func() error { return f.L.DoString(src) }); err != nil {
		f.Close()
		return nil, &ScriptError{Script: name, Err: err}
	}
	if err := f.checkAccept(); err != nil {
		return nil, err
	}
	return f, nil
}

func newFilter(name string, opts []Option) *Filter {
	f := &Filter{
		L:       lua.NewState(lua.Options{SkipOpenLibs: true}),
		name:    name,
		timeout: DefaultTimeout,
		log:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	openSafeLibraries(f.L)
	return f
}

// openSafeLibraries opens the base, table, string and math libraries and
// removes the base functions that load code.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
}

func (f *Filter) checkAccept() error {
	if f.L.GetGlobal(acceptFunc).Type() != lua.LTFunction {
		f.Close()
		return &ScriptError{Script: f.name, Err: ErrNoAccept}
	}
	return nil
}

// Name returns the script path or name.
func (f *Filter) Name() string {
	return f.name
}

// Call runs accept(ch, text) and returns its result as a Lua boolean
// (nil and false reject, anything else accepts).
func (f *Filter) Call(r rune, text string) (bool, error) {
	if f.closed {
		return false, ErrClosed
	}

	var ok bool
	err := f.run(func() error {
		err := f.L.CallByParam(lua.P{
			Fn:      f.L.GetGlobal(acceptFunc),
			NRet:    1,
			Protect: true,
		}, lua.LString(string(r)), lua.LString(text))
		if err != nil {
			return err
		}
		ok = lua.LVAsBool(f.L.Get(-1))
		f.L.Pop(1)
		return nil
	})
	if err != nil {
		return false, &ScriptError{Script: f.name, Err: err}
	}
	return ok, nil
}

// Accept reports whether r may be inserted into text. Script failures
// reject the character and are logged.
func (f *Filter) Accept(r rune, text string) bool {
	ok, err := f.Call(r, text)
	if err != nil {
		f.log.Warn("%v", err)
		return false
	}
	return ok
}

// run executes fn under the call timeout with panic recovery.
func (f *Filter) run(fn func() error) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
	defer cancel()
	f.L.SetContext(ctx)
	defer f.L.RemoveContext()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
		if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %v", ErrTimeout, err)
		}
	}()
	return fn()
}

// Close releases the Lua state.
func (f *Filter) Close() {
	if f.closed {
		return
	}
	f.closed = true
	f.L.Close()
}
