// Copyright (c) 2024 The zcash-address-wasm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build js && wasm

// Command traceaddr-wasm exposes the traceable address operations to
// JavaScript.  Each operation is installed as a function on the global
// object; absent optional values are returned as null and failures are
// thrown as Error instances.
package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"syscall/js"

	"github.com/btcsuite/btclog"
	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/nuttycom/zcash-address-wasm/build"
	"github.com/nuttycom/zcash-address-wasm/traceable"
	"github.com/nuttycom/zcash-address-wasm/zcashaddr"
)

// maxSafeInteger is the largest integer a JavaScript number holds exactly.
const maxSafeInteger = 1<<53 - 1

var (
	backendLog = btclog.NewBackend(os.Stderr)
	log        = build.NewSubLogger("WASM", backendLog.Logger)
)

func init() {
	log.SetLevel(build.DefaultLevel())
	traceable.UseLogger(build.NewSubLogger("TRCE", backendLog.Logger))
	zcashaddr.UseLogger(build.NewSubLogger("ZADR", backendLog.Logger))
}

// throwing wraps a Go callback so that an Error it returns is thrown on the
// JavaScript side instead.
var throwing = js.Global().Get("Function").New("f", `
	return function() {
		const r = f.apply(this, arguments);
		if (r instanceof Error) {
			throw r;
		}
		return r;
	};`)

func jsError(err error) js.Value {
	return js.Global().Get("Error").New(err.Error())
}

// jsTypeOf returns the typeof string of a value.  js.Value.Type panics on
// BigInt values, so arguments are classified with it instead.
var jsTypeOf = js.Global().Get("Function").New("v", "return typeof v;")

// stringArg returns the string argument at index i.
func stringArg(args []js.Value, i int) (string, error) {
	if len(args) <= i || jsTypeOf.Invoke(args[i]).String() != "string" {
		return "", fmt.Errorf("argument %d must be a string", i)
	}
	return args[i].String(), nil
}

// uint64Arg returns the unsigned integer argument at index i.  Numbers must
// be exact integers; larger values may be passed as a BigInt or a decimal
// string.
func uint64Arg(args []js.Value, i int) (uint64, error) {
	if len(args) <= i {
		return 0, fmt.Errorf("argument %d is missing", i)
	}
	v := args[i]
	switch jsTypeOf.Invoke(v).String() {
	case "number":
		f := v.Float()
		if f < 0 || f > maxSafeInteger || f != math.Trunc(f) {
			return 0, fmt.Errorf("argument %d must be a non-negative "+
				"safe integer", i)
		}
		return uint64(f), nil

	case "bigint", "string":
		n, err := strconv.ParseUint(v.Call("toString").String(), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("argument %d must be an unsigned "+
				"64-bit integer", i)
		}
		return n, nil

	default:
		return 0, fmt.Errorf("argument %d must be an integer", i)
	}
}

// uint64Value converts n to a number when it is exactly representable and
// to a BigInt otherwise.
func uint64Value(n uint64) js.Value {
	if n <= maxSafeInteger {
		return js.ValueOf(float64(n))
	}
	return js.Global().Get("BigInt").Invoke(strconv.FormatUint(n, 10))
}

// optionValue converts o to a JavaScript value, using null when absent.
func optionValue[T any](o fn.Option[T], convert func(T) js.Value) js.Value {
	v := js.Null()
	o.WhenSome(func(t T) {
		v = convert(t)
	})
	return v
}

func toTraceableAddress(_ js.Value, args []js.Value) any {
	address, err := stringArg(args, 0)
	if err != nil {
		return jsError(err)
	}
	expiryTime, err := uint64Arg(args, 1)
	if err != nil {
		return jsError(err)
	}
	s, err := traceable.ToTraceableAddress(address, expiryTime)
	if err != nil {
		return jsError(err)
	}
	return s
}

func addrExpiryHeight(_ js.Value, args []js.Value) any {
	address, err := stringArg(args, 0)
	if err != nil {
		return jsError(err)
	}
	height, err := traceable.AddrExpiryHeight(address)
	if err != nil {
		return jsError(err)
	}
	return optionValue(height, func(h uint32) js.Value {
		return js.ValueOf(h)
	})
}

func addrExpiryTime(_ js.Value, args []js.Value) any {
	address, err := stringArg(args, 0)
	if err != nil {
		return jsError(err)
	}
	expiryTime, err := traceable.AddrExpiryTime(address)
	if err != nil {
		return jsError(err)
	}
	return optionValue(expiryTime, uint64Value)
}

func traceableToP2PKH(_ js.Value, args []js.Value) any {
	address, err := stringArg(args, 0)
	if err != nil {
		return jsError(err)
	}
	s, err := traceable.TraceableToP2PKH(address)
	if err != nil {
		return jsError(err)
	}
	return s
}

// exports maps the global function names to their implementations.
var exports = map[string]func(js.Value, []js.Value) any{
	"toTraceableAddress": toTraceableAddress,
	"addrExpiryHeight":   addrExpiryHeight,
	"addrExpiryTime":     addrExpiryTime,
	"traceableToP2pkh":   traceableToP2PKH,
}

// register installs every export on the global object.
func register() {
	for name, f := range exports {
		js.Global().Set(name, throwing.Invoke(js.FuncOf(f)))
	}
	log.Infof("Registered %d traceable address functions", len(exports))
}

func main() {
	register()

	// The exported functions stay callable only while the program runs.
	select {}
}
