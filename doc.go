// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package promise provides a small, cooperative coroutine runtime and an
// observable-function ("hook") layer built on top of it.
//
// The core type [Body] represents a coroutine's computation in
// continuation-passing style: a function that accepts "the rest of the
// computation" and produces an erased [Step]. Driving a [Body] through a
// [Handle] yields the lazily-started, reference-counted, externally-driven
// coroutine frames this package is built around.
//
// # Coroutine Runtime
//
// A coroutine is constructed from a [Body] via [NewHandle] and does not run
// until [Handle.Start] is called. From then on, external code drives it one
// step at a time with [Handle.Resume]:
//
//   - [NewHandle]: construct a handle around a body, unstarted
//   - [Handle.Start]: begin execution
//   - [Handle.Resume]: advance one step
//   - [Handle.Done], [Handle.Started], [Handle.Yielded]: inspect state
//   - [Handle.YieldedValue], [Handle.ReturnedValue]: inspect produced values
//   - [Handle.Clone], [Handle.Close]: reference-counted ownership
//
// Bodies are composed with the minimal monad operations:
//
//   - [Return]: lift a pure value
//   - [Bind]: sequence, passing the result forward
//   - [Then]: sequence, discarding the first result
//   - [Map]: transform the result with a pure function
//   - [Yield]: emit an intermediate value without ending the body
//   - [AwaitFrame]: await another coroutine, propagating its yields verbatim
//   - [AwaitPoint]: await an external [SuspensionPoint]
//   - [AwaitAll]: await a homogeneous slice of sub-computations in parallel
//
// Nested awaiting re-targets suspension points to the outermost observable
// frame, so a single external [SuspensionPoint.Resume] call cascades
// wake-ups down through an arbitrarily deep delegation chain and propagates
// yields and completions back up within one synchronous call. See
// [AwaitFrame] for the exact procedure.
//
// # Observable-Function Layer
//
// [Hook] composes an implementation coroutine with two ordered,
// identifier-keyed lists of pre- and post-hook coroutines ([HookList]) into
// a single coroutine whose yield stream is the concatenation of the yields
// of all its parts. [NewMemberHook] and [RebindHook] are the Go analogue of
// the host language's hook-declaration macro: they bind a hook's
// implementation to a parent's member function and, on parent copy, rebind
// the hook to the new parent while deep-copying its hook lists.
//
// # Concurrency
//
// Scheduling is single-threaded and cooperative: all state transitions
// happen on the goroutine that calls Start/Resume on a handle or Resume on a
// suspension point. [HookList] and [SuspensionPoint] are deliberately not
// internally synchronized — callers must not share them across goroutines.
//
// # Errors
//
// Programmer errors (resuming a done frame, double-arming a suspension
// point, awaiting a frame that completed without a return value) panic with
// a "promise: ..." message. Recoverable outcomes (removing or setting an
// unknown hook-list identifier) return a trailing bool.
package promise
