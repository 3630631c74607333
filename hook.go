// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

// PostIn bundles an implementation's result together with its original
// call arguments, the single argument type a Hook's post-hook list is
// invoked with. Go has no variadic generics, so a function's whole
// argument list is bundled as one struct type parameter In rather than
// spread across Args...; PostIn composes the same way.
type PostIn[R, In any] struct {
	Result R
	Args   In
}

// Hook composes an implementation coroutine with two ordered hook lists —
// PreHooks, run before the implementation, and PostHooks, run after it with
// access to both the result and the original arguments — into a single
// coroutine whose yield stream is the concatenation of all three parts' in
// registration order.
//
// The zero value is a Hook with no pre- or post-hooks; it must still be
// constructed with an implementation via [NewMemberHook] or [RebindHook]
// before use.
type Hook[In, R, Y any] struct {
	impl      func(In) Body[R]
	PreHooks  HookList[In]
	PostHooks HookList[PostIn[R, In]]
}

// body builds the full pre/impl/post computation for one call.
func (h *Hook[In, R, Y]) body(args In) Body[R] {
	return Then(
		h.PreHooks.invoke(args),
		Bind(h.impl(args), func(result R) Body[R] {
			return Then(
				h.PostHooks.invoke(PostIn[R, In]{Result: result, Args: args}),
				Return(result),
			)
		}),
	)
}

// Invoke constructs an unstarted [Handle] for one call with args. The
// caller is responsible for starting and driving it, exactly like any
// other coroutine.
func (h *Hook[In, R, Y]) Invoke(args In) Handle[R, Y] {
	return NewHandle[R, Y](h.body(args))
}
