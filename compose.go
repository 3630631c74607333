// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

// AddSubHook registers another Hook as a single pre- or post-hook entry,
// invoking only that hook's own implementation (not its own pre/post
// lists) and discarding its result. A free function, since it introduces
// R2 and Y — type parameters that do not otherwise appear on HookList[Arg].
func AddSubHook[Arg, R2, Y any](l *HookList[Arg], h *Hook[Arg, R2, Y]) uint64 {
	return l.Add(func(arg Arg) Body[Unit] {
		return Discard(h.impl(arg))
	})
}

// NewMemberHook constructs a Hook bound to self's implementation method.
// This is the Go analogue of the host language's hook-declaration macro: Go
// has neither macros nor copy constructors, so binding a hook's
// implementation to its owning struct, and rebinding it when that struct is
// copied, must be done explicitly — see [RebindHook].
func NewMemberHook[Parent, In, R, Y any](self *Parent, impl func(*Parent, In) Body[R]) *Hook[In, R, Y] {
	return &Hook[In, R, Y]{
		impl: func(args In) Body[R] { return impl(self, args) },
	}
}

// RebindHook produces the copy of h that belongs on newSelf: a fresh
// implementation closure bound to newSelf, plus deep copies of both hook
// lists. The parent's own Clone method must call this once per hook field
// after copying its struct value, because a plain Go struct copy only
// copies the PreHooks/PostHooks slice headers — without RebindHook, the
// copy's hook list would alias (and corrupt) the original's.
func RebindHook[Parent, In, R, Y any](h *Hook[In, R, Y], newSelf *Parent, impl func(*Parent, In) Body[R]) *Hook[In, R, Y] {
	return &Hook[In, R, Y]{
		impl:      func(args In) Body[R] { return impl(newSelf, args) },
		PreHooks:  h.PreHooks.clone(),
		PostHooks: h.PostHooks.clone(),
	}
}
