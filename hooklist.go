// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

// HookList is an ordered, identifier-keyed list of entries that run in
// sequence, each producing a [Body] of no meaningful result. Entries
// registered with identical arguments run in registration order.
//
// Each entry is modeled directly as the computation it performs
// (func(Arg) Body[Unit]) rather than as an independently-started child
// [Handle]: invoking an entry via [AwaitFrame] would just splice its yields
// and suspensions into the caller's own frame, which is exactly what
// sequencing entries with [Then] already does, without the extra
// frame/refcount allocation per invocation.
//
// Identifiers are monotonically increasing uint64s, never reused within a
// list's lifetime, so a removed entry's id can never collide with a later
// one. HookList is not internally synchronized — see doc.go.
type HookList[Arg any] struct {
	nextID  uint64
	entries []hookListEntry[Arg]
}

type hookListEntry[Arg any] struct {
	id uint64
	fn func(Arg) Body[Unit]
}

// Add appends fn to the list and returns its identifier.
func (l *HookList[Arg]) Add(fn func(Arg) Body[Unit]) uint64 {
	l.nextID++
	l.entries = append(l.entries, hookListEntry[Arg]{id: l.nextID, fn: fn})
	return l.nextID
}

// Remove deletes the entry registered under id, reporting whether it was
// found.
func (l *HookList[Arg]) Remove(id uint64) bool {
	for i, e := range l.entries {
		if e.id == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Set replaces the computation registered under id without changing its
// position, reporting whether id was found.
func (l *HookList[Arg]) Set(id uint64, fn func(Arg) Body[Unit]) bool {
	for i := range l.entries {
		if l.entries[i].id == id {
			l.entries[i].fn = fn
			return true
		}
	}
	return false
}

// clone deep-copies the entry slice so the copy does not alias the
// original's backing array. Required by [RebindHook]: a plain Go struct
// copy only copies the slice header, which would otherwise let edits to one
// parent's hook list corrupt another's.
func (l HookList[Arg]) clone() HookList[Arg] {
	cp := make([]hookListEntry[Arg], len(l.entries))
	copy(cp, l.entries)
	return HookList[Arg]{nextID: l.nextID, entries: cp}
}

// invoke runs every entry against arg in registration order.
func (l *HookList[Arg]) invoke(arg Arg) Body[Unit] {
	return sequenceHooks(l.entries, arg)
}

func sequenceHooks[Arg any](entries []hookListEntry[Arg], arg Arg) Body[Unit] {
	if len(entries) == 0 {
		return Return(Unit{})
	}
	return Then(entries[0].fn(arg), sequenceHooks(entries[1:], arg))
}

// AddNoArg registers a computation that ignores its argument. Useful for
// both a [Hook]'s pre-hook list (Arg = In) and its post-hook list
// (Arg = PostIn[R, In]) — since the bound function discards Arg entirely,
// no relationship between R and In needs to be named.
func AddNoArg[Arg any](l *HookList[Arg], fn func() Body[Unit]) uint64 {
	return l.Add(func(Arg) Body[Unit] { return fn() })
}

// AddArgHook registers a post-hook computation that only wants the
// original call arguments, not the result. A free function (rather than a
// HookList method) because it needs R and In as separate type parameters,
// which a method inheriting a single Arg = PostIn[R, In] parameter cannot
// introduce.
func AddArgHook[R, In any](l *HookList[PostIn[R, In]], fn func(In) Body[Unit]) uint64 {
	return l.Add(func(p PostIn[R, In]) Body[Unit] { return fn(p.Args) })
}

// AddResultHook registers a post-hook computation that only wants the
// implementation's result, not the original call arguments.
func AddResultHook[R, In any](l *HookList[PostIn[R, In]], fn func(R) Body[Unit]) uint64 {
	return l.Add(func(p PostIn[R, In]) Body[Unit] { return fn(p.Result) })
}
