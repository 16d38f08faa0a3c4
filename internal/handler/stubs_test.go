package handler

import "context"

type stubReady bool

func (s stubReady) Ready() bool { return bool(s) }

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }
