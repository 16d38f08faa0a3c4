package storage

import "context"

//go:generate mockery --name=Adapter --output=storagetest --outpkg=storagetest --structname=MockAdapter --filename=mock_adapter.go

// Adapter is a string-keyed, string-valued persistence backend.
// A missing key is not an error: Get reports found=false and GetMany leaves
// the key out of the result.
type Adapter interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	GetMany(ctx context.Context, keys []string) (map[string]string, error)
	SetMany(ctx context.Context, values map[string]string) error
	Remove(ctx context.Context, key string) error
}

// Pinger is implemented by adapters backed by a remote service
type Pinger interface {
	Ping(ctx context.Context) error
}

// Ping checks the adapter when it supports it
func Ping(ctx context.Context, a Adapter) error {
	if p, ok := a.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

// Lister is implemented by adapters that can enumerate keys
type Lister interface {
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// Checker adapts any Adapter to Pinger
func Checker(a Adapter) Pinger {
	return checker{a}
}

type checker struct {
	a Adapter
}

func (c checker) Ping(ctx context.Context) error {
	return Ping(ctx, c.a)
}
