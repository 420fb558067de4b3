package repokit

// Binder binds a repo to a Queryer, e.g. the pool or a transaction
type Binder[T any] interface {
	Bind(Queryer) T
}

// BindFunc is a Binder backed by a function
type BindFunc[T any] func(Queryer) T

// Bind calls f
func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }
