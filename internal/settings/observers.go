package settings

// observers is an ordered subscriber list for one setting.
type observers[T any] struct {
	nextID int
	subs   []subscriber[T]
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// add registers fn and returns a func that removes it again. Calling the
// returned func more than once is harmless.
func (o *observers[T]) add(fn func(T)) func() {
	o.nextID++
	id := o.nextID
	o.subs = append(o.subs, subscriber[T]{id: id, fn: fn})
	return func() {
		for i, s := range o.subs {
			if s.id == id {
				o.subs = append(o.subs[:i:i], o.subs[i+1:]...)
				return
			}
		}
	}
}

// notify calls every subscriber in subscription order. Subscribers added
// or removed during notify take effect on the next call.
func (o *observers[T]) notify(v T) {
	subs := o.subs
	for _, s := range subs {
		s.fn(v)
	}
}

func (o *observers[T]) len() int { return len(o.subs) }
