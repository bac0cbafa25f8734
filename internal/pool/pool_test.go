package pool

import "testing"

type scratch struct {
	vals []int
}

func TestNew(t *testing.T) {
	p := New(func() *scratch { return &scratch{vals: make([]int, 0, 4)} })

	s := p.Get()
	if s == nil {
		t.Fatal("Get returned nil")
	}
	if len(s.vals) != 0 || cap(s.vals) != 4 {
		t.Errorf("factory output not used: len=%d cap=%d", len(s.vals), cap(s.vals))
	}
	p.Put(s)
}

func TestResetRunsOnEveryGet(t *testing.T) {
	p := NewWithReset(
		func() *scratch { return &scratch{} },
		func(s *scratch) { s.vals = s.vals[:0] },
	)

	// Whether or not the pool recycles, a Get must never hand out a
	// dirty object.
	for i := 0; i < 100; i++ {
		s := p.Get()
		if len(s.vals) != 0 {
			t.Fatalf("iteration %d: object handed out dirty: %v", i, s.vals)
		}
		s.vals = append(s.vals, i, i+1)
		p.Put(s)
	}
}

func TestGetWithoutReset(t *testing.T) {
	p := New(func() *scratch { return &scratch{} })

	s := p.Get()
	s.vals = append(s.vals, 1)
	p.Put(s)

	// Without a reset hook the pool only guarantees a usable object.
	if got := p.Get(); got == nil {
		t.Fatal("Get returned nil after a Put")
	}
}

func TestPutNil(t *testing.T) {
	p := NewWithReset(
		func() *scratch { return &scratch{} },
		func(s *scratch) { s.vals = s.vals[:0] },
	)

	p.Put(nil)
	if got := p.Get(); got == nil {
		t.Fatal("a discarded nil leaked back out of the pool")
	}
}
