package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/platformer/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
		wantAlive    int
	}{
		{"single", 1, 0, 0},
		{"three_destroy_middle", 3, 1, 2},
		{"none_destroyed", 2, -1, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("second DestroyEntity should return false")
				}
			}
			if got := len(Entities(w)); got != c.wantAlive {
				t.Fatalf("expected %d live entities, got %d", c.wantAlive, got)
			}
		})
	}
}

func TestRecycledIDGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	first := CreateEntity(w)
	DestroyEntity(w, first)
	second := CreateEntity(w)

	if first.id() != second.id() {
		t.Fatalf("expected id reuse, got %d and %d", first.id(), second.id())
	}
	if first.generation() == second.generation() {
		t.Fatalf("expected generation bump on reuse")
	}
	if IsAlive(w, first) {
		t.Fatalf("stale handle must not be alive")
	}
	if !IsAlive(w, second) {
		t.Fatalf("new handle must be alive")
	}
}

func TestComponents(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]()
	strs := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, ints.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, ints.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
				if Has(w, e2, ints.Kind()) {
					t.Fatalf("e2 should not have the int component")
				}
			},
			teardown: func() bool { return Remove(w, e1, ints.Kind()) },
		},
		{
			name: "add_str_to_both",
			setup: func() error {
				if err := Add(w, e1, strs.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, strs.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if Count(w, strs.Kind()) != 2 {
					t.Fatalf("expected two string components, got %d", Count(w, strs.Kind()))
				}
			},
			teardown: func() bool { return Remove(w, e1, strs.Kind()) },
		},
		{
			name:  "replace_existing",
			setup: func() error { return Add(w, e2, strs.Kind(), stringPtr("c")) },
			check: func(t *testing.T) {
				v, _ := Get(w, e2, strs.Kind())
				if v == nil || *v != "c" {
					t.Fatalf("expected replaced value c, got %v", v)
				}
			},
			teardown: func() bool { return Remove(w, e2, strs.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()
	e := CreateEntity(w)

	if err := Add[int](w, e, kind, nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	DestroyEntity(w, e)
	if err := Add(w, e, kind, intPtr(1)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
	if err := Add(w, CreateEntity(w), component.ComponentKind[int]{}, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
}

func TestDestroyRemovesComponents(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()
	e := CreateEntity(w)
	if err := Add(w, e, kind, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, e)
	if Count(w, kind) != 0 {
		t.Fatalf("expected component storage to be empty after destroy")
	}
}

func TestForEachOrderAndMutation(t *testing.T) {
	t.Run("insertion_order_after_remove", func(t *testing.T) {
		w := NewWorld()
		kind := component.NewComponentKind[int]()
		var ents []Entity
		for i := 0; i < 4; i++ {
			e := CreateEntity(w)
			ents = append(ents, e)
			if err := Add(w, e, kind, intPtr(i)); err != nil {
				t.Fatal(err)
			}
		}
		Remove(w, ents[1], kind)

		var got []int
		ForEach(w, kind, func(_ Entity, v *int) { got = append(got, *v) })
		want := []int{0, 2, 3}
		if len(got) != len(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected %v, got %v", want, got)
			}
		}
	})

	t.Run("destroy_during_iteration", func(t *testing.T) {
		w := NewWorld()
		kind := component.NewComponentKind[int]()
		a := CreateEntity(w)
		b := CreateEntity(w)
		_ = Add(w, a, kind, intPtr(1))
		_ = Add(w, b, kind, intPtr(2))

		visited := 0
		ForEach(w, kind, func(e Entity, _ *int) {
			visited++
			if e == a {
				DestroyEntity(w, b)
			}
		})
		if visited != 1 {
			t.Fatalf("expected destroyed entity to be skipped, visited %d", visited)
		}
	})
}

func TestForEachIntersections(t *testing.T) {
	w := NewWorld()
	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[int]()
	kc := component.NewComponentKind[int]()
	kd := component.NewComponentKind[int]()

	_ = Add(w, e1, ka, intPtr(1))
	_ = Add(w, e2, ka, intPtr(2))
	_ = Add(w, e2, kb, intPtr(3))
	_ = Add(w, e2, kc, intPtr(4))
	_ = Add(w, e2, kd, intPtr(5))
	_ = Add(w, e3, kb, intPtr(6))
	_ = Add(w, e3, kc, intPtr(7))

	tests := []struct {
		name string
		run  func() []Entity
		want int
	}{
		{"two", func() []Entity {
			var res []Entity
			ForEach2(w, kb, kc, func(e Entity, _ *int, _ *int) { res = append(res, e) })
			return res
		}, 2},
		{"three", func() []Entity {
			var res []Entity
			ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
			return res
		}, 1},
		{"four", func() []Entity {
			var res []Entity
			ForEach4(w, ka, kb, kc, kd, func(e Entity, _ *int, _ *int, _ *int, _ *int) { res = append(res, e) })
			return res
		}, 1},
		{"missing_store", func() []Entity {
			var res []Entity
			ForEach2(w, ka, component.NewComponentKind[int](), func(e Entity, _ *int, _ *int) { res = append(res, e) })
			return res
		}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := tc.run()
			if len(res) != tc.want {
				t.Fatalf("expected %d entities, got %v", tc.want, res)
			}
		})
	}
}

func TestFirst(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()
	if _, ok := First(w, kind); ok {
		t.Fatalf("expected no entity for empty store")
	}
	a := CreateEntity(w)
	b := CreateEntity(w)
	_ = Add(w, b, kind, intPtr(2))
	_ = Add(w, a, kind, intPtr(1))

	got, ok := First(w, kind)
	if !ok || got != b {
		t.Fatalf("expected first inserted entity %v, got %v", b, got)
	}
}

type recordingSystem struct {
	name string
	log  *[]string
}

func (r recordingSystem) Update(*World) { *r.log = append(*r.log, r.name) }

func TestSchedulerOrder(t *testing.T) {
	var log []string
	s := NewScheduler(recordingSystem{"a", &log}, nil, recordingSystem{"b", &log})
	s.Add(recordingSystem{"c", &log})
	s.Update(NewWorld())

	if len(log) != 3 || log[0] != "a" || log[1] != "b" || log[2] != "c" {
		t.Fatalf("unexpected order %v", log)
	}
	if len(s.Systems()) != 3 {
		t.Fatalf("expected nil system to be skipped")
	}
}

func TestEventQueueDrain(t *testing.T) {
	w := NewWorld()
	w.Events().Push(Event{Type: EventJump})
	w.Events().Push(Event{Type: EventCoinCollected, Data: CoinCollected{Score: 1}})

	evts := w.Events().Drain()
	if len(evts) != 2 || evts[0].Type != EventJump {
		t.Fatalf("unexpected events %v", evts)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("expected queue to be empty after drain")
	}
}
