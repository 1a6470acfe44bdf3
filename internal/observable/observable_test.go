package observable

import "testing"

func TestSubscribe_SeedsCurrentValue(t *testing.T) {
	v := New(42)

	var got []int
	cancel := v.Subscribe(func(val int) { got = append(got, val) })
	defer cancel()

	if len(got) != 1 || got[0] != 42 {
		t.Fatalf("expected immediate emit of 42, got %v", got)
	}
}

func TestSet_DispatchesBeforeReturning(t *testing.T) {
	v := New(0)

	var got []int
	cancel := v.Subscribe(func(val int) { got = append(got, val) })
	defer cancel()

	v.Set(1)
	v.Set(2)

	if len(got) != 3 || got[1] != 1 || got[2] != 2 {
		t.Fatalf("expected synchronous emits [0 1 2], got %v", got)
	}
	if v.Get() != 2 {
		t.Fatalf("expected current value 2, got %d", v.Get())
	}
}

func TestCancel_StopsNotifications(t *testing.T) {
	v := New(0)

	calls := 0
	cancel := v.Subscribe(func(int) { calls++ })
	cancel()
	v.Set(1)

	if calls != 1 {
		t.Fatalf("expected only the seed call after cancel, got %d calls", calls)
	}
}

func TestSet_NotifiesAllSubscribers(t *testing.T) {
	v := New("a")

	var first, second string
	c1 := v.Subscribe(func(s string) { first = s })
	c2 := v.Subscribe(func(s string) { second = s })
	defer c1()
	defer c2()

	v.Set("b")

	if first != "b" || second != "b" {
		t.Fatalf("expected both subscribers to see %q, got %q and %q", "b", first, second)
	}
}
