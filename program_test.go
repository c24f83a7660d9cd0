package axo

import (
	"sync"
	"testing"
)

func TestInvocationTableDispatchAndJoin(t *testing.T) {
	tbl := newInvocationTable()
	id := tbl.dispatch(func() (Value, error) { return IntVal(7), nil })
	v, err := tbl.join(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.AsInt() != 7 {
		t.Fatalf("got %d", v.AsInt())
	}
}

func TestInvocationTablePropagatesError(t *testing.T) {
	tbl := newInvocationTable()
	want := newRuntimeError(Pos{}, "boom")
	id := tbl.dispatch(func() (Value, error) { return Value{}, want })
	_, err := tbl.join(id)
	if err != want {
		t.Fatalf("got %v, want %v", err, want)
	}
}

func TestInvocationTableConcurrentDispatchesDoNotCollide(t *testing.T) {
	tbl := newInvocationTable()
	const n = 20
	ids := make([]int64, n)
	for i := 0; i < n; i++ {
		i := i
		ids[i] = tbl.dispatch(func() (Value, error) { return IntVal(int64(i)), nil })
	}
	var wg sync.WaitGroup
	results := make([]int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := tbl.join(ids[i])
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			results[i] = v.AsInt()
		}(i)
	}
	wg.Wait()
	for i, got := range results {
		if got != int64(i) {
			t.Fatalf("result %d got %d, want %d — invocations collided", i, got, i)
		}
	}
}

func TestAwaitDeepCopiesArrayArguments(t *testing.T) {
	ip := NewInterpreter()
	var buf bufWriter
	ip.Stdout = &buf
	_, err := ip.Run(`
		var observed = 0;
		program mutateFirst(a: [int]) { a[0] = 99; observed = a[0]; }
		var a = [1, 2, 3];
		await mutateFirst(a);
		print(observed);
		print(a[0]);
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "99\n1\n" {
		t.Fatalf("got %q — the worker's mutation of its deep-copied argument must not be visible to the caller's original array", buf.String())
	}
}

func TestAwaitOfProgramYieldsNoValue(t *testing.T) {
	ip := NewInterpreter()
	var buf bufWriter
	ip.Stdout = &buf
	_, err := ip.Run(`
		program compute() { return 42; }
		var r = await compute();
		print(r);
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "\n" {
		t.Fatalf("got %q — awaiting a program must yield no value (empty string)", buf.String())
	}
}
