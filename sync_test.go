package roundrobin

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMutex(t *testing.T) {
	r := require.New(t)

	var mux Mutex
	var order []int
	critical := 0

	sched := New()
	for i := 1; i <= 3; i++ {
		sched.Add(NewFunc(context.Background(), func(ctx context.Context) error {
			task := MustTaskBaseFromContext(ctx)

			mux.Lock(task)
			defer mux.Unlock()

			order = append(order, i)
			critical++
			r.Equal(1, critical)
			defer func() { critical-- }()

			task.Suspend()
			task.Suspend()
			return nil
		}))
	}

	_, err := sched.Tick()
	r.NoError(err)
	r.Equal(2, mux.WaitCount())

	r.NoError(sched.Run())
	r.Equal([]int{1, 2, 3}, order)
	r.Equal(0, mux.WaitCount())
}

func TestMutexNoBarging(t *testing.T) {
	r := require.New(t)

	var mux Mutex
	var order []string

	sched := New()
	sched.Add(NewFunc(context.Background(), func(ctx context.Context) error {
		task := MustTaskBaseFromContext(ctx)
		mux.Lock(task)
		order = append(order, "first")
		task.Suspend()
		mux.Unlock()
		return nil
	}))
	sched.Add(NewFunc(context.Background(), func(ctx context.Context) error {
		task := MustTaskBaseFromContext(ctx)
		task.Suspend()
		// The mutex is free here but the waiter queued first.
		mux.Lock(task)
		order = append(order, "late")
		mux.Unlock()
		return nil
	}))
	sched.Add(NewFunc(context.Background(), func(ctx context.Context) error {
		task := MustTaskBaseFromContext(ctx)
		mux.Lock(task)
		order = append(order, "waiter")
		mux.Unlock()
		return nil
	}))

	r.NoError(sched.Run())
	r.Equal([]string{"first", "waiter", "late"}, order)
}

func TestMutexUnlockUnlocked(t *testing.T) {
	var mux Mutex
	require.Panics(t, func() { mux.Unlock() })
}

func TestWaitGroup(t *testing.T) {
	r := require.New(t)

	var wg WaitGroup
	expect, n := 10, 0

	sched := New()
	sched.Add(NewFunc(context.Background(), func(ctx context.Context) error {
		task := MustTaskBaseFromContext(ctx)
		wg.Wait(task)
		r.Equal(expect, n)
		n++
		return nil
	}))

	for i := 0; i < expect; i++ {
		wg.Add(1)
		sched.Add(NewFunc(context.Background(), func(ctx context.Context) error {
			defer wg.Done()
			for j := 0; j < i; j++ {
				Suspend(ctx)
			}
			n++
			return nil
		}))
	}

	_, err := sched.Tick()
	r.NoError(err)
	r.Equal(1, wg.WaitCount())

	r.NoError(sched.Run())
	r.Equal(expect+1, n)
	r.Equal(0, wg.WaitCount())
}

func TestWaitGroupNegative(t *testing.T) {
	var wg WaitGroup
	require.Panics(t, func() { wg.Done() })
}

func TestQueue(t *testing.T) {
	r := require.New(t)

	var q Queue[int]
	var consumed []int

	sched := New()
	sched.Add(NewFunc(context.Background(), func(ctx context.Context) error {
		for _, v := range []int{1, 2, 3} {
			q.Push(v)
			Suspend(ctx)
		}
		q.Close()
		return nil
	}))
	sched.Add(NewFunc(context.Background(), func(ctx context.Context) error {
		task := MustTaskBaseFromContext(ctx)
		for {
			v, ok := q.Pop(task)
			if !ok {
				return nil
			}
			consumed = append(consumed, v)
		}
	}))

	r.NoError(sched.Run())
	r.Equal([]int{1, 2, 3}, consumed)
	r.Equal(0, q.Len())
}

func TestQueueConsumers(t *testing.T) {
	r := require.New(t)

	var q Queue[int]
	var consumed []int

	sched := New()
	for i := 0; i < 3; i++ {
		sched.Add(NewFunc(context.Background(), func(ctx context.Context) error {
			task := MustTaskBaseFromContext(ctx)
			for {
				v, ok := q.Pop(task)
				if !ok {
					return nil
				}
				consumed = append(consumed, v)
				task.Suspend()
			}
		}))
	}
	sched.Add(NewFunc(context.Background(), func(ctx context.Context) error {
		for v := 1; v <= 9; v++ {
			q.Push(v)
			if v%2 == 0 {
				Suspend(ctx)
			}
		}
		q.Close()
		return nil
	}))

	r.NoError(sched.Run())
	slices.Sort(consumed)
	r.Equal([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, consumed)
}

func TestQueueTryPop(t *testing.T) {
	r := require.New(t)

	var q Queue[string]
	_, ok := q.TryPop()
	r.False(ok)

	q.Push("a")
	q.Push("b")
	r.Equal(2, q.Len())

	v, ok := q.TryPop()
	r.True(ok)
	r.Equal("a", v)

	q.Close()
	r.Panics(func() { q.Push("c") })

	v, ok = q.TryPop()
	r.True(ok)
	r.Equal("b", v)
}

func TestErrGroup(t *testing.T) {
	r := require.New(t)

	errBoom := errors.New("boom")
	n := 0

	sched := New()
	sched.Add(NewFunc(context.Background(), func(ctx context.Context) error {
		task := MustTaskBaseFromContext(ctx)

		group, gctx := NewErrGroup(ctx, sched)
		for i := 0; i < 5; i++ {
			group.Go(func(ctx context.Context) error {
				for j := 0; j < i; j++ {
					Suspend(ctx)
				}
				n++
				if i == 2 {
					return errBoom
				}
				return nil
			})
		}

		r.ErrorIs(group.Wait(task), errBoom)
		r.ErrorIs(group.Err(), errBoom)
		r.ErrorIs(context.Cause(gctx), errBoom)
		return nil
	}))

	r.NoError(sched.Run())
	r.Equal(5, n)
	r.Equal(6, sched.Len())
}

func TestErrGroupNoError(t *testing.T) {
	r := require.New(t)

	sched := New()
	group, gctx := NewErrGroup(context.Background(), sched)

	var out []string
	group.Go(func(ctx context.Context) error {
		out = append(out, "A1")
		Suspend(ctx)
		out = append(out, "A2")
		return nil
	})
	group.Go(func(ctx context.Context) error {
		out = append(out, "B1")
		return nil
	})

	r.NoError(sched.Run())
	r.NoError(group.Err())
	r.NoError(gctx.Err())
	r.Equal([]string{"A1", "B1", "A2"}, out)
}
