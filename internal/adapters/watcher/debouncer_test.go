package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/logolink/internal/adapters/watcher"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls [][]string
		d := watcher.NewDebouncer(250*time.Millisecond, func(paths []string) {
			calls = append(calls, paths)
		})

		d.Add("/theme/style.css")
		time.Sleep(100 * time.Millisecond)
		d.Add("/theme/header.php")
		time.Sleep(100 * time.Millisecond)
		d.Add("/theme/style.css")

		time.Sleep(249 * time.Millisecond)
		synctest.Wait()
		assert.Empty(t, calls, "window restarts on every event")
		assert.Equal(t, 2, d.Pending())

		time.Sleep(2 * time.Millisecond)
		synctest.Wait()
		require.Len(t, calls, 1)
		assert.Equal(t, []string{"/theme/header.php", "/theme/style.css"}, calls[0])
		assert.Zero(t, d.Pending())
	})
}

func TestDebouncer_SeparateBursts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		count := 0
		d := watcher.NewDebouncer(50*time.Millisecond, func([]string) {
			mu.Lock()
			defer mu.Unlock()
			count++
		})

		d.Add("a")
		time.Sleep(time.Second)
		d.Add("b")
		time.Sleep(time.Second)
		synctest.Wait()

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, 2, count)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var got []string
		d := watcher.NewDebouncer(time.Hour, func(paths []string) {
			got = paths
		})

		d.Add("b.css")
		d.Add("a.css")
		d.Flush()

		assert.Equal(t, []string{"a.css", "b.css"}, got)

		got = nil
		time.Sleep(2 * time.Hour)
		synctest.Wait()
		assert.Nil(t, got, "flushed paths must not fire again")
	})
}

func TestDebouncer_FlushEmpty(t *testing.T) {
	called := false
	d := watcher.NewDebouncer(time.Millisecond, func([]string) { called = true })

	d.Flush()

	assert.False(t, called)
}

func TestDebouncer_Stop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		called := false
		d := watcher.NewDebouncer(10*time.Millisecond, func([]string) { called = true })

		d.Add("style.css")
		d.Stop()
		time.Sleep(time.Second)
		synctest.Wait()

		assert.False(t, called)
		assert.Zero(t, d.Pending())
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDebouncer(10*time.Millisecond, nil)
		d.Add("style.css")

		assert.NotPanics(t, func() {
			time.Sleep(20 * time.Millisecond)
			synctest.Wait()
		})
	})
}
