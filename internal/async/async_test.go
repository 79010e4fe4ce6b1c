package async

import (
	"errors"
	"testing"
)

func TestGo(t *testing.T) {
	t.Run("resolves with the value", func(t *testing.T) {
		fut := Go(func() (int, error) { return 42, nil })
		v, err := Await(fut)
		if err != nil {
			t.Fatal(err)
		}
		if v != 42 {
			t.Errorf("got %d", v)
		}
	})

	t.Run("resolves with the error", func(t *testing.T) {
		boom := errors.New("boom")
		fut := Go(func() (string, error) { return "", boom })
		_, err := Await(fut)
		if !errors.Is(err, boom) {
			t.Errorf("err = %v", err)
		}
	})

	t.Run("many futures in flight resolve independently", func(t *testing.T) {
		const n = 20
		futures := make([]<-chan Result[int], n)
		for i := 0; i < n; i++ {
			i := i
			futures[i] = Go(func() (int, error) { return i * i, nil })
		}
		for i, fut := range futures {
			v, err := Await(fut)
			if err != nil {
				t.Fatal(err)
			}
			if v != i*i {
				t.Errorf("future %d = %d", i, v)
			}
		}
	})

	t.Run("discarding a future does not block its goroutine", func(t *testing.T) {
		done := make(chan struct{})
		_ = Go(func() (int, error) {
			defer close(done)
			return 1, nil
		})
		<-done // the send into the buffered channel cannot block
	})
}
