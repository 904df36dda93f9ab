package wrapper

import "sync"

type Wrapper struct {
	wg sync.WaitGroup
}

func (w *Wrapper) Wrap(f func()) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		f()
	}()
}

func (w *Wrapper) Wait() {
	w.wg.Wait()
}
