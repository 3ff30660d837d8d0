package main

import (
	"sync"

	"github.com/gosuri/uiprogress"
)

// progress starts a bar on the error stream and returns the callback that
// advances it, and the func that stops it. The total is taken from the first
// callback.
func (e *env) progress(label string) (func(current, total int, n string), func()) {
	p := uiprogress.New()
	p.SetOut(e.ui.Err)
	p.Start()

	bar := p.AddBar(1) // Placeholder, updated in callback
	bar.AppendCompleted()
	bar.PrependElapsed()
	bar.PrependFunc(func(b *uiprogress.Bar) string {
		return label
	})

	var (
		mu          sync.Mutex
		currentName string
	)
	bar.AppendFunc(func(b *uiprogress.Bar) string {
		mu.Lock()
		defer mu.Unlock()
		return currentName
	})

	update := func(current, total int, n string) {
		if bar.Total != total {
			bar.Total = total
		}
		mu.Lock()
		currentName = n
		mu.Unlock()
		_ = bar.Set(current)
	}

	return update, p.Stop
}
