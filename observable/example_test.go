package observable_test

import (
	"fmt"

	"github.com/tailored-agentic-units/events/delegate"
	"github.com/tailored-agentic-units/events/observable"
)

func ExampleObservable_Mutate() {
	health := observable.New(100)
	health.Subscribe(delegate.Always(func(h int) {
		fmt.Printf("Health is now %d\n", h)
	}))

	health.Mutate(func(h *int) { *h -= 10 })
	health.Mutate(func(h *int) { *h -= 5 })
	health.Mutate(func(h *int) { *h += 25 })
	// Output:
	// Health is now 90
	// Health is now 85
	// Health is now 110
}
