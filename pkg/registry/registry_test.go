package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/arthur-debert/spline/pkg/errors"
)

// TestItem is a simple type for testing
type TestItem struct {
	ID    int
	Name  string
	Value string
}

func TestNewBuilder(t *testing.T) {
	reg := NewBuilder[TestItem]().Build()

	if reg == nil {
		t.Fatal("Build() returned nil")
	}

	if reg.Count() != 0 {
		t.Errorf("Empty registry should have count 0, got %d", reg.Count())
	}
}

func TestRegister(t *testing.T) {
	b := NewBuilder[TestItem]()

	t.Run("register valid item", func(t *testing.T) {
		err := b.Register("item1", TestItem{ID: 1, Name: "test", Value: "value1"})
		if err != nil {
			t.Fatalf("Register() error = %v, want nil", err)
		}

		if b.Build().Count() != 1 {
			t.Errorf("Count() = %d, want 1", b.Build().Count())
		}
	})

	t.Run("register with empty name", func(t *testing.T) {
		err := b.Register("", TestItem{ID: 2})

		if !errors.IsErrorCode(err, errors.ErrInvalidInput) {
			t.Errorf("Register() with empty name should return ErrInvalidInput, got %v", err)
		}
	})

	t.Run("register duplicate", func(t *testing.T) {
		err := b.Register("item1", TestItem{ID: 3})

		if !errors.IsErrorCode(err, errors.ErrAlreadyExists) {
			t.Errorf("Register() duplicate should return ErrAlreadyExists, got %v", err)
		}
	})
}

func TestBuildIsASnapshot(t *testing.T) {
	b := NewBuilder[TestItem]()
	MustRegister(b, "first", TestItem{ID: 1})

	frozen := b.Build()
	MustRegister(b, "second", TestItem{ID: 2})

	if frozen.Has("second") {
		t.Error("registrations after Build() must not leak into the built registry")
	}
	if frozen.Count() != 1 {
		t.Errorf("Count() = %d, want 1", frozen.Count())
	}
}

func TestGet(t *testing.T) {
	b := NewBuilder[TestItem]()
	item := TestItem{ID: 1, Name: "test", Value: "value1"}
	MustRegister(b, "item1", item)
	reg := b.Build()

	t.Run("get existing item", func(t *testing.T) {
		got, err := reg.Get("item1")
		if err != nil {
			t.Fatalf("Get() error = %v, want nil", err)
		}

		if got != item {
			t.Errorf("Get() = %+v, want %+v", got, item)
		}
	})

	t.Run("get non-existing item", func(t *testing.T) {
		_, err := reg.Get("nonexistent")

		if !errors.IsErrorCode(err, errors.ErrNotFound) {
			t.Errorf("Get() non-existing should return ErrNotFound, got %v", err)
		}
	})
}

func TestList(t *testing.T) {
	b := NewBuilder[TestItem]()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		MustRegister(b, name, TestItem{Name: name})
	}
	reg := b.Build()

	names := reg.List()
	want := []string{"alpha", "mid", "zeta"}
	if fmt.Sprint(names) != fmt.Sprint(want) {
		t.Errorf("List() = %v, want %v", names, want)
	}

	// Callers may not modify the registry through the returned slice
	names[0] = "changed"
	if reg.List()[0] != "alpha" {
		t.Error("List() must return a copy")
	}
}

func TestHas(t *testing.T) {
	b := NewBuilder[TestItem]()
	MustRegister(b, "item1", TestItem{ID: 1})
	reg := b.Build()

	if !reg.Has("item1") {
		t.Error("Has() should return true for registered item")
	}
	if reg.Has("nonexistent") {
		t.Error("Has() should return false for non-registered item")
	}
}

func TestWithout(t *testing.T) {
	b := NewBuilder[TestItem]()
	for _, name := range []string{"re", "math", "string"} {
		MustRegister(b, name, TestItem{Name: name})
	}
	reg := b.Build()

	filtered := Without(reg, "math", "unknown")

	if filtered.Has("math") {
		t.Error("Without() should drop named items")
	}
	if filtered.Count() != 2 {
		t.Errorf("Count() = %d, want 2", filtered.Count())
	}
	if !reg.Has("math") {
		t.Error("Without() must not modify the source registry")
	}
}

func TestConcurrentReads(t *testing.T) {
	const goroutines = 10
	const items = 100

	b := NewBuilder[TestItem]()
	for i := 0; i < items; i++ {
		MustRegister(b, fmt.Sprintf("item%d", i), TestItem{ID: i})
	}
	reg := b.Build()

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < items; i++ {
				if _, err := reg.Get(fmt.Sprintf("item%d", i)); err != nil {
					t.Errorf("Concurrent Get() failed: %v", err)
				}
			}
		}()
	}

	wg.Wait()
}

func TestMustRegister(t *testing.T) {
	b := NewBuilder[TestItem]()

	t.Run("successful registration", func(t *testing.T) {
		MustRegister(b, "item1", TestItem{ID: 1})

		if !b.Build().Has("item1") {
			t.Error("MustRegister() should have registered the item")
		}
	})

	t.Run("panic on duplicate", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("MustRegister() should panic on duplicate registration")
			}
		}()

		MustRegister(b, "item1", TestItem{ID: 2})
	})
}

func BenchmarkGet(b *testing.B) {
	builder := NewBuilder[TestItem]()
	for i := 0; i < 100; i++ {
		_ = builder.Register(fmt.Sprintf("item%d", i), TestItem{ID: i})
	}
	reg := builder.Build()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = reg.Get("item50")
	}
}

// Example usage
func ExampleRegistry() {
	b := NewBuilder[func() string]()
	_ = b.Register("greeting", func() string { return "Hello, World!" })
	_ = b.Register("farewell", func() string { return "Goodbye!" })
	reg := b.Build()

	fmt.Println("Registered handlers:", reg.List())

	if handler, err := reg.Get("greeting"); err == nil {
		fmt.Println(handler())
	}

	// Output:
	// Registered handlers: [farewell greeting]
	// Hello, World!
}
