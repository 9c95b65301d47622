// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/pixstring/pixel"
)

func memoryFactory(opts Options) (Surface, error) {
	return NewMemorySurface(opts.Width, opts.Height), nil
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	r.Register("test", 50, memoryFactory, nil)

	b, ok := r.Get("test")
	if !ok {
		t.Fatal("registered backend not found")
	}
	if b.Name != "test" || b.Priority != 50 {
		t.Errorf("backend = %s/%d", b.Name, b.Priority)
	}
	if !b.Available() {
		t.Error("backend with nil Available func should be available")
	}

	r.Unregister("test")
	if _, ok := r.Get("test"); ok {
		t.Error("backend still present after Unregister")
	}
}

func TestRegistryOrdering(t *testing.T) {
	r := NewRegistry()
	r.Register("low", 10, memoryFactory, nil)
	r.Register("high", 100, memoryFactory, nil)
	r.Register("mid-b", 50, memoryFactory, nil)
	r.Register("mid-a", 50, memoryFactory, nil)
	r.Register("off", 200, memoryFactory, func() bool { return false })

	if got, want := r.List(), []string{"off", "high", "mid-a", "mid-b", "low"}; !slices.Equal(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
	if got, want := r.Available(), []string{"high", "mid-a", "mid-b", "low"}; !slices.Equal(got, want) {
		t.Errorf("Available() = %v, want %v", got, want)
	}
}

func TestRegistryNewSurface(t *testing.T) {
	r := NewRegistry()
	if _, err := r.NewSurface(Options{Width: 1, Height: 1}); !errors.Is(err, ErrNoBackendAvailable) {
		t.Errorf("empty registry error = %v", err)
	}

	factoryErr := errors.New("device lost")
	r.Register("broken", 100, func(Options) (Surface, error) { return nil, factoryErr }, nil)
	r.Register("memory", 10, memoryFactory, nil)

	s, err := r.NewSurface(Options{Width: 30, Height: 20})
	if err != nil {
		t.Fatalf("NewSurface() error = %v", err)
	}
	if s.Width() != 30 || s.Height() != 20 {
		t.Errorf("size = %dx%d", s.Width(), s.Height())
	}

	r.Unregister("memory")
	if _, err := r.NewSurface(Options{Width: 1, Height: 1}); !errors.Is(err, factoryErr) {
		t.Errorf("factory error not propagated: %v", err)
	}
}

func TestRegistryNewSurfaceByNameErrors(t *testing.T) {
	r := NewRegistry()
	r.Register("off", 10, memoryFactory, func() bool { return false })

	_, err := r.NewSurfaceByName("nope", Options{})
	var nf *BackendNotFoundError
	if !errors.As(err, &nf) || nf.Name != "nope" {
		t.Errorf("not found error = %v", err)
	}

	_, err = r.NewSurfaceByName("off", Options{})
	var un *BackendUnavailableError
	if !errors.As(err, &un) || un.Error() != "surface: backend unavailable: off" {
		t.Errorf("unavailable error = %v", err)
	}
}

func TestGlobalMemoryBackend(t *testing.T) {
	if !slices.Contains(List(), "memory") {
		t.Fatalf("memory backend not registered: %v", List())
	}
	s, err := NewSurfaceByName("memory", 4, 3)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = s.Close() }()
	if _, ok := s.(*MemorySurface); !ok {
		t.Errorf("surface type = %T", s)
	}

	bg := pixel.BGRA{B: 1, G: 2, R: 3, A: 255}
	s2, err := globalRegistry.NewSurfaceByName("memory", Options{Width: 2, Height: 2, Background: bg})
	if err != nil {
		t.Fatal(err)
	}
	if got := s2.(*MemorySurface).Snapshot().BGRA(1, 1); got != bg {
		t.Errorf("background = %v", got)
	}
}
