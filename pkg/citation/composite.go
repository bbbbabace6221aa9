package citation

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Composite manages a collection of named detectors and merges their results
// into one deduplicated span sequence. It satisfies Detector itself, so a
// composite of jurisdiction-specific detectors drops in anywhere a single
// detector would. Thread-safe for concurrent use.
type Composite struct {
	mu        sync.RWMutex
	detectors map[string]Detector
	order     []string
}

// NewComposite creates an empty composite detector.
func NewComposite() *Composite {
	return &Composite{detectors: make(map[string]Detector)}
}

// Register adds a detector to the composite.
// Returns an error if the detector is nil, has an empty name, or a detector
// with the same name is already registered.
func (c *Composite) Register(detector Detector) error {
	if detector == nil {
		return fmt.Errorf("citation detector cannot be nil")
	}
	name := detector.Name()
	if name == "" {
		return fmt.Errorf("citation detector name cannot be empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.detectors[name]; exists {
		return fmt.Errorf("citation detector %q already registered", name)
	}
	c.detectors[name] = detector
	c.order = append(c.order, name)
	return nil
}

// Get returns a registered detector by name.
func (c *Composite) Get(name string) (Detector, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	detector, ok := c.detectors[name]
	return detector, ok
}

// List returns all registered detector names in sorted order.
func (c *Composite) List() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.detectors))
	for name := range c.detectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name returns the composite's registry name.
func (c *Composite) Name() string {
	return "composite"
}

// Detect runs every registered detector in registration order and merges the
// results, sorted by start offset with overlapping spans reported once
// (first-registered detector wins the region). A failing detector fails the
// whole call: partial span sets could silently leave citations in the output.
func (c *Composite) Detect(text string) ([]Span, error) {
	c.mu.RLock()
	ordered := make([]Detector, 0, len(c.order))
	for _, name := range c.order {
		ordered = append(ordered, c.detectors[name])
	}
	c.mu.RUnlock()

	collected := []Span{}
	for _, detector := range ordered {
		spans, err := detector.Detect(text)
		if err != nil {
			return nil, fmt.Errorf("detector %q: %w", detector.Name(), err)
		}
		// Earlier-registered detectors win overlaps.
		for _, span := range spans {
			overlapping := false
			for _, accepted := range collected {
				if span.Overlaps(accepted) {
					overlapping = true
					break
				}
			}
			if !overlapping {
				collected = append(collected, span)
			}
		}
	}

	SortByStart(collected)
	return collected, nil
}

// String describes the composite for diagnostics.
func (c *Composite) String() string {
	return fmt.Sprintf("composite(%s)", strings.Join(c.List(), ", "))
}
