// Package content serves the static catalog shipped with the binary:
// addiction types, triggers, lessons and motivational messages.
package content

import (
	_ "embed"
	"fmt"
	"math/rand"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var raw []byte

type Option struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

type Lesson struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Duration    string `yaml:"duration"`
	Category    string `yaml:"category"`
}

type Catalog struct {
	Addictions []Option `yaml:"addictions"`
	Triggers   []Option `yaml:"triggers"`
	Lessons    []Lesson `yaml:"lessons"`
	Messages   []string `yaml:"messages"`
}

// Parse decodes a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse content catalog: %w", err)
	}
	if len(c.Messages) == 0 {
		return nil, fmt.Errorf("content catalog has no motivational messages")
	}
	return &c, nil
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return c
})

// Default returns the embedded catalog.
func Default() *Catalog {
	return defaultCatalog()
}

// LessonsIn returns the lessons in category, or all lessons when category
// is empty.
func (c *Catalog) LessonsIn(category string) []Lesson {
	if category == "" {
		return c.Lessons
	}
	var out []Lesson
	for _, l := range c.Lessons {
		if l.Category == category {
			out = append(out, l)
		}
	}
	return out
}

// Categories lists lesson categories in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, l := range c.Lessons {
		if !seen[l.Category] {
			seen[l.Category] = true
			out = append(out, l.Category)
		}
	}
	return out
}

func (c *Catalog) RandomMessage(r *rand.Rand) string {
	return c.Messages[r.Intn(len(c.Messages))]
}

// AddictionLabel returns the display label for an addiction type. Custom
// types are their own label.
func (c *Catalog) AddictionLabel(id string) string {
	return label(c.Addictions, id)
}

func (c *Catalog) TriggerLabel(id string) string {
	return label(c.Triggers, id)
}

func label(opts []Option, id string) string {
	for _, o := range opts {
		if o.ID == id {
			return o.Label
		}
	}
	return id
}
