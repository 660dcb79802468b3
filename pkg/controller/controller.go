package controller

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/conmx/conmx/pkg/dmx"
	"github.com/conmx/conmx/pkg/errors"
	"github.com/conmx/conmx/pkg/graph"
	"github.com/conmx/conmx/pkg/node"
	"github.com/conmx/conmx/pkg/observability"
)

// Patch is the node graph type held by the controller.
type Patch = graph.Graph[*node.Node]

// Controller holds a registry and a patch graph and applies edits to them.
type Controller struct {
	id       uuid.UUID
	registry *dmx.Registry
	patch    *Patch
	logger   *log.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRegistry replaces the default registry. A nil registry is ignored.
func WithRegistry(r *dmx.Registry) Option {
	return func(c *Controller) {
		if r != nil {
			c.registry = r
		}
	}
}

// New creates a controller with a fresh show id. Without WithRegistry it
// starts with a single universe 0.
func New(opts ...Option) *Controller {
	c := &Controller{
		id:     uuid.New(),
		patch:  graph.New[*node.Node](),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.registry == nil {
		c.registry = dmx.NewRegistry().AddUniverse(dmx.NewUniverse(0, dmx.WithLogger(c.logger)))
	}
	c.logger = c.logger.With("show", c.id.String()[:8])
	return c
}

// ID returns the show id.
func (c *Controller) ID() uuid.UUID { return c.id }

// Registry returns the live registry.
func (c *Controller) Registry() *dmx.Registry { return c.registry }

// Patch returns the live patch graph.
func (c *Controller) Patch() *Patch { return c.patch }

// Summary is a point-in-time overview of the show.
type Summary struct {
	ID        string `json:"id"`
	Universes []int  `json:"universes"`
	Nodes     int    `json:"nodes"`
	Edges     int    `json:"edges"`
}

// Summary reports the show id, the configured universes and the patch size.
func (c *Controller) Summary() Summary {
	return Summary{
		ID:        c.id.String(),
		Universes: c.registry.IDs(),
		Nodes:     c.patch.NodeCount(),
		Edges:     c.patch.EdgeCount(),
	}
}

// Update runs every node's drivers once.
func (c *Controller) Update() {
	start := time.Now()
	nodes := c.patch.Payloads()
	for _, n := range nodes {
		n.Update()
	}
	observability.Patch().OnUpdate(len(nodes), time.Since(start))
}

// Universe returns the universe registered under id.
func (c *Controller) Universe(id int) (*dmx.Universe, error) {
	u, ok := c.registry.Universe(id)
	if !ok {
		c.logger.Error("universe is not configured", "universe", id)
		observability.DMX().OnUnknownUniverse(id)
		return nil, errors.New(errors.ErrCodeUniverseNotFound, "universe %d is not configured", id)
	}
	return u, nil
}

// AddUniverses registers every universe of reg whose id is not yet
// configured and returns the added ids in ascending order. Universes that
// already exist keep their channel state.
func (c *Controller) AddUniverses(reg *dmx.Registry) []int {
	var added []int
	for _, id := range reg.IDs() {
		if c.registry.Has(id) {
			continue
		}
		u, _ := reg.Universe(id)
		c.registry.AddUniverse(u)
		added = append(added, id)
	}
	if len(added) > 0 {
		c.logger.Info("universes added", "ids", added)
	}
	return added
}
