package controller

import (
	"bytes"
	stderrors "errors"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conmx/conmx/pkg/dmx"
	"github.com/conmx/conmx/pkg/errors"
	"github.com/conmx/conmx/pkg/geom"
	"github.com/conmx/conmx/pkg/graph"
	"github.com/conmx/conmx/pkg/observability"
)

func newTestController(t *testing.T, ids ...int) (*Controller, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := log.New(&buf)
	reg := dmx.NewRegistry()
	for _, id := range ids {
		reg.AddUniverse(dmx.NewUniverse(id, dmx.WithLogger(logger)))
	}
	return New(WithLogger(logger), WithRegistry(reg)), &buf
}

func TestNewDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, []int{0}, c.Registry().IDs())
	assert.Equal(t, 0, c.Patch().NodeCount())
	assert.NotEqual(t, New().ID(), c.ID())
}

func TestSetChannel(t *testing.T) {
	c, _ := newTestController(t, 0, 1)

	require.NoError(t, c.SetChannel(1, 10, 200))

	st, ok, err := c.Channel(1, 10)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, ChannelState{Index: 10, Value: 200, Base: 200}, st)

	st, _, _ = c.Channel(0, 10)
	assert.Equal(t, uint32(0), st.Value, "other universes stay untouched")
}

func TestSetChannelUnknownUniverse(t *testing.T) {
	c, logs := newTestController(t, 0)

	err := c.SetChannel(7, 1, 255)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeUniverseNotFound))
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, "universe 7 is not configured", errors.UserMessage(err))
	assert.Contains(t, logs.String(), "universe is not configured")

	st, _, _ := c.Channel(0, 1)
	assert.Equal(t, uint32(0), st.Value)
}

func TestOverrideAndRevert(t *testing.T) {
	c, _ := newTestController(t, 0)

	require.NoError(t, c.SetChannel(0, 3, 40))
	require.NoError(t, c.OverrideChannel(0, 3, 255))

	st, _, _ := c.Channel(0, 3)
	assert.Equal(t, ChannelState{Index: 3, Value: 255, Base: 40, Override: true}, st)

	require.NoError(t, c.RevertChannel(0, 3))
	st, _, _ = c.Channel(0, 3)
	assert.Equal(t, ChannelState{Index: 3, Value: 40, Base: 40}, st)
}

func TestOutOfRangeChannelIsTolerated(t *testing.T) {
	c, logs := newTestController(t, 0)

	require.NoError(t, c.SetChannel(0, dmx.UniverseSize, 1))
	assert.Contains(t, logs.String(), "trying to write outside of range")

	_, ok, err := c.Channel(0, dmx.UniverseSize)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestChannelsRange(t *testing.T) {
	c, _ := newTestController(t, 0)
	require.NoError(t, c.SetChannel(0, 511, 9))

	got, err := c.Channels(0, 509, 600)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 509, got[0].Index)
	assert.Equal(t, uint32(9), got[2].Value)

	_, err = c.Channels(3, 0, 1)
	assert.True(t, errors.IsNotFound(err))
}

func TestPatchEditing(t *testing.T) {
	c, _ := newTestController(t, 0)

	fader, err := c.AddNode("fader", geom.Pt(0, 0))
	require.NoError(t, err)
	scale, err := c.AddNode("scale", geom.Pt(15, 0))
	require.NoError(t, err)
	out, err := c.AddNode("output", geom.Pt(30, 0))
	require.NoError(t, err)

	require.NoError(t, c.Connect(fader, scale))
	require.NoError(t, c.Connect(scale, out))

	err = c.Connect(scale, 9)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeGraph))
	assert.True(t, stderrors.Is(err, graph.ErrUnknownEndNode))

	removed, err := c.DeleteNode(scale)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, Summary{ID: c.ID().String(), Universes: []int{0}, Nodes: 2, Edges: 0}, c.Summary())

	_, err = c.DeleteNode(scale)
	assert.True(t, errors.Is(err, errors.ErrCodeNodeNotFound))

	again, err := c.AddNode("merge", geom.Point{})
	require.NoError(t, err)
	assert.Equal(t, scale, again, "freed slot is reused")
}

func TestAddNodeUnknownKind(t *testing.T) {
	c, _ := newTestController(t, 0)
	_, err := c.AddNode("laser", geom.Point{})
	assert.True(t, errors.Is(err, errors.ErrCodeNodeCreation))
}

func TestMoveNode(t *testing.T) {
	c, _ := newTestController(t, 0)
	id, _ := c.AddNode("fader", geom.Pt(1, 1))

	require.NoError(t, c.MoveNode(id, geom.Vec(2, 3)))
	n, err := c.Node(id)
	require.NoError(t, err)
	assert.Equal(t, geom.Pt(3, 4), n.Position())

	assert.True(t, errors.Is(c.MoveNode(42, geom.Vec(1, 1)), errors.ErrCodeNodeNotFound))
	_, err = c.Node(42)
	assert.True(t, errors.IsNotFound(err))
}

func TestDisconnect(t *testing.T) {
	c, _ := newTestController(t, 0)
	a, _ := c.AddNode("fader", geom.Point{})
	b, _ := c.AddNode("scale", geom.Point{})
	require.NoError(t, c.Connect(a, b))
	require.NoError(t, c.Connect(b, a))

	assert.Len(t, c.Disconnect(b, a), 2)
	assert.Equal(t, 0, c.Patch().EdgeCount())
}

type countingHooks struct {
	observability.NoopDMXHooks
	sets, unknown int
}

func (h *countingHooks) OnChannelSet(int, int, uint32) { h.sets++ }
func (h *countingHooks) OnUnknownUniverse(int)         { h.unknown++ }

type updateHooks struct {
	observability.NoopPatchHooks
	nodes int
}

func (h *updateHooks) OnUpdate(nodes int, _ time.Duration) { h.nodes = nodes }

func TestHooks(t *testing.T) {
	defer observability.Reset()
	dh, ph := &countingHooks{}, &updateHooks{}
	observability.SetDMXHooks(dh)
	observability.SetPatchHooks(ph)

	c, _ := newTestController(t, 0)
	_ = c.SetChannel(0, 1, 1)
	_ = c.SetChannel(5, 1, 1)
	_, _ = c.AddNode("merge", geom.Point{})
	_, _ = c.AddNode("scale", geom.Point{})
	c.Update()

	assert.Equal(t, 1, dh.sets)
	assert.Equal(t, 1, dh.unknown)
	assert.Equal(t, 2, ph.nodes)
}

func TestAddUniverses(t *testing.T) {
	c, buf := newTestController(t, 0, 1)
	require.NoError(t, c.SetChannel(1, 3, 90))

	reloaded := dmx.NewRegistry().
		AddUniverse(dmx.NewUniverse(1)).
		AddUniverse(dmx.NewUniverse(5)).
		AddUniverse(dmx.NewUniverse(2))

	added := c.AddUniverses(reloaded)
	if diff := cmp.Diff([]int{2, 5}, added); diff != "" {
		t.Errorf("AddUniverses() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 5}, c.Registry().IDs()); diff != "" {
		t.Errorf("IDs() mismatch (-want +got):\n%s", diff)
	}

	st, _, err := c.Channel(1, 3)
	require.NoError(t, err)
	assert.Equal(t, uint32(90), st.Value, "existing universes keep their state")
	assert.Contains(t, buf.String(), "universes added")

	assert.Empty(t, c.AddUniverses(reloaded))
}
