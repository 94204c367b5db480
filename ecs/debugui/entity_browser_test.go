package debugui_test

import (
	"testing"

	"github.com/plus3/orbitcam/ecs"
	"github.com/plus3/orbitcam/ecs/debugui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Label string

type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

func newStorage() *ecs.Storage {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Label](registry)
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	debugui.RegisterDebugUIComponents(registry)
	return ecs.NewStorage(registry)
}

func labelOf(storage *ecs.Storage, id ecs.EntityId) string {
	if l := ecs.ReadComponent[Label](storage, id); l != nil {
		return string(*l)
	}
	return ""
}

func TestCollectEntities(t *testing.T) {
	storage := newStorage()
	player := storage.Spawn(Label("player"), Position{}, Velocity{})
	rock := storage.Spawn(Position{X: 3})
	storage.Spawn(Label("tree"), Position{X: 1})

	entities := debugui.CollectEntities(storage, labelOf)
	require.Len(t, entities, 3)

	byID := map[ecs.EntityId]debugui.EntityInfo{}
	for _, e := range entities {
		byID[e.ID] = e
	}

	assert.Equal(t, "player", byID[player].Label)
	assert.Len(t, byID[player].ComponentTypes, 3)
	assert.Equal(t, player.ArchetypeId(), byID[player].ArchetypeID)
	assert.Equal(t, rock.String(), byID[rock].Label, "unlabelled entities fall back to the ID")

	storage.Delete(rock)
	assert.Len(t, debugui.CollectEntities(storage, nil), 2)
}

func TestFilterEntities(t *testing.T) {
	storage := newStorage()
	storage.Spawn(Label("Player"), Position{}, Velocity{})
	storage.Spawn(Label("Tree"), Position{})
	storage.Spawn(Label("Cloud"), Velocity{})

	entities := debugui.CollectEntities(storage, labelOf)

	cases := []struct {
		filter string
		want   int
	}{
		{"", 3},
		{"player", 1},
		{"TREE", 1},
		{"velocity", 2},
		{"debugui_test.position", 2},
		{"nothing", 0},
	}
	for _, tc := range cases {
		t.Run(tc.filter, func(t *testing.T) {
			assert.Len(t, debugui.FilterEntities(entities, tc.filter), tc.want)
		})
	}
}

func TestSortEntities(t *testing.T) {
	entities := []debugui.EntityInfo{
		{Label: "b", ArchetypeID: 1, ComponentTypes: []string{"x", "y"}},
		{Label: "c", ArchetypeID: 3, ComponentTypes: []string{"x"}},
		{Label: "a", ArchetypeID: 2, ComponentTypes: []string{"x", "y", "z"}},
	}
	labels := func() []string {
		var out []string
		for _, e := range entities {
			out = append(out, e.Label)
		}
		return out
	}

	debugui.SortEntities(entities, debugui.SortByLabel, true)
	assert.Equal(t, []string{"a", "b", "c"}, labels())

	debugui.SortEntities(entities, debugui.SortByArchetype, false)
	assert.Equal(t, []string{"c", "a", "b"}, labels())

	debugui.SortEntities(entities, debugui.SortByCount, true)
	assert.Equal(t, []string{"c", "b", "a"}, labels())
}

func TestEntityBrowserSelection(t *testing.T) {
	browser := debugui.NewEntityBrowser(10, nil)

	_, ok := browser.Selected()
	assert.False(t, ok)

	id := ecs.NewEntityId(7, 0)
	browser.Select(id)
	got, ok := browser.Selected()
	assert.True(t, ok)
	assert.Equal(t, id, got)
}
