package debugui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/orbitcam/ecs"
)

// Labeler names an entity for display. An empty result falls back to the ID.
type Labeler func(storage *ecs.Storage, id ecs.EntityId) string

type EntityInfo struct {
	ID             ecs.EntityId
	Label          string
	ArchetypeID    uint32
	ComponentTypes []string
}

// SortColumn selects the EntityInfo field the browser orders by.
type SortColumn int

const (
	SortByLabel SortColumn = iota
	SortByArchetype
	SortByComponents
	SortByCount
)

// EntityBrowser lists live entities with a text filter and paging.
type EntityBrowser struct {
	label    Labeler
	pageSize int
	page     int
	filter   string
	selected ecs.EntityId
	hasSel   bool

	entities      []EntityInfo
	entityCount   int
	sortColumn    SortColumn
	sortAscending bool
}

func NewEntityBrowser(pageSize int, label Labeler) *EntityBrowser {
	return &EntityBrowser{
		label:         label,
		pageSize:      max(pageSize, 1),
		sortAscending: true,
	}
}

// Selected returns the entity last clicked in the browser.
func (eb *EntityBrowser) Selected() (ecs.EntityId, bool) {
	return eb.selected, eb.hasSel
}

// Select marks id as the selected entity.
func (eb *EntityBrowser) Select(id ecs.EntityId) {
	eb.selected = id
	eb.hasSel = true
}

func (eb *EntityBrowser) Render(storage *ecs.Storage) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.refresh(storage)

	imgui.InputTextWithHint("##search", "Search...", &eb.filter, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filter = ""
		eb.page = 0
	}

	visible := FilterEntities(eb.entities, eb.filter)
	pages := max((len(visible)+eb.pageSize-1)/eb.pageSize, 1)
	eb.page = min(eb.page, pages-1)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity")
		imgui.TableSetupColumn("Archetype")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.sortColumn = SortColumn(spec.ColumnIndex())
			eb.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			SortEntities(eb.entities, eb.sortColumn, eb.sortAscending)
			sortSpecs.SetSpecsDirty(false)
		}

		start := eb.page * eb.pageSize
		end := min(start+eb.pageSize, len(visible))
		for _, entity := range visible[start:end] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.hasSel && eb.selected == entity.ID
			if imgui.SelectableBoolV(entity.Label+"##"+entity.ID.String(), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.Select(entity.ID)
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("0x%X", entity.ArchetypeID))

			imgui.TableNextColumn()
			imgui.Text(strings.Join(entity.ComponentTypes, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", len(entity.ComponentTypes)))
		}

		imgui.EndTable()
	}

	if pages > 1 {
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.page+1, pages, len(visible)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.page > 0 {
			eb.page--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.page < pages-1 {
			eb.page++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(visible)))
	}

	imgui.End()
}

// refresh rebuilds the listing when the number of live entities changes.
func (eb *EntityBrowser) refresh(storage *ecs.Storage) {
	if count := storage.EntityCount(); eb.entities == nil || count != eb.entityCount {
		eb.entityCount = count
		eb.entities = CollectEntities(storage, eb.label)
		SortEntities(eb.entities, eb.sortColumn, eb.sortAscending)
	}
}

// CollectEntities lists every live entity in archetype creation order.
func CollectEntities(storage *ecs.Storage, label Labeler) []EntityInfo {
	entities := make([]EntityInfo, 0, storage.EntityCount())

	for _, archetype := range storage.GetArchetypes() {
		componentTypes := make([]string, len(archetype.Types()))
		for i, t := range archetype.Types() {
			componentTypes[i] = t.String()
		}

		for id := range archetype.Iter() {
			info := EntityInfo{
				ID:             id,
				ArchetypeID:    archetype.ID(),
				ComponentTypes: componentTypes,
			}
			if label != nil {
				info.Label = label(storage, id)
			}
			if info.Label == "" {
				info.Label = id.String()
			}
			entities = append(entities, info)
		}
	}

	return entities
}

// SortEntities orders entities in place. Ties keep their current order.
func SortEntities(entities []EntityInfo, column SortColumn, ascending bool) {
	slices.SortStableFunc(entities, func(a, b EntityInfo) int {
		var c int
		switch column {
		case SortByArchetype:
			c = cmp.Compare(a.ArchetypeID, b.ArchetypeID)
		case SortByComponents:
			c = strings.Compare(strings.Join(a.ComponentTypes, ","), strings.Join(b.ComponentTypes, ","))
		case SortByCount:
			c = len(a.ComponentTypes) - len(b.ComponentTypes)
		default:
			c = strings.Compare(a.Label, b.Label)
		}
		if !ascending {
			c = -c
		}
		return c
	})
}

// FilterEntities keeps entities whose label, archetype or component names
// contain text, case-insensitively. An empty filter keeps everything.
func FilterEntities(entities []EntityInfo, text string) []EntityInfo {
	if text == "" {
		return entities
	}

	needle := strings.ToLower(text)
	filtered := make([]EntityInfo, 0, len(entities))
	for _, entity := range entities {
		haystack := strings.ToLower(strings.Join([]string{
			entity.Label,
			fmt.Sprintf("0x%x", entity.ArchetypeID),
			strings.Join(entity.ComponentTypes, " "),
		}, " "))
		if strings.Contains(haystack, needle) {
			filtered = append(filtered, entity)
		}
	}
	return filtered
}
