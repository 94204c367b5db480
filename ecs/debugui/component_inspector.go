package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/orbitcam/ecs"
)

// ComponentInspector shows and edits the components of one entity. Edits
// write straight through the component pointers held by storage.
type ComponentInspector struct {
	// ReadOnly disables editing, for components owned by a running system.
	ReadOnly bool
}

func NewComponentInspector() *ComponentInspector {
	return &ComponentInspector{}
}

func (ci *ComponentInspector) Render(storage *ecs.Storage, id ecs.EntityId, selected bool) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	if !selected {
		imgui.Text("No entity selected")
		return
	}

	archetype := storage.GetArchetypeById(id.ArchetypeId())
	if archetype == nil || !storage.Alive(id) {
		imgui.Text(fmt.Sprintf("Entity %s no longer exists", id))
		return
	}

	imgui.Text(fmt.Sprintf("Entity: %s", id))
	imgui.Text(fmt.Sprintf("Archetype: 0x%X", id.ArchetypeId()))
	imgui.Separator()

	imgui.BeginDisabledV(ci.ReadOnly)
	for _, compType := range archetype.Types() {
		component := storage.GetComponent(id, compType)
		if component == nil {
			continue
		}

		if imgui.TreeNodeStr(compType.String()) {
			val := reflect.ValueOf(component).Elem()
			if compType.Kind() == reflect.Struct {
				ci.renderStruct(val)
			} else {
				ci.renderValue("value", val, 0)
			}
			imgui.TreePop()
		}
	}
	imgui.EndDisabled()
}

func (ci *ComponentInspector) renderStruct(val reflect.Value) {
	for _, field := range globalReflectionCache.GetFields(val.Type()) {
		fieldVal := val.Field(field.Index)
		if field.IsPointer {
			if fieldVal.IsNil() {
				imgui.Text(fmt.Sprintf("%s: nil", field.Name))
				continue
			}
			fieldVal = fieldVal.Elem()
		}
		ci.renderValue(field.Name, fieldVal, field.FloatArray)
	}
}

// renderValue draws an editor for an addressable value. floatArray is the
// vector length for [N]float32 values.
func (ci *ComponentInspector) renderValue(name string, val reflect.Value, floatArray int) {
	id := "##" + name

	switch {
	case floatArray == 2:
		imgui.Text(name + ":")
		imgui.SameLine()
		imgui.DragFloat2(id, (*[2]float32)(val.Addr().UnsafePointer()))
		return
	case floatArray == 3:
		imgui.Text(name + ":")
		imgui.SameLine()
		imgui.DragFloat3(id, (*[3]float32)(val.Addr().UnsafePointer()))
		return
	case floatArray == 4:
		imgui.Text(name + ":")
		imgui.SameLine()
		imgui.DragFloat4(id, (*[4]float32)(val.Addr().UnsafePointer()))
		return
	}

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(name + ":")
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(id, &v) {
			val.SetInt(int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(name + ":")
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(id, &v) && v >= 0 {
			val.SetUint(uint64(v))
		}

	case reflect.Float32:
		imgui.Text(name + ":")
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		imgui.DragFloat(id, (*float32)(val.Addr().UnsafePointer()))

	case reflect.Float64:
		v := float32(val.Float())
		imgui.Text(name + ":")
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(id, &v) {
			val.SetFloat(float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) {
			val.SetBool(v)
		}

	case reflect.String:
		v := val.String()
		imgui.Text(name + ":")
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(id, "", &v, imgui.InputTextFlagsNone, nil) {
			val.SetString(v)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			ci.renderStruct(val)
			imgui.TreePop()
		}

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	case reflect.Func:
		imgui.Text(fmt.Sprintf("%s: func", name))

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
}
