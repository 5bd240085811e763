package debugui

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetris"
)

// ConfigView lists the session config read-only. Fields are discovered by
// reflection so new tunables show up without changes here.
type ConfigView struct{}

func (cv *ConfigView) Render(cfg tetris.Config) {
	if !imgui.BeginV("Config", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	val := reflect.ValueOf(cfg)
	for _, field := range configFields.For(val.Type()) {
		fieldVal := val.Field(field.Index)
		if !field.Collapsible {
			text := fmt.Sprintf("%s: %s", field.Name, formatValue(fieldVal))
			if field.Unit != "" {
				text += " " + field.Unit
			}
			imgui.Text(text)
			continue
		}

		if fieldVal.Len() == 0 {
			imgui.Text(fmt.Sprintf("%s: empty", field.Name))
			continue
		}
		if imgui.TreeNodeStr(fmt.Sprintf("%s (%d)", field.Name, fieldVal.Len())) {
			imgui.Text(formatValue(fieldVal))
			imgui.TreePop()
		}
	}

	imgui.End()
}

// formatValue renders a config value compactly. Shapes are drawn as rows of
// '#' and '.'.
func formatValue(val reflect.Value) string {
	if !val.IsValid() {
		return "<invalid>"
	}

	if shape, ok := val.Interface().(tetris.Shape); ok {
		var b strings.Builder
		for i, row := range shape.Rows() {
			if i > 0 {
				b.WriteByte('\n')
			}
			for _, cell := range row {
				if cell == tetris.Empty {
					b.WriteByte('.')
				} else {
					b.WriteByte('#')
				}
			}
		}
		return b.String()
	}

	switch val.Kind() {
	case reflect.Slice:
		parts := make([]string, val.Len())
		for i := range parts {
			parts[i] = formatValue(val.Index(i))
		}
		return "[" + strings.Join(parts, " ") + "]"

	case reflect.Map:
		keys := val.MapKeys()
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%v:\n%s", k.Interface(), formatValue(val.MapIndex(k))))
		}
		sort.Strings(parts)
		return strings.Join(parts, "\n")

	default:
		return fmt.Sprintf("%v", val.Interface())
	}
}
