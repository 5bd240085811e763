package debugui

import (
	"reflect"
	"strings"
	"sync"
)

// configField is one exported field of a config struct as the config view
// lays it out.
type configField struct {
	Name  string
	Index int
	// Collapsible fields (slices and maps) open in a tree node.
	Collapsible bool
	// Unit is appended to scalar values, "ticks" for timings.
	Unit string
}

// tickSuffixes mark int fields that count ticks.
var tickSuffixes = []string{"Interval", "Delay", "Repeat"}

type fieldCache struct {
	mu     sync.RWMutex
	fields map[reflect.Type][]configField
}

func newFieldCache() *fieldCache {
	return &fieldCache{fields: make(map[reflect.Type][]configField)}
}

// For returns the displayable fields of a struct type, computing them once
// per type.
func (fc *fieldCache) For(t reflect.Type) []configField {
	fc.mu.RLock()
	cached, ok := fc.fields[t]
	fc.mu.RUnlock()
	if ok {
		return cached
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()

	if cached, ok := fc.fields[t]; ok {
		return cached
	}

	var fields []configField
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}

			kind := field.Type.Kind()
			f := configField{
				Name:        field.Name,
				Index:       i,
				Collapsible: kind == reflect.Slice || kind == reflect.Map,
			}
			if kind == reflect.Int {
				for _, suffix := range tickSuffixes {
					if strings.HasSuffix(field.Name, suffix) {
						f.Unit = "ticks"
						break
					}
				}
			}
			fields = append(fields, f)
		}
	}

	fc.fields[t] = fields
	return fields
}

var configFields = newFieldCache()
