package widget

import (
	"fmt"

	"github.com/tidwall/sjson"
)

// DumpJSON returns the state of every field as a JSON document:
//
//	{"focus": "name", "fields": [{"id": ..., "name": ..., "text": ...,
//	  "cursor": 3, "selection": {"start": 1, "end": 3}, ...}]}
//
// selection is null when nothing is selected.
func (f *Form) DumpJSON() (string, error) {
	doc := `{"focus":null,"fields":[]}`

	var err error
	if fld := f.Focused(); fld != nil {
		if doc, err = sjson.Set(doc, "focus", fld.Name()); err != nil {
			return "", fmt.Errorf("dump focus: %w", err)
		}
	}

	for _, fld := range f.fields {
		obj, err := dumpField(fld)
		if err != nil {
			return "", fmt.Errorf("dump field %q: %w", fld.Name(), err)
		}
		if doc, err = sjson.SetRaw(doc, "fields.-1", obj); err != nil {
			return "", fmt.Errorf("dump field %q: %w", fld.Name(), err)
		}
	}
	return doc, nil
}

// jsonValue is one path/value pair written into a field object.
type jsonValue struct {
	path  string
	value any
}

func dumpField(fld *TextField) (string, error) {
	buf := fld.Buffer()
	cons := buf.Constraints()

	values := []jsonValue{
		{"id", fld.ID()},
		{"name", fld.Name()},
		{"text", buf.Text()},
		{"cursor", buf.Cursor()},
		{"viewportStart", buf.ViewportStart()},
		{"focused", fld.Focused()},
		{"constraints.maxLength", cons.MaxLength},
		{"constraints.numericOnly", cons.NumericOnly},
		{"constraints.maxNumericValue", cons.MaxNumericValue},
		{"constraints.readOnly", cons.ReadOnly},
	}
	if sel, ok := buf.Selection(); ok {
		values = append(values, jsonValue{"selection.start", sel.Start}, jsonValue{"selection.end", sel.End})
	}

	obj := "{}"
	var err error
	for _, v := range values {
		if obj, err = sjson.Set(obj, v.path, v.value); err != nil {
			return "", err
		}
	}
	if !buf.HasSelection() {
		if obj, err = sjson.SetRaw(obj, "selection", "null"); err != nil {
			return "", err
		}
	}
	return obj, nil
}
