package constraint

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// BuildJSONPatch produces the minimal JSON patch document between the
// current record and its merged form, for the update wire format of
// remote backends. Only changed top-level fields appear in the output.
func BuildJSONPatch(current, merged *Record) (map[string]json.RawMessage, error) {
	curDoc, err := toDoc(current)
	if err != nil {
		return nil, err
	}
	mergedDoc, err := toDoc(merged)
	if err != nil {
		return nil, err
	}

	patch := make(map[string]json.RawMessage)
	for key, mv := range mergedDoc {
		cv, ok := curDoc[key]
		if ok && jsonEqual(cv, mv) {
			continue
		}
		patch[key] = mv
	}
	// Fields cleared in the merged record patch to null.
	for key := range curDoc {
		if _, ok := mergedDoc[key]; !ok {
			patch[key] = json.RawMessage("null")
		}
	}
	return patch, nil
}

func toDoc(r *Record) (map[string]json.RawMessage, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("record doc: %w", err)
	}
	return doc, nil
}

func jsonEqual(a, b json.RawMessage) bool {
	var av, bv any
	if err := json.Unmarshal(a, &av); err != nil {
		return false
	}
	if err := json.Unmarshal(b, &bv); err != nil {
		return false
	}
	return reflect.DeepEqual(av, bv)
}
