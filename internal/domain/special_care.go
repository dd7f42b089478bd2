package domain

import "encoding/json"

// SpecialCareItem is one selectable dietary/health category, scoped to a single
// species.
type SpecialCareItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SpecialCareList accepts either a JSON array of items or an object keyed by
// arbitrary strings with item values. Both decode to the same flat list so the
// rest of the system never branches on shape; any other input decodes to an
// empty list and decoding never fails. Order of a keyed input is unspecified.
type SpecialCareList []SpecialCareItem

func (l *SpecialCareList) UnmarshalJSON(data []byte) error {
	var items []SpecialCareItem
	if err := json.Unmarshal(data, &items); err == nil {
		*l = items
		return nil
	}

	var keyed map[string]SpecialCareItem
	if err := json.Unmarshal(data, &keyed); err == nil {
		out := make(SpecialCareList, 0, len(keyed))
		for _, item := range keyed {
			out = append(out, item)
		}
		*l = out
		return nil
	}

	*l = nil
	return nil
}

// IDs returns the ids of every item in the list.
func (l SpecialCareList) IDs() []string {
	ids := make([]string, 0, len(l))
	for _, item := range l {
		ids = append(ids, item.ID)
	}
	return ids
}

// ContainsAny reports whether at least one item id is in the selected set.
func (l SpecialCareList) ContainsAny(selected map[string]struct{}) bool {
	for _, item := range l {
		if _, ok := selected[item.ID]; ok {
			return true
		}
	}
	return false
}
