package domain

import (
	"fmt"

	"estate-hub/errors"
)

// field describes which wire keys must be present before a raw document
// is decoded. Decoding alone cannot tell an absent key from a zero value.
type field struct {
	name     string
	optional bool
	list     bool
	children []field
}

func req(name string, children ...field) field {
	return field{name: name, children: children}
}

func opt(name string, children ...field) field {
	return field{name: name, optional: true, children: children}
}

// each requires an array whose object elements carry the given keys.
func each(name string, children ...field) field {
	return field{name: name, list: true, children: children}
}

func keys(names ...string) []field {
	fields := make([]field, 0, len(names))
	for _, n := range names {
		fields = append(fields, req(n))
	}
	return fields
}

// checkPresence reports the first missing key. A null value counts as
// missing; optional keys are only descended into when present.
func checkPresence(raw map[string]any, fields []field, path string) error {
	for _, f := range fields {
		p := f.name
		if path != "" {
			p = path + "." + f.name
		}
		value, ok := raw[f.name]
		if !ok || value == nil {
			if f.optional {
				continue
			}
			return errors.NewValidationError(p, "is required")
		}
		if f.list {
			items, ok := value.([]any)
			if !ok {
				return errors.NewValidationError(p, "must be an array")
			}
			if len(f.children) == 0 {
				continue
			}
			for i, item := range items {
				itemPath := fmt.Sprintf("%s[%d]", p, i)
				obj, ok := item.(map[string]any)
				if !ok {
					return errors.NewValidationError(itemPath, "must be an object")
				}
				if err := checkPresence(obj, f.children, itemPath); err != nil {
					return err
				}
			}
			continue
		}
		if len(f.children) == 0 {
			continue
		}
		obj, ok := value.(map[string]any)
		if !ok {
			return errors.NewValidationError(p, "must be an object")
		}
		if err := checkPresence(obj, f.children, p); err != nil {
			return err
		}
	}
	return nil
}
