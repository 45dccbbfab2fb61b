package render

import (
	"context"
	"strings"

	"placid-connector/internal/domain"
)

// scalarValues maps a property key to the edit field holding its value.
// Keys outside this table fall back to the edit's Extra map, looked up as
// "<key>Value".
var scalarValues = map[domain.PropertyKey]func(domain.LayerEdit) string{
	domain.PropText:            func(e domain.LayerEdit) string { return e.Text },
	domain.PropColor:           func(e domain.LayerEdit) string { return e.Color },
	domain.PropTextColor:       func(e domain.LayerEdit) string { return e.TextColor },
	domain.PropAltTextColor:    func(e domain.LayerEdit) string { return e.AltTextColor },
	domain.PropBackgroundColor: func(e domain.LayerEdit) string { return e.BackgroundColor },
	domain.PropBorderColor:     func(e domain.LayerEdit) string { return e.BorderColor },
	domain.PropFont:            func(e domain.LayerEdit) string { return e.Font },
	domain.PropAltFont:         func(e domain.LayerEdit) string { return e.AltFont },
	domain.PropVideo:           func(e domain.LayerEdit) string { return e.Video },
	domain.PropOpacity:         func(e domain.LayerEdit) string { return e.Opacity },
	domain.PropRotation:        func(e domain.LayerEdit) string { return e.Rotation },
	domain.PropBorderRadius:    func(e domain.LayerEdit) string { return e.BorderRadius },
	domain.PropBorderRadiusAlt: func(e domain.LayerEdit) string { return e.BorderRadius },
	domain.PropBorderWidth:     func(e domain.LayerEdit) string { return e.BorderWidth },
	domain.PropURL:             func(e domain.LayerEdit) string { return e.URL },
	domain.PropSVG:             func(e domain.LayerEdit) string { return e.SVG },
	domain.PropImageViewport:   func(e domain.LayerEdit) string { return e.ImageViewport },
	domain.PropValue:           func(e domain.LayerEdit) string { return e.Value },
	domain.PropSRT:             func(e domain.LayerEdit) string { return e.SRT },
}

// buildLayers folds a list of layer edits into the nested payload the API
// expects. Edits with an empty layer name, custom edits missing name or
// value, and empty resolved values are dropped silently. Binary-valued
// edits upload their payload first; an upload failure aborts the whole
// normalization.
func (u *Usecase) buildLayers(ctx context.Context, edits []domain.LayerEdit, source BinarySource) (domain.LayerPayload, error) {
	out := domain.LayerPayload{}

	for _, edit := range edits {
		name := edit.Layer.Name
		if name == "" {
			continue
		}
		if _, ok := out[name]; !ok {
			out[name] = map[string]any{}
		}

		switch edit.Property {
		case domain.PropCustom:
			if edit.CustomName != "" && edit.CustomValue != "" {
				out[name][edit.CustomName] = edit.CustomValue
			}

		case domain.PropImage:
			// An array value wins over the scalar URL.
			if arr := imageArrayOf(edit); len(arr) > 0 {
				out[name]["image"] = arr
			} else if edit.Image != "" {
				out[name]["image"] = edit.Image
			}

		case domain.PropImageArray:
			// The API key is always "image", array-valued.
			if arr := imageArrayOf(edit); len(arr) > 0 {
				out[name]["image"] = arr
			}

		case domain.PropImageBinary:
			if edit.ImageBinaryField == "" {
				continue
			}
			fileID, err := u.uploadBinary(ctx, source, edit.ImageBinaryField)
			if err != nil {
				return nil, err
			}
			out[name]["image"] = fileID

		case domain.PropVideoBinary:
			if edit.VideoBinaryField == "" {
				continue
			}
			fileID, err := u.uploadBinary(ctx, source, edit.VideoBinaryField)
			if err != nil {
				return nil, err
			}
			out[name]["video"] = fileID

		default:
			if value := scalarValueOf(edit); value != "" {
				out[name][string(edit.Property)] = value
			}
		}
	}

	return out, nil
}

func scalarValueOf(edit domain.LayerEdit) string {
	if accessor, ok := scalarValues[edit.Property]; ok {
		return accessor(edit)
	}
	return edit.Extra[string(edit.Property)+"Value"]
}

// imageArrayOf returns the edit's image list: a pre-built array as-is, or a
// newline-delimited string split into trimmed, non-empty lines.
func imageArrayOf(edit domain.LayerEdit) []string {
	if len(edit.ImageArray) > 0 {
		return edit.ImageArray
	}
	if edit.ImageArrayRaw == "" {
		return nil
	}

	var urls []string
	for _, line := range strings.Split(edit.ImageArrayRaw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			urls = append(urls, line)
		}
	}
	return urls
}
