package execute

import (
	"encoding/json"
	"fmt"

	"placid-connector/internal/domain"
	"placid-connector/internal/usecase/render"
)

// Parameter records mirror the host's node-parameter vocabulary: layer
// edits carry a "property" selector plus one "<property>Value" field each.

type layerEditParams struct {
	LayerID   string `json:"layerId"`
	LayerType string `json:"layerType"`
	Property  string `json:"property"`

	Text            string `json:"textValue"`
	Color           string `json:"colorValue"`
	TextColor       string `json:"text_colorValue"`
	AltTextColor    string `json:"alt_text_colorValue"`
	BackgroundColor string `json:"background_colorValue"`
	BorderColor     string `json:"border_colorValue"`
	Font            string `json:"fontValue"`
	AltFont         string `json:"alt_fontValue"`
	Opacity         string `json:"opacityValue"`
	Rotation        string `json:"rotationValue"`
	BorderRadius    string `json:"borderRadiusValue"`
	BorderWidth     string `json:"border_widthValue"`
	URL             string `json:"urlValue"`
	SVG             string `json:"svgValue"`
	ImageViewport   string `json:"image_viewportValue"`
	Value           string `json:"valueValue"`
	SRT             string `json:"srtValue"`

	Image       string          `json:"imageValue"`
	ImageArray  json.RawMessage `json:"imageArrayValue"`
	Video       string          `json:"videoValue"`
	ImageBinary string          `json:"imageBinaryValue"`
	VideoBinary string          `json:"videoBinaryValue"`

	CustomPropertyName  string `json:"customPropertyName"`
	CustomPropertyValue string `json:"customPropertyValue"`
}

// knownEditFields are excluded when collecting pass-through "<key>Value"
// fields for properties outside the fixed set.
var knownEditFields = map[string]struct{}{
	"layerId": {}, "layerType": {}, "property": {},
	"textValue": {}, "colorValue": {}, "text_colorValue": {},
	"alt_text_colorValue": {}, "background_colorValue": {},
	"border_colorValue": {}, "fontValue": {}, "alt_fontValue": {},
	"opacityValue": {}, "rotationValue": {}, "borderRadiusValue": {},
	"border_widthValue": {}, "urlValue": {}, "svgValue": {},
	"image_viewportValue": {}, "valueValue": {}, "srtValue": {},
	"imageValue": {}, "imageArrayValue": {}, "videoValue": {},
	"imageBinaryValue": {}, "videoBinaryValue": {},
	"customPropertyName": {}, "customPropertyValue": {},
}

func decodeLayerEdits(raw []json.RawMessage) ([]domain.LayerEdit, error) {
	edits := make([]domain.LayerEdit, 0, len(raw))
	for i, r := range raw {
		edit, err := decodeLayerEdit(r)
		if err != nil {
			return nil, fmt.Errorf("layer edit %d: %w", i, err)
		}
		edits = append(edits, edit)
	}
	return edits, nil
}

func decodeLayerEdit(raw json.RawMessage) (domain.LayerEdit, error) {
	var p layerEditParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return domain.LayerEdit{}, err
	}

	ref := domain.ParseLayerRef(p.LayerID)
	if ref.Type == domain.LayerUnknown && p.LayerType != "" {
		ref.Type = domain.LayerType(p.LayerType)
	}

	edit := domain.LayerEdit{
		Layer:    ref,
		Property: domain.PropertyKey(p.Property),

		Text:            p.Text,
		Color:           p.Color,
		TextColor:       p.TextColor,
		AltTextColor:    p.AltTextColor,
		BackgroundColor: p.BackgroundColor,
		BorderColor:     p.BorderColor,
		Font:            p.Font,
		AltFont:         p.AltFont,
		Opacity:         p.Opacity,
		Rotation:        p.Rotation,
		BorderRadius:    p.BorderRadius,
		BorderWidth:     p.BorderWidth,
		URL:             p.URL,
		SVG:             p.SVG,
		ImageViewport:   p.ImageViewport,
		Value:           p.Value,
		SRT:             p.SRT,

		Image:            p.Image,
		Video:            p.Video,
		ImageBinaryField: p.ImageBinary,
		VideoBinaryField: p.VideoBinary,

		CustomName:  p.CustomPropertyName,
		CustomValue: p.CustomPropertyValue,
	}

	// imageArrayValue arrives either as a JSON array or as one
	// newline-delimited textarea string.
	if len(p.ImageArray) > 0 {
		var arr []string
		if err := json.Unmarshal(p.ImageArray, &arr); err == nil {
			edit.ImageArray = arr
		} else {
			var s string
			if err := json.Unmarshal(p.ImageArray, &s); err != nil {
				return domain.LayerEdit{}, fmt.Errorf("imageArrayValue must be a string or an array of strings")
			}
			edit.ImageArrayRaw = s
		}
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return domain.LayerEdit{}, err
	}
	for key, value := range fields {
		if _, known := knownEditFields[key]; known {
			continue
		}
		s, ok := value.(string)
		if !ok {
			continue
		}
		if edit.Extra == nil {
			edit.Extra = map[string]string{}
		}
		edit.Extra[key] = s
	}

	return edit, nil
}

type additionalCreateFields struct {
	WebhookSuccess string `json:"webhook_success"`
	Passthrough    string `json:"passthrough"`
}

type imageCreateParams struct {
	TemplateID        string                 `json:"template_id"`
	ConfigurationMode string                 `json:"configurationMode"`
	Layers            []json.RawMessage      `json:"layers"`
	LayersJSON        json.RawMessage        `json:"layersJson"`
	AdditionalFields  additionalCreateFields `json:"additionalFields"`
}

type pageParams struct {
	TemplateID string            `json:"template_id"`
	Layers     []json.RawMessage `json:"layers"`
}

type pdfCreateParams struct {
	ConfigurationMode string                 `json:"configurationMode"`
	Pages             []pageParams           `json:"pages"`
	PagesJSON         json.RawMessage        `json:"pagesJson"`
	AdditionalFields  additionalCreateFields `json:"additionalFields"`
}

type audioSettings struct {
	Audio          string `json:"audio"`
	AudioDuration  string `json:"audio_duration"`
	AudioTrimStart string `json:"audio_trim_start"`
	AudioTrimEnd   string `json:"audio_trim_end"`
}

type clipParams struct {
	TemplateID    string            `json:"template_id"`
	AudioSettings audioSettings     `json:"audioSettings"`
	Layers        []json.RawMessage `json:"layers"`
}

type videoCreateParams struct {
	ConfigurationMode string                 `json:"configurationMode"`
	Clips             []clipParams           `json:"clips"`
	ClipsJSON         json.RawMessage        `json:"clipsJson"`
	AdditionalFields  additionalCreateFields `json:"additionalFields"`
}

type resourceIDParams struct {
	ImageID    string `json:"imageId"`
	PDFID      string `json:"pdfId"`
	VideoID    string `json:"videoId"`
	TemplateID string `json:"templateId"`
}

func (p resourceIDParams) idFor(kind domain.ResourceKind) string {
	switch kind {
	case domain.ResourceImage:
		return p.ImageID
	case domain.ResourcePDF:
		return p.PDFID
	case domain.ResourceVideo:
		return p.VideoID
	case domain.ResourceTemplate:
		return p.TemplateID
	default:
		return ""
	}
}

type templateCreateParams struct {
	Title            string `json:"title"`
	Width            int    `json:"width"`
	Height           int    `json:"height"`
	AdditionalFields struct {
		Tags             string `json:"tags"`
		CustomData       string `json:"custom_data"`
		FromTemplate     string `json:"from_template"`
		AddToCollections string `json:"add_to_collections"`
	} `json:"additionalFields"`
}

type templateUpdateParams struct {
	TemplateID   string `json:"templateId"`
	UpdateFields struct {
		Title      string  `json:"title"`
		Tags       string  `json:"tags"`
		CustomData *string `json:"custom_data"`
	} `json:"updateFields"`
}

type templateListParams struct {
	ReturnAll        bool `json:"returnAll"`
	AdditionalFields struct {
		CollectionID string `json:"collection_id"`
		Search       string `json:"search"`
	} `json:"additionalFields"`
}

type mediaUploadParams struct {
	Files []struct {
		File     string `json:"file"`
		FileName string `json:"fileName"`
		FileKey  string `json:"fileKey"`
	} `json:"files"`
	AdditionalFields struct {
		ReturnFullResponse bool `json:"returnFullResponse"`
	} `json:"additionalFields"`
}

func decodeParams(raw json.RawMessage, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("invalid item parameters: %w", err)
	}
	return nil
}

func configMode(mode string) render.ConfigMode {
	if mode == string(render.ModeAdvanced) {
		return render.ModeAdvanced
	}
	return render.ModeSimple
}
