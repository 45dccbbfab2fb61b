package domain

type FieldShape string

const (
	FieldString  FieldShape = "string"
	FieldColor   FieldShape = "color"
	FieldOptions FieldShape = "options"
	FieldBinary  FieldShape = "binary"
)

// PropertyDefinition describes one settable layer property. The catalog is
// informational (host-side field generation); the normalizer accepts any
// property key for any layer.
type PropertyDefinition struct {
	Key          PropertyKey
	Name         string
	Description  string
	RestrictedTo []ResourceKind // empty = available for all resource kinds
	Shape        FieldShape
	Placeholder  string
	Options      []PropertyOption
}

type PropertyOption struct {
	Name  string
	Value string
}

var textProperties = []PropertyDefinition{
	{Key: PropText, Name: "Text Content", Description: "Text content of the layer", Shape: FieldString, Placeholder: "Enter text content..."},
	{Key: PropTextColor, Name: "Text Color", Description: "Text color as hex-code", Shape: FieldColor},
	{Key: PropFont, Name: "Font", Description: "Font-family of the text layer", Shape: FieldString, Placeholder: "e.g., Arial, Helvetica, sans-serif"},
	{Key: PropAltTextColor, Name: "Alt Text Color", Description: "Alternate text color as hex-code", Shape: FieldColor},
	{Key: PropAltFont, Name: "Alt Font", Description: "Alternative font-family of the text layer", Shape: FieldString, Placeholder: "e.g., Arial, Helvetica, sans-serif"},
}

var pictureProperties = []PropertyDefinition{
	{Key: PropImage, Name: "Image URL", Description: "Image URL (.jpg, .png, .gif, .webp)", Shape: FieldString, Placeholder: "https://example.com/image.jpg"},
	{Key: PropImageBinary, Name: "Image File (Binary)", Description: "Upload an image file from binary input data", Shape: FieldBinary, Placeholder: "data"},
	{Key: PropImageArray, Name: "Image URLs (Array)", Description: "Multiple image URLs for dynamic video generation, one per line", RestrictedTo: []ResourceKind{ResourceVideo}, Shape: FieldString},
	{Key: PropVideo, Name: "Video URL", Description: "Video URL (.mp4)", RestrictedTo: []ResourceKind{ResourceVideo}, Shape: FieldString, Placeholder: "https://example.com/video.mp4"},
	{Key: PropVideoBinary, Name: "Video File (Binary)", Description: "Upload a video file from binary input data", RestrictedTo: []ResourceKind{ResourceVideo}, Shape: FieldBinary, Placeholder: "data"},
}

var shapeProperties = []PropertyDefinition{
	{Key: PropBackgroundColor, Name: "Background Color", Description: "Background color as hex-code", Shape: FieldColor},
	{Key: PropBorderColor, Name: "Border Color", Description: "Border color as hex-code", Shape: FieldColor},
	{Key: PropBorderRadius, Name: "Border Radius", Description: "Border radius in pixels", Shape: FieldString},
	{Key: PropBorderWidth, Name: "Border Width", Description: "Border width in pixels", Shape: FieldString},
	{Key: PropSVG, Name: "SVG", Description: "SVG markup replacing the shape content", Shape: FieldString},
}

var browserframeProperties = []PropertyDefinition{
	{Key: PropImage, Name: "Image URL", Description: "Screenshot image shown inside the frame", Shape: FieldString},
	{Key: PropImageViewport, Name: "Image Viewport", Description: "Viewport size used for the screenshot", Shape: FieldString},
	{Key: PropURL, Name: "URL", Description: "Address shown in the browser bar", Shape: FieldString, Placeholder: "https://example.com"},
}

var barcodeProperties = []PropertyDefinition{
	{Key: PropValue, Name: "Value", Description: "Value encoded in the barcode", Shape: FieldString},
	{Key: PropColor, Name: "Color", Description: "Barcode color as hex-code", Shape: FieldColor},
}

var ratingProperties = []PropertyDefinition{
	{Key: PropValue, Name: "Value", Description: "Rating value", Shape: FieldString},
}

var subtitleProperties = []PropertyDefinition{
	{Key: PropSRT, Name: "SRT", Description: "Subtitles in SRT format", RestrictedTo: []ResourceKind{ResourceVideo}, Shape: FieldString},
}

var generalProperties = []PropertyDefinition{
	{Key: "visibility", Name: "Visibility", Description: "Layer visibility state", Shape: FieldOptions, Options: []PropertyOption{{Name: "Visible", Value: "visible"}, {Name: "Hidden", Value: "hidden"}}},
	{Key: "link_target", Name: "Link Target", Description: "Clickable link target for non-rastered PDFs", RestrictedTo: []ResourceKind{ResourcePDF}, Shape: FieldString, Placeholder: "https://example.com"},
	{Key: PropCustom, Name: "Custom Property", Description: "Set a custom property not listed above", Shape: FieldString},
}

var catalogByLayerType = map[LayerType][]PropertyDefinition{
	LayerText:         textProperties,
	LayerPicture:      pictureProperties,
	LayerShape:        shapeProperties,
	LayerBrowserframe: browserframeProperties,
	LayerBarcode:      barcodeProperties,
	LayerRating:       ratingProperties,
	LayerSubtitle:     subtitleProperties,
}

// AllLayerTypes lists the layer types present in the catalog.
func AllLayerTypes() []LayerType {
	return []LayerType{
		LayerText,
		LayerPicture,
		LayerShape,
		LayerBrowserframe,
		LayerBarcode,
		LayerRating,
		LayerSubtitle,
	}
}

func (d PropertyDefinition) availableFor(kind ResourceKind) bool {
	if len(d.RestrictedTo) == 0 {
		return true
	}
	for _, r := range d.RestrictedTo {
		if r == kind {
			return true
		}
	}
	return false
}

func filterByResource(defs []PropertyDefinition, kind ResourceKind) []PropertyDefinition {
	out := make([]PropertyDefinition, 0, len(defs))
	for _, d := range defs {
		if d.availableFor(kind) {
			out = append(out, d)
		}
	}
	return out
}

// PropertiesForLayerType returns the layer-specific catalog entries valid
// for the given resource kind. Unknown layer types have no entries.
func PropertiesForLayerType(layerType LayerType, kind ResourceKind) []PropertyDefinition {
	defs, ok := catalogByLayerType[layerType]
	if !ok {
		return nil
	}
	return filterByResource(defs, kind)
}

// GeneralProperties returns the catalog entries applicable to every layer
// type, filtered by resource kind.
func GeneralProperties(kind ResourceKind) []PropertyDefinition {
	return filterByResource(generalProperties, kind)
}
