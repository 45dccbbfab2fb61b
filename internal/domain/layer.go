package domain

import "strings"

type LayerType string

const (
	LayerText         LayerType = "text"
	LayerPicture      LayerType = "picture"
	LayerShape        LayerType = "shape"
	LayerBrowserframe LayerType = "browserframe"
	LayerBarcode      LayerType = "barcode"
	LayerRating       LayerType = "rating"
	LayerSubtitle     LayerType = "subtitle"
	LayerUnknown      LayerType = "unknown"
)

type PropertyKey string

const (
	PropText            PropertyKey = "text"
	PropColor           PropertyKey = "color"
	PropTextColor       PropertyKey = "text_color"
	PropAltTextColor    PropertyKey = "alt_text_color"
	PropBackgroundColor PropertyKey = "background_color"
	PropBorderColor     PropertyKey = "border_color"
	PropFont            PropertyKey = "font"
	PropAltFont         PropertyKey = "alt_font"
	PropImage           PropertyKey = "image"
	PropImageBinary     PropertyKey = "imageBinary"
	PropImageArray      PropertyKey = "imageArray"
	PropVideo           PropertyKey = "video"
	PropVideoBinary     PropertyKey = "videoBinary"
	PropOpacity         PropertyKey = "opacity"
	PropRotation        PropertyKey = "rotation"
	PropBorderRadius    PropertyKey = "border_radius"
	PropBorderRadiusAlt PropertyKey = "borderRadius"
	PropBorderWidth     PropertyKey = "border_width"
	PropURL             PropertyKey = "url"
	PropSVG             PropertyKey = "svg"
	PropImageViewport   PropertyKey = "image_viewport"
	PropValue           PropertyKey = "value"
	PropSRT             PropertyKey = "srt"
	PropCustom          PropertyKey = "custom"
)

// LayerRef identifies one layer of a template. Hosts encode it as
// "name|type"; a bare name is accepted for manually entered layers.
type LayerRef struct {
	Name string
	Type LayerType
}

// ParseLayerRef splits an encoded "name|type" identifier on the first
// separator. Identifiers without a separator keep the whole string as the
// layer name and get type "unknown".
func ParseLayerRef(encoded string) LayerRef {
	if name, typ, ok := strings.Cut(encoded, "|"); ok {
		if typ == "" {
			typ = string(LayerUnknown)
		}
		return LayerRef{Name: name, Type: LayerType(typ)}
	}
	return LayerRef{Name: encoded, Type: LayerUnknown}
}

// LayerEdit is one user-authored instruction targeting a single layer
// property. At most one value field is active, selected by Property.
type LayerEdit struct {
	Layer    LayerRef
	Property PropertyKey

	Text            string
	Color           string
	TextColor       string
	AltTextColor    string
	BackgroundColor string
	BorderColor     string
	Font            string
	AltFont         string
	Opacity         string
	Rotation        string
	BorderRadius    string
	BorderWidth     string
	URL             string
	SVG             string
	ImageViewport   string
	Value           string
	SRT             string

	Image         string
	ImageArray    []string
	ImageArrayRaw string
	Video         string

	// Binary properties carry the name of an input binary field, not a
	// usable value; the field is resolved and uploaded separately.
	ImageBinaryField string
	VideoBinaryField string

	CustomName  string
	CustomValue string

	// Extra holds "<key>Value" fields for property keys outside the fixed
	// set, passed through untouched.
	Extra map[string]string
}

// LayerPayload is the normalized per-layer mapping sent to the API:
// layer name -> property key -> value.
type LayerPayload map[string]map[string]any
