package domain_test

import (
	"testing"
	"time"

	"placid-connector/internal/domain"
)

func TestPropertiesForLayerTypeRestriction(t *testing.T) {
	keys := func(defs []domain.PropertyDefinition) map[domain.PropertyKey]bool {
		out := map[domain.PropertyKey]bool{}
		for _, d := range defs {
			out[d.Key] = true
		}
		return out
	}

	forImage := keys(domain.PropertiesForLayerType(domain.LayerPicture, domain.ResourceImage))
	if forImage[domain.PropVideo] || forImage[domain.PropImageArray] {
		t.Errorf("video-only properties leaked into image pickers: %v", forImage)
	}
	if !forImage[domain.PropImage] || !forImage[domain.PropImageBinary] {
		t.Errorf("picture properties missing: %v", forImage)
	}

	forVideo := keys(domain.PropertiesForLayerType(domain.LayerPicture, domain.ResourceVideo))
	if !forVideo[domain.PropVideo] || !forVideo[domain.PropImageArray] {
		t.Errorf("video properties missing: %v", forVideo)
	}

	if domain.PropertiesForLayerType("gradient", domain.ResourceImage) != nil {
		t.Error("unknown layer types must have no entries")
	}
}

func TestGeneralPropertiesRestriction(t *testing.T) {
	hasLinkTarget := func(kind domain.ResourceKind) bool {
		for _, d := range domain.GeneralProperties(kind) {
			if d.Key == "link_target" {
				return true
			}
		}
		return false
	}

	if hasLinkTarget(domain.ResourceImage) {
		t.Error("link_target is a PDF-only property")
	}
	if !hasLinkTarget(domain.ResourcePDF) {
		t.Error("link_target missing for PDFs")
	}
}

func TestSubtitleLayerIsVideoOnly(t *testing.T) {
	if len(domain.PropertiesForLayerType(domain.LayerSubtitle, domain.ResourceImage)) != 0 {
		t.Error("subtitle properties must be filtered out for images")
	}
	if len(domain.PropertiesForLayerType(domain.LayerSubtitle, domain.ResourceVideo)) == 0 {
		t.Error("subtitle properties missing for videos")
	}
}

func TestPollPolicyFor(t *testing.T) {
	img := domain.PollPolicyFor(domain.ResourceImage)
	if img.Interval != 2*time.Second || img.MaxAttempts != 30 {
		t.Errorf("unexpected image policy: %+v", img)
	}

	video := domain.PollPolicyFor(domain.ResourceVideo)
	if video.Interval != 5*time.Second || video.MaxAttempts != 60 {
		t.Errorf("unexpected video policy: %+v", video)
	}

	// Kinds without async creation fall back to the image policy.
	if domain.PollPolicyFor(domain.ResourceTemplate) != img {
		t.Error("unexpected fallback policy")
	}
}
