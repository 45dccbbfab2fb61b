package domain

import "time"

type ResourceKind string

const (
	ResourceImage    ResourceKind = "image"
	ResourcePDF      ResourceKind = "pdf"
	ResourceVideo    ResourceKind = "video"
	ResourceTemplate ResourceKind = "template"
	ResourceOther    ResourceKind = "other"
)

type JobStatus string

const (
	StatusQueued   JobStatus = "queued"
	StatusFinished JobStatus = "finished"
	StatusError    JobStatus = "error"
)

// PollPolicy bounds the status polling loop for one creation job: a fixed
// wait between attempts and a hard attempt cap.
type PollPolicy struct {
	Interval    time.Duration
	MaxAttempts int
}

var pollPolicies = map[ResourceKind]PollPolicy{
	ResourceImage: {Interval: 2 * time.Second, MaxAttempts: 30},
	ResourcePDF:   {Interval: 2 * time.Second, MaxAttempts: 30},
	// Videos take longer to render.
	ResourceVideo: {Interval: 5 * time.Second, MaxAttempts: 60},
}

// PollPolicyFor returns the polling bounds for a resource kind. Kinds
// without async creation fall back to the image policy.
func PollPolicyFor(kind ResourceKind) PollPolicy {
	if p, ok := pollPolicies[kind]; ok {
		return p
	}
	return pollPolicies[ResourceImage]
}

// BinaryPayload is one binary input attached to an execution item.
type BinaryPayload struct {
	Data     []byte
	FileName string
	MimeType string
}
