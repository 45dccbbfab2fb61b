package execute

import (
	"context"

	"placid-connector/internal/domain"
	execute_uc "placid-connector/internal/usecase/execute"
)

type batchExecutor interface {
	Run(ctx context.Context, req execute_uc.Request) ([]execute_uc.Result, error)
}

type authVerifier interface {
	VerifyAuth(ctx context.Context) error
}

// ResultPublisher forwards finished batch responses to a message topic.
// Optional; nil disables publishing.
type ResultPublisher interface {
	Publish(ctx context.Context, key, value []byte) error
}

// ObjectStore resolves binary fields that reference stored objects by key.
// Optional; nil rejects object references.
type ObjectStore interface {
	FetchObject(ctx context.Context, key string) (domain.BinaryPayload, error)
}
