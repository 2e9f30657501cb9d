package audit

import (
	"context"
	"errors"
	"time"

	"github.com/goto/salt/audit"
)

type AuditLogger interface {
	Log(ctx context.Context, action string, data interface{}) error
}

type repository interface {
	Insert(context.Context, *audit.Log) error
}

type actorContextKey struct{}

// WithActor marks ctx with the user performing the audited operation
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

func ActorFromContext(ctx context.Context) string {
	actor, _ := ctx.Value(actorContextKey{}).(string)
	return actor
}

type Option func(*Logger)

func WithMetadata(md map[string]interface{}) Option {
	return func(l *Logger) { l.metadata = md }
}

// WithDefaultActor is recorded when ctx carries no actor
func WithDefaultActor(actor string) Option {
	return func(l *Logger) { l.defaultActor = actor }
}

// Logger writes audit records to a repository
type Logger struct {
	repo         repository
	metadata     map[string]interface{}
	defaultActor string

	TimeNow func() time.Time
}

func New(repo repository, opts ...Option) *Logger {
	l := &Logger{repo: repo, TimeNow: time.Now}
	for _, o := range opts {
		o(l)
	}
	return l
}

func (l *Logger) Log(ctx context.Context, action string, data interface{}) error {
	if l.repo == nil {
		return errors.New("failed to log audit: repository is nil")
	}

	actor := ActorFromContext(ctx)
	if actor == "" {
		actor = l.defaultActor
	}

	return l.repo.Insert(ctx, &audit.Log{
		Timestamp: l.TimeNow(),
		Action:    action,
		Actor:     actor,
		Data:      data,
		Metadata:  l.metadata,
	})
}
