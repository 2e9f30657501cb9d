package approval

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "github.com/goto/approvals/core/approval"

type metrics struct {
	submissions metric.Int64Counter
	decisions   metric.Int64Counter
	escalations metric.Int64Counter
}

func newMetrics() metrics {
	meter := otel.Meter(meterName)
	return metrics{
		submissions: counter(meter, "approval.submissions", "Submitted requests by resulting status"),
		decisions:   counter(meter, "approval.decisions", "Recorded approver decisions"),
		escalations: counter(meter, "approval.escalations", "Escalated approval levels"),
	}
}

func counter(meter metric.Meter, name, description string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		return noop.Int64Counter{}
	}
	return c
}

func (m metrics) add(ctx context.Context, c metric.Int64Counter, attrs ...attribute.KeyValue) {
	c.Add(ctx, 1, metric.WithAttributes(attrs...))
}
