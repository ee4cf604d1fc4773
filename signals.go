package mirror

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for copy events.
var (
	SignalPlanBuilt    = capitan.NewSignal("mirror.plan.built", "Copy plan compiled and cached")
	SignalCopyComplete = capitan.NewSignal("mirror.copy.complete", "Copy operation finished")
)

// Keys for typed event data.
var (
	KeyTypeName  = capitan.NewStringKey("type_name")
	KeyVariant   = capitan.NewStringKey("variant")
	KeyExclusion = capitan.NewStringKey("exclusion")
	KeyOperation = capitan.NewStringKey("operation")
	KeyMembers   = capitan.NewIntKey("members")
	KeyDuration  = capitan.NewDurationKey("duration")
	KeyError     = capitan.NewErrorKey("error")
)

// emitPlanBuilt emits an event when a plan is compiled and inserted.
func emitPlanBuilt(ctx context.Context, typeName, variant, exclusion string, members int) {
	capitan.Emit(ctx, SignalPlanBuilt,
		KeyTypeName.Field(typeName),
		KeyVariant.Field(variant),
		KeyExclusion.Field(exclusion),
		KeyMembers.Field(members),
	)
}

// emitCopyComplete emits an event when a copy operation finishes.
func emitCopyComplete(ctx context.Context, operation, typeName string, duration time.Duration, members int, err error) {
	fields := []capitan.Field{
		KeyOperation.Field(operation),
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyMembers.Field(members),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalCopyComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalCopyComplete, fields...)
	}
}
