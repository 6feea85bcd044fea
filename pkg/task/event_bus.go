package task

import (
	"fmt"

	ev "github.com/asaskevich/EventBus"
	"go.uber.org/zap"
)

// EventBus is an event bus for task events.
type EventBus struct {
	eventBus ev.Bus
}

// EventKind is the task event kind.
type EventKind string

const (
	// EventTaskBegin is emitted when a task is going to be executed.
	EventTaskBegin EventKind = "task_begin"
	// EventTaskFinish is emitted when a task finishes executing.
	EventTaskFinish EventKind = "task_finish"
	// EventTaskProgress is emitted when a task has made some progress.
	EventTaskProgress EventKind = "task_progress"
)

// Task is anything whose progress is published on the bus.
type Task interface {
	fmt.Stringer
}

// BeginEvent is the payload of EventTaskBegin.
type BeginEvent struct {
	Task Task
}

// ProgressEvent is the payload of EventTaskProgress.
type ProgressEvent struct {
	Task    Task
	Current int
}

// FinishEvent is the payload of EventTaskFinish, Err is nil on success.
type FinishEvent struct {
	Task Task
	Err  error
}

// NewEventBus creates a new EventBus.
func NewEventBus() EventBus {
	return EventBus{
		eventBus: ev.New(),
	}
}

// PublishTaskBegin publishes a TaskBegin event.
func (ev *EventBus) PublishTaskBegin(task Task) {
	zap.L().Debug("TaskBegin", zap.String("task", task.String()))
	ev.eventBus.Publish(string(EventTaskBegin), BeginEvent{Task: task})
}

// PublishTaskFinish publishes a TaskFinish event.
func (ev *EventBus) PublishTaskFinish(task Task, err error) {
	zap.L().Debug("TaskFinish", zap.String("task", task.String()), zap.Error(err))
	ev.eventBus.Publish(string(EventTaskFinish), FinishEvent{Task: task, Err: err})
}

// PublishTaskProgress publishes a TaskProgress event. Handlers run on the
// publishing goroutine, so a single publisher delivers the values in order.
func (ev *EventBus) PublishTaskProgress(task Task, current int) {
	zap.L().Debug("TaskProgress", zap.String("task", task.String()), zap.Int("current", current))
	ev.eventBus.Publish(string(EventTaskProgress), ProgressEvent{Task: task, Current: current})
}

// Subscribe subscribes events.
func (ev *EventBus) Subscribe(eventName EventKind, handler interface{}) {
	err := ev.eventBus.Subscribe(string(eventName), handler)
	if err != nil {
		panic(err)
	}
}

// Unsubscribe unsubscribes events.
func (ev *EventBus) Unsubscribe(eventName EventKind, handler interface{}) {
	err := ev.eventBus.Unsubscribe(string(eventName), handler)
	if err != nil {
		panic(err)
	}
}
