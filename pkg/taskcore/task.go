package taskcore

import (
	"bytes"
	"time"

	"github.com/cloudcarver/text2image/pkg/codec"
	"github.com/google/uuid"
)

type State string

const (
	Received   State = "RECEIVED"
	Processing State = "PROCESSING"
	Completed  State = "COMPLETED"
	Failed     State = "FAILED"
)

func (s State) Terminal() bool {
	return s == Completed || s == Failed
}

type ErrorKind string

const (
	InvalidInput    ErrorKind = "INVALID_INPUT"
	ProcessingError ErrorKind = "PROCESSING_ERROR"
)

type TaskError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`

	// Upstream is the inference API response text, kept verbatim.
	Upstream string `json:"upstream,omitempty"`
}

// Task is one unit of work. It is owned by a single executor while it runs;
// other components only see Snapshots.
type Task struct {
	ID          uuid.UUID
	Inputs      map[string]codec.FieldData
	Outputs     map[string]codec.FieldData
	State       State
	Error       *TaskError
	CallbackURL string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewTask(id uuid.UUID, inputs map[string]codec.FieldData, callbackURL string, now time.Time) Task {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return Task{
		ID:          id,
		Inputs:      cloneFields(inputs),
		State:       Received,
		CallbackURL: callbackURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (t *Task) Fail(kind ErrorKind, message, upstream string) {
	t.State = Failed
	t.Outputs = nil
	t.Error = &TaskError{Kind: kind, Message: message, Upstream: upstream}
}

func (t *Task) Complete(outputs map[string]codec.FieldData) {
	t.State = Completed
	t.Outputs = outputs
	t.Error = nil
}

// Snapshot is the read-only view of a task kept by the TaskStore. It carries
// output content types but no payloads.
type Snapshot struct {
	ID          uuid.UUID                    `json:"id"`
	State       State                        `json:"state"`
	Error       *TaskError                   `json:"error,omitempty"`
	Outputs     map[string]codec.ContentType `json:"outputs,omitempty"`
	CallbackURL string                       `json:"-"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}

func (t *Task) Snapshot() Snapshot {
	s := Snapshot{
		ID:          t.ID,
		State:       t.State,
		CallbackURL: t.CallbackURL,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.Error != nil {
		e := *t.Error
		s.Error = &e
	}
	if len(t.Outputs) > 0 {
		s.Outputs = make(map[string]codec.ContentType, len(t.Outputs))
		for name, fd := range t.Outputs {
			s.Outputs[name] = fd.Type
		}
	}
	return s
}

func cloneFields(fields map[string]codec.FieldData) map[string]codec.FieldData {
	if fields == nil {
		return nil
	}
	ret := make(map[string]codec.FieldData, len(fields))
	for k, v := range fields {
		ret[k] = codec.FieldData{Data: bytes.Clone(v.Data), Type: v.Type}
	}
	return ret
}
