package worker

import (
	"context"

	"github.com/cloudcarver/text2image/pkg/codec"
	"github.com/cloudcarver/text2image/pkg/descriptor"
	"github.com/cloudcarver/text2image/pkg/processor"
	"github.com/cloudcarver/text2image/pkg/taskcore"
	"github.com/pkg/errors"
)

type Executor struct {
	descriptor *descriptor.Descriptor
	processor  processor.ProcessorInterface
}

func NewExecutor(d *descriptor.Descriptor, p processor.ProcessorInterface) ExecutorInterface {
	return &Executor{descriptor: d, processor: p}
}

func (e *Executor) Execute(ctx context.Context, task taskcore.Task) taskcore.Task {
	task.State = taskcore.Processing

	if err := e.decodeInputs(task.Inputs); err != nil {
		task.Fail(taskcore.InvalidInput, err.Error(), "")
		return task
	}

	outputs, err := e.processor.Process(ctx, task.Inputs)
	if err != nil {
		kind := taskcore.ProcessingError
		var decodeErr *codec.DecodeError
		if errors.As(err, &decodeErr) {
			kind = taskcore.InvalidInput
		}
		task.Fail(kind, err.Error(), upstreamText(err))
		return task
	}

	encoded, err := e.encodeOutputs(outputs)
	if err != nil {
		task.Fail(taskcore.ProcessingError, err.Error(), "")
		return task
	}
	task.Complete(encoded)
	return task
}

func (e *Executor) decodeInputs(inputs map[string]codec.FieldData) error {
	if err := e.descriptor.ValidateInputs(inputs); err != nil {
		return err
	}
	for _, f := range e.descriptor.DataInFields() {
		if _, err := codec.Decode(inputs[f.Name]); err != nil {
			var decodeErr *codec.DecodeError
			if errors.As(err, &decodeErr) && decodeErr.Field == "" {
				decodeErr.Field = f.Name
			}
			return err
		}
	}
	return nil
}

func (e *Executor) encodeOutputs(outputs map[string]codec.FieldData) (map[string]codec.FieldData, error) {
	for name := range outputs {
		if _, ok := e.descriptor.OutField(name); !ok {
			return nil, errors.Wrapf(descriptor.ErrUndeclaredField, "output field %s", name)
		}
	}
	ret := make(map[string]codec.FieldData, len(outputs))
	for _, f := range e.descriptor.DataOutFields() {
		fd, ok := outputs[f.Name]
		if !ok {
			return nil, errors.Wrapf(descriptor.ErrMissingField, "output field %s", f.Name)
		}
		if !f.Accepts(fd.Type) {
			return nil, errors.Wrapf(descriptor.ErrUnexpectedType, "output field %s has type %q, expecting one of %v", f.Name, fd.Type, f.Type)
		}
		v, err := codec.Decode(fd)
		if err != nil {
			return nil, errors.Wrapf(err, "output field %s", f.Name)
		}
		out, err := codec.Encode(v, fd.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "output field %s", f.Name)
		}
		ret[f.Name] = out
	}
	return ret, nil
}

// upstreamText returns what the inference API sent back, verbatim.
func upstreamText(err error) string {
	var upstream *processor.UpstreamError
	if !errors.As(err, &upstream) {
		return ""
	}
	if len(upstream.Body) > 0 {
		return string(upstream.Body)
	}
	return upstream.Message
}
