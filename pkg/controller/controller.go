package controller

import (
	"net/url"
	"time"

	"github.com/cloudcarver/text2image/pkg/codec"
	"github.com/cloudcarver/text2image/pkg/descriptor"
	"github.com/cloudcarver/text2image/pkg/storage"
	"github.com/cloudcarver/text2image/pkg/taskcore"
	"github.com/cloudcarver/text2image/pkg/taskcore/worker"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type ServerInterface interface {
	// (GET /)
	Root(c *fiber.Ctx) error

	// (GET /service)
	GetService(c *fiber.Ctx) error

	// (GET /status)
	GetStatus(c *fiber.Ctx) error

	// (POST /compute)
	Compute(c *fiber.Ctx) error

	// (GET /tasks/:id)
	GetTask(c *fiber.Ctx) error

	// (GET /tasks/:id/outputs/:field)
	GetTaskOutput(c *fiber.Ctx) error
}

type ComputeRequest struct {
	// Optional, generated when absent
	TaskID *uuid.UUID `json:"task_id,omitempty"`

	// Optional, receives the final task snapshot
	CallbackURL string `json:"callback_url,omitempty"`

	// Field data is base64 encoded
	Inputs map[string]codec.FieldData `json:"inputs"`
}

type ComputeResponse struct {
	TaskID uuid.UUID      `json:"task_id"`
	State  taskcore.State `json:"state"`
}

type StatusResponse struct {
	Status      descriptor.Status `json:"status"`
	ActiveTasks int               `json:"active_tasks"`
}

type Controller struct {
	descriptor *descriptor.Descriptor
	worker     worker.WorkerInterface
	store      taskcore.TaskStoreInterface
	blobs      storage.BlobStoreInterface
	now        func() time.Time
}

func NewController(
	d *descriptor.Descriptor,
	w worker.WorkerInterface,
	store taskcore.TaskStoreInterface,
	blobs storage.BlobStoreInterface,
) ServerInterface {
	return &Controller{
		descriptor: d,
		worker:     w,
		store:      store,
		blobs:      blobs,
		now:        time.Now,
	}
}

func (controller *Controller) Root(c *fiber.Ctx) error {
	return c.Redirect("/docs", fiber.StatusMovedPermanently)
}

func (controller *Controller) GetService(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(controller.descriptor.Model())
}

func (controller *Controller) GetStatus(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(StatusResponse{
		Status:      controller.descriptor.Status(),
		ActiveTasks: controller.store.CountActive(c.UserContext()),
	})
}

func (controller *Controller) Compute(c *fiber.Ctx) error {
	var params ComputeRequest
	if err := c.BodyParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	if len(params.Inputs) == 0 {
		return c.Status(fiber.StatusBadRequest).SendString("inputs is required")
	}
	if params.CallbackURL != "" {
		u, err := url.Parse(params.CallbackURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return c.Status(fiber.StatusBadRequest).SendString("callback_url must be an absolute http(s) URL")
		}
	}

	task := taskcore.NewTask(uuidOrNil(params.TaskID), params.Inputs, params.CallbackURL, controller.now())
	if err := controller.worker.Submit(c.UserContext(), task); err != nil {
		if errors.Is(err, taskcore.ErrTaskExists) {
			return c.Status(fiber.StatusConflict).SendString(err.Error())
		}
		if errors.Is(err, worker.ErrIntakeDisabled) {
			return c.Status(fiber.StatusServiceUnavailable).SendString(err.Error())
		}
		return err
	}

	return c.Status(fiber.StatusAccepted).JSON(ComputeResponse{
		TaskID: task.ID,
		State:  taskcore.Received,
	})
}

func (controller *Controller) GetTask(c *fiber.Ctx) error {
	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid task id")
	}
	task, err := controller.store.Get(c.UserContext(), taskID)
	if err != nil {
		if errors.Is(err, taskcore.ErrTaskNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(task)
}

func (controller *Controller) GetTaskOutput(c *fiber.Ctx) error {
	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid task id")
	}
	fd, err := controller.blobs.Get(c.UserContext(), storage.Key{TaskID: taskID, Field: c.Params("field")})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return err
	}
	c.Set(fiber.HeaderContentType, string(fd.Type))
	return c.Status(fiber.StatusOK).Send(fd.Data)
}

func uuidOrNil(id *uuid.UUID) uuid.UUID {
	if id == nil {
		return uuid.Nil
	}
	return *id
}
