package person

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// createPersonRequest doubles as the PUT payload: a full replace carries the
// same required fields as a create.
type createPersonRequest struct {
	Name   *string `json:"name" validate:"omitempty,max=50"`
	Age    *int    `json:"age"`
	Gender string  `json:"gender" validate:"required,max=50"`
}

// patchPersonRequest accepts partial payloads; only non-nil fields are applied.
type patchPersonRequest struct {
	Name   *string `json:"name" validate:"omitempty,max=50"`
	Age    *int    `json:"age"`
	Gender *string `json:"gender" validate:"omitempty,max=50"`
}

// RegisterRoutes mounts the collection handlers on both /person and /person2.
// The two prefixes serve the same records through the same handlers; only
// /person2 carries the single-resource routes.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	for _, prefix := range []string{"/person", "/person2"} {
		app.Get(prefix, h.getPersons)
		app.Post(prefix, h.createPerson)
	}

	app.Get("/person2/:id", h.getPerson)
	app.Put("/person2/:id", h.updatePerson)
	app.Patch("/person2/:id", h.patchPerson)
	app.Delete("/person2/:id", h.deletePerson)
}

func (h *Handler) getPersons(c *fiber.Ctx) error {
	persons, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(persons)
}

func (h *Handler) getPerson(c *fiber.Ctx) error {
	id, err := parsePersonID(c)
	if err != nil {
		return notFound(c)
	}

	p, err := h.service.GetByID(id)
	if err != nil {
		return respondStoreError(c, err)
	}

	return c.JSON(p)
}

func (h *Handler) createPerson(c *fiber.Ctx) error {
	payload := new(createPersonRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if err := validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(validationMessages(err))
	}

	created, err := h.service.Create(Person{
		Name:   payload.Name,
		Age:    payload.Age,
		Gender: payload.Gender,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updatePerson(c *fiber.Ctx) error {
	id, err := parsePersonID(c)
	if err != nil {
		return notFound(c)
	}

	payload := new(createPersonRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if err := validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(validationMessages(err))
	}

	updated, err := h.service.Update(id, Person{
		Name:   payload.Name,
		Age:    payload.Age,
		Gender: payload.Gender,
	})
	if err != nil {
		return respondStoreError(c, err)
	}

	return c.JSON(updated)
}

func (h *Handler) patchPerson(c *fiber.Ctx) error {
	id, err := parsePersonID(c)
	if err != nil {
		return notFound(c)
	}

	payload := new(patchPersonRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if err := validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(validationMessages(err))
	}

	// gender may be omitted, but not blanked
	if payload.Gender != nil && *payload.Gender == "" {
		return c.Status(fiber.StatusBadRequest).JSON(map[string][]string{"gender": {"is required"}})
	}

	existing, err := h.service.GetByID(id)
	if err != nil {
		return respondStoreError(c, err)
	}

	if payload.Name != nil {
		existing.Name = payload.Name
	}
	if payload.Age != nil {
		existing.Age = payload.Age
	}
	if payload.Gender != nil {
		existing.Gender = *payload.Gender
	}

	updated, err := h.service.Update(id, existing)
	if err != nil {
		return respondStoreError(c, err)
	}

	return c.JSON(updated)
}

func (h *Handler) deletePerson(c *fiber.Ctx) error {
	id, err := parsePersonID(c)
	if err != nil {
		return notFound(c)
	}

	if err := h.service.Delete(id); err != nil {
		return respondStoreError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// parsePersonID reads the :id route parameter. Non-numeric ids never resolve
// to a record, so callers treat a parse failure as not found.
func parsePersonID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": ErrNotFound.Error()})
}

func respondStoreError(c *fiber.Ctx, err error) error {
	switch err {
	case ErrNotFound:
		return notFound(c)
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
