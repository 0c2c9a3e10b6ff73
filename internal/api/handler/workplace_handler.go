package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulsepoint/wellness-api/internal/core/domain"
	"github.com/pulsepoint/wellness-api/internal/core/ports"
)

type WorkplaceHandler struct {
	workplaces ports.WorkplaceService
}

func NewWorkplaceHandler(workplaces ports.WorkplaceService) *WorkplaceHandler {
	return &WorkplaceHandler{workplaces: workplaces}
}

// List is public so the registration form can offer a workplace picker.
//
// @Summary      List workplaces
// @Tags         workplaces
// @Produce      json
// @Success      200  {array}  domain.Workplace
// @Router       /api/workplaces [get]
func (h *WorkplaceHandler) List(c echo.Context) error {
	list, err := h.workplaces.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// @Summary      Get a workplace
// @Tags         workplaces
// @Produce      json
// @Param        id   path      int  true  "Workplace ID"
// @Success      200  {object}  domain.Workplace
// @Failure      404  {object}  map[string]string
// @Router       /api/workplaces/{id} [get]
func (h *WorkplaceHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	w, err := h.workplaces.Get(c.Request().Context(), id)
	if err != nil {
		return workplaceError(c, err)
	}
	return c.JSON(http.StatusOK, w)
}

// @Summary      Create a workplace
// @Tags         workplaces
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      workplaceRequest  true  "Workplace"
// @Success      201   {object}  domain.Workplace
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/workplaces [post]
func (h *WorkplaceHandler) Create(c echo.Context) error {
	var req workplaceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	w, err := h.workplaces.Create(c.Request().Context(), req.Name)
	if err != nil {
		return workplaceError(c, err)
	}
	return c.JSON(http.StatusCreated, w)
}

// @Summary      Rename a workplace
// @Tags         workplaces
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int               true  "Workplace ID"
// @Param        body  body  workplaceRequest  true  "Workplace"
// @Success      204
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/workplaces/{id} [put]
func (h *WorkplaceHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req workplaceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.workplaces.Update(c.Request().Context(), id, req.Name); err != nil {
		return workplaceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// @Summary      Delete a workplace
// @Tags         workplaces
// @Security     BearerAuth
// @Param        id  path  int  true  "Workplace ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/workplaces/{id} [delete]
func (h *WorkplaceHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.workplaces.Delete(c.Request().Context(), id); err != nil {
		return workplaceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func workplaceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrWorkplaceNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": domain.ErrWorkplaceNotFound.Error()})
	case errors.Is(err, domain.ErrWorkplaceNameTaken):
		return c.JSON(http.StatusConflict, map[string]string{"error": domain.ErrWorkplaceNameTaken.Error()})
	case errors.Is(err, domain.ErrWorkplaceInUse):
		return c.JSON(http.StatusConflict, map[string]string{"error": domain.ErrWorkplaceInUse.Error()})
	case errors.Is(err, domain.ErrInvalidWorkplaceName):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": domain.ErrInvalidWorkplaceName.Error()})
	}
	return err
}
