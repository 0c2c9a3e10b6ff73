package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pulsepoint/wellness-api/internal/api/metrics"
	"github.com/pulsepoint/wellness-api/internal/core/domain"
	"github.com/pulsepoint/wellness-api/internal/core/ports"
)

// HeaderIdempotencyKey lets clients retry a submission without duplicating it.
const HeaderIdempotencyKey = "Idempotency-Key"

type EntryHandler struct {
	entries ports.EntryService
	stats   ports.StatsService
}

func NewEntryHandler(entries ports.EntryService, stats ports.StatsService) *EntryHandler {
	return &EntryHandler{entries: entries, stats: stats}
}

// List returns the caller's entries.
//
// @Summary      List own health entries
// @Tags         healthentries
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.HealthEntry
// @Failure      401  {object}  map[string]string
// @Router       /api/healthentries [get]
func (h *EntryHandler) List(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	list, err := h.entries.List(c.Request().Context(), p.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Get returns one of the caller's entries.
//
// @Summary      Get a health entry
// @Tags         healthentries
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Entry ID"
// @Success      200  {object}  domain.HealthEntry
// @Failure      404  {object}  map[string]string
// @Router       /api/healthentries/{id} [get]
func (h *EntryHandler) Get(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	entry, err := h.entries.Get(c.Request().Context(), id, p.UserID)
	if err != nil {
		return entryError(c, err)
	}
	return c.JSON(http.StatusOK, entry)
}

// Create stores today's submission for the caller. A repeated
// Idempotency-Key returns the original entry with 200.
//
// @Summary      Submit a health entry
// @Tags         healthentries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string          false  "Client retry key"
// @Param        body             body      metricsRequest  true   "Metrics, each 1-5"
// @Success      201              {object}  domain.HealthEntry
// @Success      200              {object}  domain.HealthEntry
// @Failure      400              {object}  validationResponse
// @Router       /api/healthentries [post]
func (h *EntryHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	var req metricsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validationResponse{Error: domain.ErrMetricOutOfRange.Error(), Reasons: []string{err.Error()}})
	}

	res, err := h.entries.Create(c.Request().Context(), ports.CreateEntryInput{
		UserID:         p.UserID,
		Metrics:        req.toDomain(),
		IdempotencyKey: c.Request().Header.Get(HeaderIdempotencyKey),
	})
	if err != nil {
		return entryError(c, err)
	}

	metrics.EntriesSubmittedTotal.WithLabelValues(strconv.FormatBool(res.Replayed)).Inc()
	if res.Replayed {
		return c.JSON(http.StatusOK, res.Entry)
	}
	return c.JSON(http.StatusCreated, res.Entry)
}

// Update overwrites the metrics of one of the caller's entries.
//
// @Summary      Update a health entry
// @Tags         healthentries
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int             true  "Entry ID"
// @Param        body  body  metricsRequest  true  "Metrics, each 1-5"
// @Success      204
// @Failure      400   {object}  validationResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/healthentries/{id} [put]
func (h *EntryHandler) Update(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req metricsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validationResponse{Error: domain.ErrMetricOutOfRange.Error(), Reasons: []string{err.Error()}})
	}

	if err := h.entries.Update(c.Request().Context(), id, p.UserID, req.toDomain()); err != nil {
		return entryError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes one of the caller's entries.
//
// @Summary      Delete a health entry
// @Tags         healthentries
// @Security     BearerAuth
// @Param        id  path  int  true  "Entry ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/healthentries/{id} [delete]
func (h *EntryHandler) Delete(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.entries.Delete(c.Request().Context(), id, p.UserID); err != nil {
		return entryError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DailyStats returns per-day averages for the manager's workplace.
//
// @Summary      Daily workplace stats
// @Tags         healthentries
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.DailyStats
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/healthentries/stats/daily [get]
func (h *EntryHandler) DailyStats(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	stats, err := h.stats.GetDailyStatsForWorkplace(c.Request().Context(), p.UserID)
	if err != nil {
		return err
	}
	metrics.StatsDaysReturned.Observe(float64(len(stats)))
	if len(stats) == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no data found or invalid manager"})
	}
	return c.JSON(http.StatusOK, stats)
}

func entryError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrEntryNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": domain.ErrEntryNotFound.Error()})
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return writeValidation(c, ve)
	}
	return err
}
