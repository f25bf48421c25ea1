package handlers

import (
	"net/http"
	"strconv"

	"scoreboard/internal/service"

	"github.com/gin-gonic/gin"
)

// EventRequest is the payload of POST and PUT /api/events. ID is read only on PUT.
type EventRequest struct {
	ID          int    `json:"id,omitempty" example:"3"`
	Name        string `json:"name" example:"100m sprint"`
	Date        string `json:"date" example:"2024-03-01T09:00:00Z"`
	Description string `json:"description" example:"Under 15 boys final"`
}

func (r EventRequest) input() service.EventInput {
	return service.EventInput{Name: r.Name, Date: r.Date, Description: r.Description}
}

// listEvents godoc
// @Summary      List events
// @Tags         events
// @Produce      json
// @Success      200  {array}   models.Event
// @Failure      500  {object}  map[string]string
// @Router       /api/events [get]
func (h *Handler) listEvents(c *gin.Context) {
	events, err := h.services.Events.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, http.StatusNotFound, "Error fetching events", "events_list_failed")
		return
	}
	c.JSON(http.StatusOK, events)
}

// createEvent godoc
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        body  body      EventRequest  true  "event"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/events [post]
func (h *Handler) createEvent(c *gin.Context) {
	var input EventRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	id, err := h.services.Events.Create(c.Request.Context(), input.input())
	if err != nil {
		h.respondError(c, err, http.StatusNotFound, "Error creating event", "event_create_failed", "name", input.Name)
		return
	}
	if h.log != nil {
		h.log.Infow("event_created", "id", id, "name", input.Name)
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Event created successfully", "id": id})
}

// updateEvent godoc
// @Summary      Replace an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        body  body      EventRequest  true  "event with id"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/events [put]
func (h *Handler) updateEvent(c *gin.Context) {
	var input EventRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	if err := h.services.Events.Update(c.Request.Context(), input.ID, input.input()); err != nil {
		h.respondError(c, err, http.StatusNotFound, "Error updating event", "event_update_failed", "id", input.ID)
		return
	}
	if h.log != nil {
		h.log.Infow("event_updated", "id", input.ID)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event updated successfully"})
}

// deleteEvent godoc
// @Summary      Delete an event
// @Tags         events
// @Produce      json
// @Param        id   path      int  true  "event id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/events/{id} [delete]
func (h *Handler) deleteEvent(c *gin.Context) {
	// A non-numeric id becomes 0, which no event has.
	id, _ := strconv.Atoi(c.Param("id"))

	if err := h.services.Events.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, http.StatusNotFound, "Error deleting event", "event_delete_failed", "id", c.Param("id"))
		return
	}
	if h.log != nil {
		h.log.Infow("event_deleted", "id", id)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}
