package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"people-api/internal/domains/people/model"
	"people-api/internal/domains/people/service"
	"people-api/internal/shared/response"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /api/people?page=1&limit=10
// ════════════════════════════════════════════════════════════════

// List godoc
// @Summary  List people
// @Tags     people
// @Produce  json
// @Param    page   query  int  false  "1-based page"  default(1)
// @Param    limit  query  int  false  "page size"     default(10)
// @Success  200  {object}  model.ListPeopleResponse
// @Router   /people [get]
func (h *Handler) List(c *gin.Context) {
	log.Info().Msg("Enter in get list people")

	page := model.NewPageRequest(
		queryInt(c, "page", model.DefaultPage),
		queryInt(c, "limit", model.DefaultLimit),
	)

	people, err := h.svc.List(c.Request.Context(), page)
	if err != nil {
		h.writeError(c, err, 0)
		return
	}

	log.Info().Int("results", len(people)).Msg("Exit in get list people")
	response.SuccessList(c, "peoples", len(people), people)
}

// ════════════════════════════════════════════════════════════════
// READ: GET /api/people/:id
// ════════════════════════════════════════════════════════════════

// GetByID godoc
// @Summary  Get a person
// @Tags     people
// @Produce  json
// @Param    id  path  int  true  "person id"
// @Success  200  {object}  response.Envelope{data=model.GetPersonResponse}
// @Failure  404  {string}  string  "Not found"
// @Failure  500  {string}  string  "An error occurred"
// @Router   /people/{id} [get]
func (h *Handler) GetByID(c *gin.Context) {
	log.Info().Msg("Enter in get people")

	id, ok := h.parseID(c)
	if !ok {
		return
	}

	person, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, id)
		return
	}

	log.Info().Int32("id", id).Msg("Exit in get people")
	response.Success(c, http.StatusOK, model.GetPersonResponse{People: *person})
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /api/people
// ════════════════════════════════════════════════════════════════

// Create godoc
// @Summary  Create a person
// @Tags     people
// @Accept   json
// @Produce  plain
// @Param    person  body  model.PersonRequest  true  "person; id is ignored"
// @Success  200  {integer}  int  "id of the new person"
// @Failure  400  {object}  response.Envelope
// @Failure  500  {string}  string  "An error occurred"
// @Router   /people [post]
func (h *Handler) Create(c *gin.Context) {
	log.Info().Msg("Enter in create people")

	var body model.PersonRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		log.Error().Err(err).Msg("Invalid create body")
		response.BadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	req, err := body.ToView()
	if err != nil {
		h.writeError(c, err, 0)
		return
	}

	id, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, 0)
		return
	}

	log.Info().Int32("id", id).Msg("Exit in create people")
	response.ID(c, http.StatusOK, int64(id))
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /api/people/:id
// ════════════════════════════════════════════════════════════════

// Update godoc
// @Summary  Update a person
// @Tags     people
// @Accept   json
// @Produce  json
// @Param    id      path  int               true  "person id"
// @Param    person  body  model.PersonRequest  true  "new name, surname and age"
// @Success  200  {object}  response.Envelope
// @Failure  400  {object}  response.Envelope
// @Failure  404  {string}  string  "Not found"
// @Failure  500  {string}  string  "An error occurred"
// @Router   /people/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	log.Info().Msg("Enter in update people")

	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var body model.PersonRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		log.Error().Err(err).Msg("Invalid update body")
		response.BadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	req, err := body.ToView()
	if err != nil {
		h.writeError(c, err, 0)
		return
	}

	if err := h.svc.Update(c.Request.Context(), id, req); err != nil {
		h.writeError(c, err, id)
		return
	}

	log.Info().Int32("id", id).Msg("Exit in update people")
	response.SuccessStatus(c, http.StatusOK)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /api/people/:id
// ════════════════════════════════════════════════════════════════

// Delete godoc
// @Summary  Delete a person
// @Tags     people
// @Param    id  path  int  true  "person id"
// @Success  204
// @Failure  404  {string}  string  "Not found"
// @Failure  500  {string}  string  "An error occurred"
// @Router   /people/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	log.Info().Msg("Enter in delete people")

	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err, id)
		return
	}

	log.Info().Int32("id", id).Msg("Exit in delete people")
	response.NoContent(c)
}

// ════════════════════════════════════════════════════════════════
// HELPERS
// ════════════════════════════════════════════════════════════════

func (h *Handler) parseID(c *gin.Context) (int32, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		log.Error().Str("id", c.Param("id")).Msg("Invalid person id")
		response.BadRequest(c, model.ErrInvalidID.Error())
		return 0, false
	}
	return int32(id), true
}

// writeError maps a classified error to its envelope and status.
func (h *Handler) writeError(c *gin.Context, err error, id int32) {
	status := model.ToHTTPStatus(err)

	switch model.KindOf(err) {
	case model.KindNotFound:
		log.Error().Int32("id", id).Msg("People not found")
		response.Fail(c, status, fmt.Sprintf("Person with ID: %d not found", id))
	case model.KindDuplicate:
		log.Error().Err(err).Msg("People already exist")
		response.Fail(c, status, "Person already exists")
	case model.KindValidation:
		log.Error().Err(err).Msg("Invalid people input")
		response.Fail(c, status, err.Error())
	default:
		log.Error().Err(err).Msg("Internal server error")
		response.Error(c, status, fmt.Sprintf("Internal server error: %v", err))
	}
}

// queryInt reads an integer query parameter, falling back to def when absent or malformed.
func queryInt(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
