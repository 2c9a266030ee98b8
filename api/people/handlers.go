package people

import (
	"errors"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/artefakt/archive-api/api/types"
	"github.com/artefakt/archive-api/internal/models"
	"github.com/artefakt/archive-api/internal/services/people"
)

// CreateRequest is the payload for registering a person
type CreateRequest struct {
	Name string `json:"name" binding:"required"`
}

// List returns known people, optionally filtered by a name search
// @Summary List people
// @Tags people
// @Produce json
// @Param search query string false "Name substring"
// @Success 200 {object} types.PeopleResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /api/v1/people [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		results, err := deps.PeopleService.ListPeople(c.Request.Context(), c.Query("search"))
		if err != nil {
			log.Printf("[ERROR] Failed to list people: %v", err)
			types.SendInternalError(c, "Failed to list people")
			return
		}

		c.JSON(200, types.PeopleResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			People:       types.ToPeople(results),
			Count:        len(results),
		})
	}
}

// Create registers a new person
// @Summary Create a person
// @Tags people
// @Accept json
// @Produce json
// @Param person body CreateRequest true "Person"
// @Success 201 {object} types.SinglePersonResponse
// @Failure 400 {object} types.ErrorResponse
// @Router /api/v1/people [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		person := &models.Person{Name: strings.TrimSpace(req.Name)}
		if err := deps.PeopleService.CreatePerson(c.Request.Context(), person); err != nil {
			log.Printf("[DEBUG] Person create rejected: %v", err)
			types.SendBadRequest(c, err.Error())
			return
		}

		result := types.ToPerson(person)
		c.JSON(201, types.SinglePersonResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Person created"},
			Person:       &result,
		})
	}
}

// Get returns one person by ID
// @Summary Get a person
// @Tags people
// @Produce json
// @Param id path int true "Person ID"
// @Success 200 {object} types.SinglePersonResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/people/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		person, err := deps.PeopleService.GetPersonByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, people.ErrPersonNotFound) {
				types.SendNotFound(c, "Person not found")
				return
			}
			log.Printf("[ERROR] Failed to get person %d: %v", id, err)
			types.SendInternalError(c, "Failed to get person")
			return
		}

		result := types.ToPerson(person)
		c.JSON(200, types.SinglePersonResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Person:       &result,
		})
	}
}

// Delete removes a person
// @Summary Delete a person
// @Tags people
// @Produce json
// @Param id path int true "Person ID"
// @Success 200 {object} types.BaseResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/people/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.PeopleService.DeletePerson(c.Request.Context(), id); err != nil {
			if errors.Is(err, people.ErrPersonNotFound) {
				types.SendNotFound(c, "Person not found")
				return
			}
			log.Printf("[ERROR] Failed to delete person %d: %v", id, err)
			types.SendInternalError(c, "Failed to delete person")
			return
		}

		types.SendSuccess(c, types.BaseResponse{Status: types.StatusOK, Message: "Person deleted"})
	}
}
