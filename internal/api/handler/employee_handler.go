package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/presensia/employee-system/internal/core/domain"
	"github.com/presensia/employee-system/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for employee CRUD. Every route it
// serves sits behind the Auth and RBAC middleware.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// --- Request / Response types ---

// statusResponse is the envelope for mutations: status mirrors the HTTP code.
type statusResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

type dataResponse struct {
	Data []domain.Employee `json:"data"`
}

type createEmployeeRequest struct {
	Name       string    `json:"name" validate:"required"`
	Birthday   time.Time `json:"birthday" validate:"required"`
	BirthPlace string    `json:"birth_place" validate:"required"`
	NIK        int64     `json:"nik" validate:"required,gt=0"`
	Position   string    `json:"position" validate:"required"`
	DateHired  time.Time `json:"date_hired" validate:"required"`
}

type updateEmployeeRequest struct {
	Name       string    `json:"name" validate:"required"`
	Birthday   time.Time `json:"birthday" validate:"required"`
	BirthPlace string    `json:"birth_place" validate:"required"`
	Position   string    `json:"position" validate:"required"`
}

// nikParam parses the :nik path segment. NIK is numeric; anything else is a
// client error before any store access.
func nikParam(c echo.Context) (int64, error) {
	nik, err := strconv.ParseInt(c.Param("nik"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "nik must be an integer")
	}
	return nik, nil
}

// List handles GET /employee — unconditional full scan.
//
// @Summary      List all employees
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dataResponse
// @Failure      400  {object}  statusResponse
// @Failure      500  {object}  statusResponse
// @Router       /employee [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if employees == nil {
		employees = []domain.Employee{}
	}

	return c.JSON(http.StatusOK, dataResponse{Data: employees})
}

// Get handles GET /employee/:nik. A missing row is an explicit not-found
// error; a found row is returned as a one-element list to keep the envelope
// shape uniform with List.
//
// @Summary      Get an employee by NIK
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        nik  path      int  true  "National identity number"
// @Success      200  {object}  dataResponse
// @Failure      400  {object}  statusResponse
// @Failure      500  {object}  statusResponse
// @Router       /employee/{nik} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	nik, err := nikParam(c)
	if err != nil {
		return err
	}

	employee, err := h.service.GetByNIK(c.Request().Context(), nik)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Data: []domain.Employee{*employee}})
}

// Create handles POST /employee.
//
// @Summary      Create a new employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEmployeeRequest  true  "Employee details"
// @Success      200   {object}  statusResponse
// @Failure      400   {object}  statusResponse
// @Failure      500   {object}  statusResponse
// @Router       /employee [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.Create(c.Request().Context(), ports.EmployeeInput{
		Name:       req.Name,
		Birthday:   req.Birthday,
		BirthPlace: req.BirthPlace,
		NIK:        req.NIK,
		Position:   req.Position,
		DateHired:  req.DateHired,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statusResponse{Status: http.StatusOK, Message: "Added"})
}

// Update handles PUT /employee/:nik — a full overwrite of the four mutable
// fields. NIK itself is immutable.
//
// @Summary      Update an employee by NIK
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        nik   path      int                    true  "National identity number"
// @Param        body  body      updateEmployeeRequest  true  "Fields to overwrite"
// @Success      200   {object}  statusResponse
// @Failure      400   {object}  statusResponse
// @Failure      500   {object}  statusResponse
// @Router       /employee/{nik} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	nik, err := nikParam(c)
	if err != nil {
		return err
	}

	var req updateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err = h.service.Update(c.Request().Context(), nik, ports.EmployeeUpdate{
		Name:       req.Name,
		Birthday:   req.Birthday,
		BirthPlace: req.BirthPlace,
		Position:   req.Position,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statusResponse{
		Status:  http.StatusOK,
		Message: fmt.Sprintf("Employee with NIK: %d has been updated!", nik),
	})
}

// Delete handles DELETE /employee/:nik and reports the affected row count.
//
// @Summary      Delete an employee by NIK
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        nik  path      int  true  "National identity number"
// @Success      200  {object}  statusResponse
// @Failure      400  {object}  statusResponse
// @Failure      500  {object}  statusResponse
// @Router       /employee/{nik} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	nik, err := nikParam(c)
	if err != nil {
		return err
	}

	rows, err := h.service.Delete(c.Request().Context(), nik)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statusResponse{
		Status:  http.StatusOK,
		Message: fmt.Sprintf("%d employee(s) with NIK: %d deleted!", rows, nik),
	})
}
