package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"studio-console-backend/models"
	"studio-console-backend/stores"
	"studio-console-backend/utils"
)

// CustomerController serves the customer collection and its list views.
type CustomerController struct {
	Customers *stores.CustomerStore
}

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	Name            string              `json:"name" binding:"required"`
	Phone           string              `json:"phone" binding:"required"`
	Email           string              `json:"email"`
	Address         string              `json:"address"`
	Age             int                 `json:"age"`
	Height          int                 `json:"height"`
	Weight          int                 `json:"weight"`
	Occupation      string              `json:"occupation"`
	HairType        string              `json:"hairType"`
	HairColor       string              `json:"hairColor"`
	SkinCondition   string              `json:"skinCondition"`
	BusinessType    models.BusinessType `json:"businessType" binding:"required"`
	Notes           string              `json:"notes"`
	FieldVisibility map[string]bool     `json:"fieldVisibility"`
}

// UpdateCustomerInput defines the expected JSON structure for updating a customer
type UpdateCustomerInput struct {
	Name            *string              `json:"name"`
	Phone           *string              `json:"phone"`
	Email           *string              `json:"email"`
	Address         *string              `json:"address"`
	Age             *int                 `json:"age"`
	Height          *int                 `json:"height"`
	Weight          *int                 `json:"weight"`
	Occupation      *string              `json:"occupation"`
	HairType        *string              `json:"hairType"`
	HairColor       *string              `json:"hairColor"`
	SkinCondition   *string              `json:"skinCondition"`
	BusinessType    *models.BusinessType `json:"businessType"`
	Notes           *string              `json:"notes"`
	FieldVisibility map[string]bool      `json:"fieldVisibility"`
}

// Create adds a new customer record.
func (ctl *CustomerController) Create(c *gin.Context) {
	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}
	if !input.BusinessType.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid business type")
		return
	}

	customer := ctl.Customers.Add(models.Customer{
		Name:            input.Name,
		Phone:           input.Phone,
		Email:           input.Email,
		Address:         input.Address,
		Age:             input.Age,
		Height:          input.Height,
		Weight:          input.Weight,
		Occupation:      input.Occupation,
		HairType:        input.HairType,
		HairColor:       input.HairColor,
		SkinCondition:   input.SkinCondition,
		BusinessType:    input.BusinessType,
		Notes:           input.Notes,
		FieldVisibility: input.FieldVisibility,
	})

	c.JSON(http.StatusCreated, customer)
}

// List returns the filtered, paginated customer list. Query params: search,
// businessType, page, pageSize.
func (ctl *CustomerController) List(c *gin.Context) {
	ctl.Customers.SetSearchQuery(c.Query("search"))
	ctl.Customers.SetBusinessTypeFilter(models.BusinessType(c.Query("businessType")))

	pageSize := defaultListPageSize
	if raw := c.Query("pageSize"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			pageSize = n
		}
	}
	ctl.Customers.SetItemsPerPage(pageSize)

	page := 1
	if raw := c.Query("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			page = n
		}
	}
	ctl.Customers.SetPage(page)

	c.JSON(http.StatusOK, gin.H{
		"customers":      ctl.Customers.Paginated(),
		"totalPages":     ctl.Customers.TotalPages(),
		"totalCustomers": ctl.Customers.TotalCustomers(),
	})
}

// Get returns a single customer by id.
func (ctl *CustomerController) Get(c *gin.Context) {
	customer, ok := ctl.Customers.GetByID(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Update merges a partial update into a customer. A missing id is not an
// error; the mutation is simply dropped.
func (ctl *CustomerController) Update(c *gin.Context) {
	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != nil && !utils.ValidatePhone(*input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}
	if input.BusinessType != nil && !input.BusinessType.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid business type")
		return
	}

	id := c.Param("id")
	ctl.Customers.Update(id, stores.CustomerUpdate{
		Name:            input.Name,
		Phone:           input.Phone,
		Email:           input.Email,
		Address:         input.Address,
		Age:             input.Age,
		Height:          input.Height,
		Weight:          input.Weight,
		Occupation:      input.Occupation,
		HairType:        input.HairType,
		HairColor:       input.HairColor,
		SkinCondition:   input.SkinCondition,
		BusinessType:    input.BusinessType,
		Notes:           input.Notes,
		FieldVisibility: input.FieldVisibility,
	})

	if customer, ok := ctl.Customers.GetByID(id); ok {
		c.JSON(http.StatusOK, customer)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "No matching customer"})
}

// Delete removes a customer. Deleting an absent id succeeds.
func (ctl *CustomerController) Delete(c *gin.Context) {
	ctl.Customers.Delete(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}

const defaultListPageSize = 10
