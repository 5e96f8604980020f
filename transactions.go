package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Transaction handler functions

// transactionRequest is the write shape for creating a transaction.
type transactionRequest struct {
	Description string   `json:"description"`
	Amount      float64  `json:"amount"`
	Date        string   `json:"date"` // YYYY-MM-DD
	Status      string   `json:"status"`
	DueDate     *string  `json:"due_date"`
	CategoryID  *string  `json:"category_id"`
	TaxAmount   *float64 `json:"tax_amount"`
}

// @Summary List transactions
// @Description Retrieve the owner's transactions for a period, optionally narrowed by status or category
// @Tags transactions
// @Produce json
// @Param X-Owner-ID header string true "Owner identifier"
// @Param period query string false "Period token"
// @Param start_date query string false "Custom period start (YYYY-MM-DD)"
// @Param end_date query string false "Custom period end (YYYY-MM-DD)"
// @Param status query string false "Filter by status (paid, unpaid)"
// @Param category_id query string false "Filter by category ID"
// @Success 200 {array} Transaction "List of transactions"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transactions [get]
func getTransactions(c *gin.Context) {
	ownerID, ok := ownerFromRequest(c)
	if !ok {
		return
	}
	p, err := periodFromRequest(c, timeNow())
	if err != nil {
		respondReportError(c, err)
		return
	}

	filter := &TransactionFilter{
		Status:     c.Query("status"),
		CategoryID: c.Query("category_id"),
	}
	if filter.Status != "" && filter.Status != StatusPaid && filter.Status != StatusUnpaid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
		return
	}

	transactions, err := store.FetchTransactions(c.Request.Context(), ownerID, p.StartDate, p.EndDate, filter)
	if err != nil {
		log.Printf("Error fetching transactions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching transactions"})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// @Summary Create transaction
// @Description Record a new transaction. Positive amounts are income, negative amounts are expenses; zero amounts are rejected.
// @Tags transactions
// @Accept json
// @Produce json
// @Param X-Owner-ID header string true "Owner identifier"
// @Param transaction body transactionRequest true "Transaction data"
// @Success 201 {object} Transaction "Created transaction"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transactions [post]
func createTransaction(c *gin.Context) {
	ownerID, ok := ownerFromRequest(c)
	if !ok {
		return
	}

	var request transactionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validateDescription(request.Description); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if request.Amount == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount cannot be zero"})
		return
	}

	date, err := time.Parse("2006-01-02", request.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	status := request.Status
	if status == "" {
		status = StatusPaid
	}
	if status != StatusPaid && status != StatusUnpaid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	transaction := Transaction{
		Description: request.Description,
		Amount:      request.Amount,
		Date:        date,
		Status:      status,
		CategoryID:  request.CategoryID,
		TaxAmount:   request.TaxAmount,
	}
	if request.DueDate != nil {
		dueDate, err := time.Parse("2006-01-02", *request.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid due_date, expected YYYY-MM-DD"})
			return
		}
		transaction.DueDate = &dueDate
	}

	created, err := store.InsertTransaction(c.Request.Context(), ownerID, transaction)
	if err != nil {
		log.Printf("Error creating transaction: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary Update transaction status
// @Description Mark a transaction as paid or unpaid
// @Tags transactions
// @Accept json
// @Produce json
// @Param X-Owner-ID header string true "Owner identifier"
// @Param id path string true "Transaction ID"
// @Param status body object{status=string} true "New status (paid or unpaid)"
// @Success 200 {object} Transaction "Updated transaction"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Transaction not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transactions/{id}/status [put]
func updateTransactionStatus(c *gin.Context) {
	ownerID, ok := ownerFromRequest(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var request struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if request.Status != StatusPaid && request.Status != StatusUnpaid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	transaction, err := store.UpdateTransactionStatus(c.Request.Context(), ownerID, id, request.Status)
	if err != nil {
		if errors.Is(err, errNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		log.Printf("Error updating transaction status: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// @Summary Delete transaction
// @Description Delete a specific transaction by ID
// @Tags transactions
// @Produce json
// @Param X-Owner-ID header string true "Owner identifier"
// @Param id path string true "Transaction ID"
// @Success 200 {object} map[string]interface{} "Transaction deleted successfully"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Transaction not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transactions/{id} [delete]
func deleteTransaction(c *gin.Context) {
	ownerID, ok := ownerFromRequest(c)
	if !ok {
		return
	}

	err := store.DeleteTransaction(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		if errors.Is(err, errNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		log.Printf("Error deleting transaction: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
