package main

import (
	"fmt"
	"net/http"
	"strings"
)

// Validation functions

// validateName validates that a name is not empty or just whitespace
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}

// validateDescription validates that a description is not empty or just whitespace
func validateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("description cannot be empty")
	}
	return nil
}

// handleDatabaseError converts database errors to appropriate HTTP responses
func handleDatabaseError(err error) (statusCode int, message string) {
	errorStr := err.Error()

	// Check for unique constraint violations
	if strings.Contains(errorStr, "duplicate key value violates unique constraint") {
		if strings.Contains(errorStr, "categories_owner_id_name_key") {
			return http.StatusConflict, "Category with this name already exists"
		}
		return http.StatusConflict, "Resource already exists"
	}

	// Check for foreign key violations (bad category or parent reference)
	if strings.Contains(errorStr, "violates foreign key constraint") {
		return http.StatusBadRequest, "Referenced resource does not exist"
	}

	// Check for check constraint violations (zero amount, bad status or type)
	if strings.Contains(errorStr, "violates check constraint") {
		return http.StatusBadRequest, "Invalid field value"
	}

	// Check for not found errors
	if strings.Contains(errorStr, "no rows in result set") {
		return http.StatusNotFound, "Resource not found"
	}

	// Default to internal server error
	return http.StatusInternalServerError, "Internal server error"
}
