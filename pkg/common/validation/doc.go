// Package validation provides common validation utilities for the goadmit library.
package validation
