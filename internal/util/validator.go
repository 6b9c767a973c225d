package util

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
)

// credit: https://github.com/go-playground/validator/issues/559#issuecomment-976459959

func msgForTag(fe validator.FieldError) string {
	// e.g. Config.PDF.TemplateBox.Width -> PDF.TemplateBox.Width
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%v is required", field)
	case "numeric":
		return fmt.Sprintf("%v must be numeric", field)
	case "min":
		return fmt.Sprintf("%v must have at least %v items", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%v must be greater than %v", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%v must be greater than or equal to %v", field, fe.Param())
	case "startswith":
		return fmt.Sprintf("%v must start with %v", field, fe.Param())
	}

	log.Printf("Unknown tag: %v with error: %v", fe.Tag(), fe.Error())
	return fe.Error() // default error
}

/*
Extract errors from validator and join them into one line
Example output: "PDF.TemplateBox.Width must be greater than 0; Port must be numeric"
*/
func GenerateErrorMessagesAsString(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, msgForTag(fe))
		}
		return strings.Join(msgs, "; ")
	}

	return err.Error()
}
