package utils

import (
	"net"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct runs the tag-driven validation rules on obj.
func ValidateStruct(obj interface{}) error {
	return validate.Struct(obj)
}

// IsValidDatabaseHost validates a source host: localhost, IPv4, IPv6 or a
// plain domain name.
func IsValidDatabaseHost(host string) bool {
	if host == "" {
		return false
	}

	if strings.ToLower(host) == "localhost" {
		return true
	}

	if net.ParseIP(host) != nil {
		return true
	}

	// Domain name validation - basic check for valid characters
	if len(host) <= 253 {
		for _, char := range host {
			if !((char >= 'a' && char <= 'z') ||
				(char >= 'A' && char <= 'Z') ||
				(char >= '0' && char <= '9') ||
				char == '.' || char == '-' || char == '_') {
				return false
			}
		}
		// Shouldn't start or end with dot/hyphen
		if !strings.HasPrefix(host, ".") && !strings.HasSuffix(host, ".") &&
			!strings.HasPrefix(host, "-") && !strings.HasSuffix(host, "-") {
			return true
		}
	}

	return false
}
