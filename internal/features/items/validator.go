package items

import (
	"errors"
	"strings"
)

func ValidateCreateItem(req *CreateItemRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(req.Location) == "" {
		return errors.New("location is required")
	}
	if !validCategory(req.Category) {
		return errors.New("category must be one of: " + strings.Join(Categories, ", "))
	}
	if req.Status != StatusLost && req.Status != StatusFound {
		return errors.New("status must be lost or found")
	}
	if (req.Lat == nil) != (req.Lng == nil) {
		return errors.New("lat and lng must be provided together")
	}
	return nil
}

func ValidateStatusChange(status string) error {
	if status != StatusLost && status != StatusFound {
		return errors.New("status must be lost or found")
	}
	return nil
}

func validCategory(category string) bool {
	for _, c := range Categories {
		if category == c {
			return true
		}
	}
	return false
}
