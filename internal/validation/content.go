package validation

import (
	"fmt"
	"net/url"
)

// ValidateSkillName checks skill catalog name bounds.
func ValidateSkillName(name string) error {
	if len(name) < 2 {
		return fmt.Errorf("skill name must be at least 2 characters long")
	}
	if len(name) > 50 {
		return fmt.Errorf("skill name must not exceed 50 characters")
	}
	return nil
}

// ValidateSkillLevel checks the 1-5 proficiency range.
func ValidateSkillLevel(level int) error {
	if level < 1 || level > 5 {
		return fmt.Errorf("skill level must be between 1 and 5")
	}
	return nil
}

// ValidateTitle checks title bounds shared by resources and posts.
func ValidateTitle(title string) error {
	if len(title) < 2 {
		return fmt.Errorf("title must be at least 2 characters long")
	}
	if len(title) > 100 {
		return fmt.Errorf("title must not exceed 100 characters")
	}
	return nil
}

// ValidateDescription checks the optional description length.
func ValidateDescription(description string) error {
	if len(description) > 500 {
		return fmt.Errorf("description must not exceed 500 characters")
	}
	return nil
}

// ValidateMessage checks the optional connection request message length.
func ValidateMessage(message string) error {
	if len(message) > 300 {
		return fmt.Errorf("message must not exceed 300 characters")
	}
	return nil
}

// ValidateURL checks that an optional resource URL is absolute http(s).
func ValidateURL(raw string) error {
	if raw == "" {
		return nil
	}
	if len(raw) > 200 {
		return fmt.Errorf("url must not exceed 200 characters")
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("url must be a valid http(s) address")
	}
	return nil
}
