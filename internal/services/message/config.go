// File: internal/services/message/config.go
package message

import "fmt"

type Config struct {
	// Content filtering
	BlockedWords []string // terms replaced by asterisks, matched case-insensitively

	// Pagination bounds
	DefaultPageSize int // applied when a query omits limit
	MaxPageSize     int // upper bound for an explicit limit

	// Field limits
	MaxContentLength int
	MaxIDLength      int // applies to message_id and session_id
}

func (c *Config) Validate() error {
	if c.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be positive")
	}
	if c.MaxPageSize <= 0 {
		return fmt.Errorf("max_page_size must be positive")
	}
	if c.DefaultPageSize > c.MaxPageSize {
		return fmt.Errorf("default_page_size cannot exceed max_page_size")
	}
	if c.MaxContentLength <= 0 {
		return fmt.Errorf("max_content_length must be positive")
	}
	if c.MaxIDLength <= 0 {
		return fmt.Errorf("max_id_length must be positive")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		BlockedWords:     []string{"badword1", "badword2", "inappropriate", "offensive"},
		DefaultPageSize:  50,
		MaxPageSize:      100,
		MaxContentLength: 5000,
		MaxIDLength:      100,
	}
}
