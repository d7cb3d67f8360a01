// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFeed reads the content feed file. Fields missing from the file keep
// their values from DefaultFeed.
func LoadFeed(path string) (*Feed, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content feed file: %w", err)
	}
	return ParseFeed(file)
}

// ParseFeed decodes a content feed from JSON.
func ParseFeed(data []byte) (*Feed, error) {
	feed := DefaultFeed()
	if err := json.Unmarshal(data, feed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal content feed: %w", err)
	}
	return feed, nil
}
