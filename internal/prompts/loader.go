// Package prompts provides the externalized LLM prompt templates for
// document classification and field extraction. Templates are stored as one
// JSON file embedded at compile time and parsed once.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed extraction.json
var promptFiles embed.FS

const promptFile = "extraction.json"

var (
	loadOnce sync.Once
	loaded   map[string]string
	loadErr  error
)

func load() (map[string]string, error) {
	loadOnce.Do(func() {
		data, err := promptFiles.ReadFile(promptFile)
		if err != nil {
			loadErr = fmt.Errorf("failed to read prompt file %s: %w", promptFile, err)
			return
		}
		if err := json.Unmarshal(data, &loaded); err != nil {
			loadErr = fmt.Errorf("failed to parse prompt file %s: %w", promptFile, err)
		}
	})
	return loaded, loadErr
}

// Get retrieves a prompt template by key.
// Returns an error if the key is not found.
func Get(key string) (string, error) {
	templates, err := load()
	if err != nil {
		return "", err
	}

	template, exists := templates[key]
	if !exists {
		return "", fmt.Errorf("prompt key %q not found in %s", key, promptFile)
	}
	return template, nil
}

// MustGet retrieves a prompt template by key, panicking if not found. The
// embedded templates are fixed at build time, so a miss is a programming error.
func MustGet(key string) string {
	template, err := Get(key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return template
}

// Format replaces template placeholders in the form {{.Key}} with values from data.
// This is a simple template system for prompt customization.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}

// List returns all available prompt keys.
func List() ([]string, error) {
	templates, err := load()
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(templates))
	for key := range templates {
		keys = append(keys, key)
	}
	return keys, nil
}
