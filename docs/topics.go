package docs

// this file handles
// documentation topics.

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.md
var topicFS embed.FS

// Get returns the content of a documentation topic. The special topic "*"
// expands to all topics.
func Get(topic string) (string, error) {
	if topic == "*" {
		topics, err := All()
		if err != nil {
			return "", err
		}
		return GetAll(topics...)
	}

	content, err := topicFS.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetAll returns the content of multiple topics concatenated together.
func GetAll(topics ...string) (string, error) {
	var b bytes.Buffer
	for _, topic := range topics {
		content, err := Get(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// All returns the list of available topics. The readme is the table of
// contents, not a topic itself.
func All() ([]string, error) {
	var topics []string
	err := fs.WalkDir(topicFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if base == "readme" {
			return nil
		}
		topics = append(topics, base)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(topics)
	return topics, nil
}
