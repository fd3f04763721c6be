package parser

import (
	_ "embed"
	"log"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed messages.yaml
var rawMessages []byte

var messages map[string]string

func init() {
	if err := yaml.Unmarshal(rawMessages, &messages); err != nil {
		log.Fatalf("parser: broken messages.yaml: %v", err)
	}
}

// GetMessage returns the reply template for key with every {name}
// placeholder replaced from vars. Unknown keys return the key itself so
// a missing template shows up in chat instead of an empty line.
func GetMessage(key string, vars map[string]string) string {
	text, ok := messages[key]
	if !ok {
		return key
	}
	for name, value := range vars {
		text = strings.ReplaceAll(text, "{"+name+"}", value)
	}
	return text
}
