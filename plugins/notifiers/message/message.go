package message

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/goto/approvals/domain"
)

//go:embed templates/*
var defaultTemplates embed.FS

// Renderer turns notification messages into text, preferring configured overrides over the embedded defaults
type Renderer struct {
	overrides map[string]string
}

func NewRenderer(messages domain.NotificationMessages) *Renderer {
	return &Renderer{overrides: messages.ByType()}
}

func (r *Renderer) Render(message domain.NotificationMessage) (string, error) {
	text, ok := r.overrides[message.Type]
	if !ok {
		return "", fmt.Errorf("template not found for message type %q", message.Type)
	}

	if text == "" {
		content, err := defaultTemplates.ReadFile(fmt.Sprintf("templates/%s.tmpl", message.Type))
		if err != nil {
			return "", fmt.Errorf("error finding default template for message type %q: %w", message.Type, err)
		}
		text = string(content)
	}

	t, err := template.New(message.Type).Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing template for message type %q: %w", message.Type, err)
	}

	var buff bytes.Buffer
	if err := t.Execute(&buff, message.Variables); err != nil {
		return "", fmt.Errorf("executing template for message type %q: %w", message.Type, err)
	}

	return strings.TrimSpace(buff.String()), nil
}
