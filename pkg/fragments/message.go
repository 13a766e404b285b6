// Package fragments renders small HTML fragments that htmx swaps into the
// page, starting with the inline message used for operation feedback and
// error reporting.
package fragments

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/yuin/goldmark"

	"github.com/hxkit/hxkit/pkg/hxpipe"
	"github.com/hxkit/hxkit/pkg/sanitizer"
)

//go:embed templates/inline_msg.html
var templatesFS embed.FS

var inlineMsgTemplate = template.Must(template.ParseFS(templatesFS, "templates/inline_msg.html"))

var markdown = goldmark.New()

// MessageConfig configures an inline message response.
type MessageConfig struct {
	Status     int            // HTTP status code (default: 200)
	Style      string         // extra css classes on the fragment
	Target     string         // swap target container selector
	Processors map[string]any // pending ops to register; override the defaults
	Markdown   bool           // render the message body as markdown
}

// MessageOption configures MessageConfig.
type MessageOption func(*MessageConfig)

// WithStatus sets the HTTP status code of the message response.
func WithStatus(status int) MessageOption {
	return func(cfg *MessageConfig) {
		cfg.Status = status
	}
}

// WithStyle adds css classes to the message fragment.
func WithStyle(style string) MessageOption {
	return func(cfg *MessageConfig) {
		cfg.Style = style
	}
}

// WithTarget sets the swap target container selector.
func WithTarget(target string) MessageOption {
	return func(cfg *MessageConfig) {
		cfg.Target = target
	}
}

// WithProcessors registers additional pending operations alongside the
// message. Caller operations override the default insert-at-beginning swap.
func WithProcessors(processors map[string]any) MessageOption {
	return func(cfg *MessageConfig) {
		cfg.Processors = processors
	}
}

// WithMarkdown renders the message body as markdown before sanitizing.
func WithMarkdown() MessageOption {
	return func(cfg *MessageConfig) {
		cfg.Markdown = true
	}
}

type messageContext struct {
	Msg    template.HTML
	Class  string
	Target string
}

// Message writes the inline message fragment as the response. Before
// rendering it registers a default insert-at-beginning swap directive on the
// request's pending operations, so the fragment lands at the top of the
// target instead of replacing it; caller-supplied processors override that
// default. The message body is sanitized, so it may safely contain markup
// derived from user input.
func Message(w http.ResponseWriter, r *http.Request, msg string, opts ...MessageOption) error {
	cfg := &MessageConfig{Status: http.StatusOK}
	for _, opt := range opts {
		opt(cfg)
	}

	processors := map[string]any{"reswap": "afterbegin"}
	for name, args := range cfg.Processors {
		processors[name] = args
	}
	hxpipe.Register(r, processors)

	body, err := renderBody(msg, cfg.Markdown)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	err = inlineMsgTemplate.Execute(&buf, messageContext{
		Msg:    body,
		Class:  cfg.Style,
		Target: cfg.Target,
	})
	if err != nil {
		return fmt.Errorf("fragments: render inline message: %w", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(cfg.Status)
	_, err = w.Write(buf.Bytes())
	return err
}

// Render writes the fragment without touching pending operations or the
// request. Used where the pipeline is managed separately, e.g. the 404
// substitution middleware.
func Render(out io.Writer, msg, style, target string) error {
	body, err := renderBody(msg, false)
	if err != nil {
		return err
	}
	return inlineMsgTemplate.Execute(out, messageContext{
		Msg:    body,
		Class:  style,
		Target: target,
	})
}

func renderBody(msg string, useMarkdown bool) (template.HTML, error) {
	if useMarkdown {
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(msg), &buf); err != nil {
			return "", fmt.Errorf("fragments: render markdown: %w", err)
		}
		msg = buf.String()
	}
	// Sanitized content is safe to mark as HTML.
	return template.HTML(sanitizer.SanitizeMessage(msg)), nil
}
