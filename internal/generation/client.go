// Package generation is the boundary to the hosted Gemini API. It turns
// domain requests into schema-constrained GenerateContent calls and validates
// what comes back before anything else sees it.
package generation

import (
	"context"
	"strings"
	"time"

	"codemaster/internal/config"
	"codemaster/internal/errors"
	"codemaster/internal/logging"
	"codemaster/internal/metrics"
	"codemaster/internal/types"

	"google.golang.org/genai"
)

// ContentGenerator is the one method of the genai Models service this package
// needs. (*genai.Client).Models satisfies it; tests substitute a fake.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Options configures a Client.
type Options struct {
	APIKey  string
	BaseURL string
	Model   string

	// Timeout bounds each call. Zero leaves it to the network stack.
	Timeout time.Duration

	// Temperature is sent only when > 0.
	Temperature float32

	MaxUseCases int
	MaxTools    int

	// SendHistory resends prior chat turns with each message.
	SendHistory bool

	Metrics *metrics.Metrics
}

// OptionsFromConfig maps the config file onto client options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		APIKey:      cfg.Generation.APIKey,
		BaseURL:     cfg.Generation.BaseURL,
		Model:       cfg.Generation.Model,
		Timeout:     cfg.GetTimeout(),
		Temperature: cfg.Generation.Temperature,
		MaxUseCases: cfg.Generation.MaxUseCases,
		MaxTools:    cfg.Generation.MaxTools,
		SendHistory: cfg.Chat.SendHistory,
	}
}

// Client issues guide, roadmap and chat requests. It holds no per-request
// state and is safe for concurrent use; construct one per process.
type Client struct {
	gen  ContentGenerator
	opts Options
}

// New creates a Client backed by the Gemini API.
func New(ctx context.Context, opts Options) (*Client, error) {
	if opts.APIKey == "" {
		return nil, errors.Mark(errors.New("generation API key is required"), errors.ErrInvalidConfig)
	}

	cc := &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if opts.BaseURL != "" {
		cc.HTTPOptions.BaseURL = opts.BaseURL
	}
	if opts.Timeout > 0 {
		cc.HTTPOptions.Timeout = genai.Ptr(opts.Timeout)
	}

	gc, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create GenAI client")
	}
	return NewWithGenerator(gc.Models, opts), nil
}

// NewWithGenerator creates a Client over an arbitrary ContentGenerator.
func NewWithGenerator(gen ContentGenerator, opts Options) *Client {
	if strings.TrimSpace(opts.Model) == "" {
		opts.Model = config.DefaultModel
	}
	if opts.MaxUseCases <= 0 {
		opts.MaxUseCases = 3
	}
	if opts.MaxTools <= 0 {
		opts.MaxTools = 4
	}
	return &Client{
		gen:  Instrument(gen, opts.Metrics),
		opts: opts,
	}
}

// Model returns the model name requests are sent to.
func (c *Client) Model() string {
	return c.opts.Model
}

// SendsHistory reports whether Converse transmits prior turns.
func (c *Client) SendsHistory() bool {
	return c.opts.SendHistory
}

func (c *Client) baseConfig() *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if c.opts.Temperature > 0 {
		cfg.Temperature = genai.Ptr(c.opts.Temperature)
	}
	return cfg
}

func (c *Client) structuredConfig(schema *genai.Schema) *genai.GenerateContentConfig {
	cfg := c.baseConfig()
	cfg.ResponseMIMEType = jsonMIMEType
	cfg.ResponseSchema = schema
	return cfg
}

// generate issues exactly one call. No retries: a failure surfaces as-is.
func (c *Client) generate(ctx context.Context, op string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	ctx = WithOperation(ctx, op)
	resp, err := c.gen.GenerateContent(ctx, c.opts.Model, contents, cfg)
	if err != nil {
		return "", errors.Mark(errors.Wrapf(err, "%s request", op), errors.ErrExternalService)
	}
	if resp == nil {
		return "", nil
	}
	return resp.Text(), nil
}

// FetchLanguageGuide asks for a structured guide to an unknown language.
func (c *Client) FetchLanguageGuide(ctx context.Context, query string, loc types.Locale) (*LanguageGuide, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.Wrap(errors.ErrEmptyInput, "language guide")
	}

	prompt := guidePrompt(query, loc, c.opts.MaxUseCases, c.opts.MaxTools)
	text, err := c.generate(ctx, OpGuide, genai.Text(prompt), c.structuredConfig(guideSchema()))
	if err != nil {
		return nil, err
	}

	guide, err := decodeGuide(text)
	if err != nil {
		logging.APIError("guide for %q did not decode: %v", query, err)
		return nil, errors.Wrapf(err, "language guide for %q", query)
	}
	logging.APIDebug("guide for %q: %s", query, guide)
	return guide, nil
}

// GenerateRoadmap turns a free-text project idea into a structured roadmap.
func (c *Client) GenerateRoadmap(ctx context.Context, idea string, loc types.Locale) (*types.ProjectRoadmap, error) {
	idea = strings.TrimSpace(idea)
	if idea == "" {
		return nil, errors.Wrap(errors.ErrEmptyInput, "roadmap")
	}

	text, err := c.generate(ctx, OpRoadmap, genai.Text(roadmapPrompt(idea, loc)), c.structuredConfig(roadmapSchema()))
	if err != nil {
		return nil, err
	}

	roadmap, err := decodeRoadmap(text)
	if err != nil {
		logging.APIError("roadmap did not decode: %v", err)
		return nil, errors.Wrap(err, "roadmap")
	}
	return roadmap, nil
}

// Converse sends a tutor message and returns the plain-text reply. An empty
// reply is valid. prior is only transmitted when SendHistory is set;
// otherwise each turn is sent on its own.
func (c *Client) Converse(ctx context.Context, message string, prior []types.ChatMessage, loc types.Locale) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", errors.Wrap(errors.ErrEmptyInput, "chat")
	}

	var contents []*genai.Content
	if c.opts.SendHistory {
		contents = make([]*genai.Content, 0, len(prior)+1)
		for _, m := range prior {
			role := genai.RoleUser
			if m.Role == types.RoleModel {
				role = genai.RoleModel
			}
			contents = append(contents, genai.NewContentFromText(m.Text, genai.Role(role)))
		}
	}
	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))

	cfg := c.baseConfig()
	cfg.SystemInstruction = genai.NewContentFromText(tutorInstruction(loc), genai.RoleUser)

	return c.generate(ctx, OpChat, contents, cfg)
}
