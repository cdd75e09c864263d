package generation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"codemaster/internal/errors"
	"codemaster/internal/types"
)

// LanguageGuide is a decoded guide response. It carries a single description
// in whatever locale was requested; the resolver decides where it goes.
type LanguageGuide struct {
	Description string      `json:"description"`
	UseCases    []string    `json:"useCases"`
	HelloWorld  string      `json:"helloWorld"`
	Tools       []GuideTool `json:"tools"`
}

// GuideTool is one tool entry of a guide response.
type GuideTool struct {
	Name        string         `json:"name"`
	Platform    types.Platform `json:"platform"`
	URL         string         `json:"url"`
	Description string         `json:"description"`
}

// decodeStrict decodes one JSON object into v. Anything other than a single
// object with known fields of the right types is a parse error.
func decodeStrict(text string, v interface{}) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return errors.Mark(errors.New("empty response"), errors.ErrGenerationParse)
	}
	if !strings.HasPrefix(trimmed, "{") {
		return errors.Mark(errors.Newf("response is not a JSON object: %.40q", trimmed), errors.ErrGenerationParse)
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(trimmed)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Mark(errors.Wrap(err, "decode response"), errors.ErrGenerationParse)
	}
	// More() is false before a stray '}' or ']', so decode once more and
	// require a clean EOF.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.Mark(errors.New("trailing data after JSON object"), errors.ErrGenerationParse)
	}
	return nil
}

// canonicalPlatform maps a platform label onto the enumeration, ignoring case.
func canonicalPlatform(p types.Platform) (types.Platform, bool) {
	for _, known := range types.Platforms {
		if strings.EqualFold(string(p), string(known)) {
			return known, true
		}
	}
	return "", false
}

func decodeGuide(text string) (*LanguageGuide, error) {
	var g LanguageGuide
	if err := decodeStrict(text, &g); err != nil {
		return nil, err
	}
	if strings.TrimSpace(g.Description) == "" {
		return nil, errors.Mark(errors.New("guide has no description"), errors.ErrGenerationParse)
	}
	if g.UseCases == nil {
		g.UseCases = []string{}
	}
	if g.Tools == nil {
		g.Tools = []GuideTool{}
	}
	for i := range g.Tools {
		p, ok := canonicalPlatform(g.Tools[i].Platform)
		if !ok {
			return nil, errors.Mark(
				errors.Newf("tool %d (%s): platform %q not one of %v", i, g.Tools[i].Name, g.Tools[i].Platform, types.Platforms),
				errors.ErrGenerationParse,
			)
		}
		g.Tools[i].Platform = p
	}
	return &g, nil
}

func decodeRoadmap(text string) (*types.ProjectRoadmap, error) {
	var r types.ProjectRoadmap
	if err := decodeStrict(text, &r); err != nil {
		return nil, err
	}
	return r.Normalize(), nil
}

// String renders a short summary for logs.
func (g *LanguageGuide) String() string {
	return fmt.Sprintf("guide{use_cases=%d tools=%d hello_world=%t}", len(g.UseCases), len(g.Tools), g.HelloWorld != "")
}
