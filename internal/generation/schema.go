package generation

import (
	"codemaster/internal/types"

	"google.golang.org/genai"
)

// Field names shared by the declared schemas and the decoders. The request
// must declare exactly these; the decoder rejects anything else.
const (
	fieldDescription = "description"
	fieldUseCases    = "useCases"
	fieldHelloWorld  = "helloWorld"
	fieldTools       = "tools"

	fieldToolName     = "name"
	fieldToolPlatform = "platform"
	fieldToolURL      = "url"

	fieldTitle      = "title"
	fieldDifficulty = "difficulty"
	fieldLanguages  = "languages"
	fieldSteps      = "steps"
)

const jsonMIMEType = "application/json"

func stringSchema() *genai.Schema {
	return &genai.Schema{Type: genai.TypeString}
}

func stringArraySchema() *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: stringSchema()}
}

// objectSchema builds an OBJECT schema whose properties are all required and
// declared in the given order.
func objectSchema(order []string, props map[string]*genai.Schema) *genai.Schema {
	return &genai.Schema{
		Type:             genai.TypeObject,
		Properties:       props,
		PropertyOrdering: order,
		Required:         order,
	}
}

func platformEnum() []string {
	out := make([]string, len(types.Platforms))
	for i, p := range types.Platforms {
		out[i] = string(p)
	}
	return out
}

// guideSchema is the structured-output contract for FetchLanguageGuide.
func guideSchema() *genai.Schema {
	tool := objectSchema(
		[]string{fieldToolName, fieldToolPlatform, fieldToolURL, fieldDescription},
		map[string]*genai.Schema{
			fieldToolName:     stringSchema(),
			fieldToolPlatform: {Type: genai.TypeString, Enum: platformEnum()},
			fieldToolURL:      stringSchema(),
			fieldDescription:  stringSchema(),
		},
	)
	return objectSchema(
		[]string{fieldDescription, fieldUseCases, fieldHelloWorld, fieldTools},
		map[string]*genai.Schema{
			fieldDescription: stringSchema(),
			fieldUseCases:    stringArraySchema(),
			fieldHelloWorld:  stringSchema(),
			fieldTools:       {Type: genai.TypeArray, Items: tool},
		},
	)
}

// roadmapSchema is the structured-output contract for GenerateRoadmap.
func roadmapSchema() *genai.Schema {
	step := objectSchema(
		[]string{fieldTitle, fieldDescription},
		map[string]*genai.Schema{
			fieldTitle:       stringSchema(),
			fieldDescription: stringSchema(),
		},
	)
	return objectSchema(
		[]string{fieldTitle, fieldDifficulty, fieldLanguages, fieldSteps},
		map[string]*genai.Schema{
			fieldTitle:      stringSchema(),
			fieldDifficulty: stringSchema(),
			fieldLanguages:  stringArraySchema(),
			fieldSteps:      {Type: genai.TypeArray, Items: step},
		},
	)
}
