package processor

import (
	"fmt"

	"github.com/cloudcarver/text2image/pkg/codec"
	"github.com/cloudcarver/text2image/pkg/config"
	"github.com/cloudcarver/text2image/pkg/descriptor"
)

const (
	ServiceName = "Hugging Face text-to-image"
	ServiceSlug = "hugging-face-text-to-image"
	DocsURL     = "https://docs.swiss-ai-center.ch/reference/core-concepts/service/"

	Summary = "This service is used to query text-to-image models from Hugging Face"

	Description = `The service is used to query text-to-image AI models from the Hugging Face inference API.

You can choose from any model available on the inference API from the Hugging Face Hub
(https://huggingface.co/models) that takes a text as input and outputs an image.

The request sent to the model has the following structure:

    {
        "inputs": "your input text"
    }

This service takes two input files:
  - json_description: a JSON file that defines the model you want to use and your access token.
  - input_text: a text file with the description of the image.

json_description example:

    {
        "api_token": "your_token",
        "api_url": "https://api-inference.huggingface.co/models/stabilityai/stable-cascade"
    }

input_text example:

    A majestic Hummingbird

The model may need some time to load on Hugging Face's side, you may encounter an error on
your first try. The answer of the inference API is cached, so if you encounter a loading
error, changing the input is a way to check whether the model is loaded.`
)

// NewDescriptor builds the descriptor this worker announces. The advertised
// URL comes from cfg.URL, or http://localhost:<port> when unset.
func NewDescriptor(cfg *config.Config) (*descriptor.Descriptor, error) {
	url := cfg.URL
	if url == "" {
		port := cfg.Port
		if port == 0 {
			port = config.DefaultPort
		}
		url = fmt.Sprintf("http://localhost:%d", port)
	}
	return descriptor.New(descriptor.Params{
		Name:        ServiceName,
		Slug:        ServiceSlug,
		URL:         url,
		Summary:     Summary,
		Description: Description,
		Status:      descriptor.Available,
		DataInFields: []descriptor.FieldDescription{
			{Name: FieldJSONDescription, Type: []codec.ContentType{codec.ApplicationJSON}},
			{Name: FieldInputText, Type: []codec.ContentType{codec.TextPlain}},
		},
		DataOutFields: []descriptor.FieldDescription{
			{Name: FieldResult, Type: []codec.ContentType{codec.ImagePNG, codec.ImageJPEG}},
		},
		Tags: []descriptor.Tag{
			{Name: "Natural Language Processing", Acronym: "NLP"},
		},
		HasAI:   true,
		DocsURL: DocsURL,
	})
}
