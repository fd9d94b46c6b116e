package models

// Operation identifies a processing tool.
type Operation string

// Supported operations
const (
	OperationUpscale          Operation = "upscale"
	OperationRemoveBackground Operation = "remove-background"
	OperationStyleTransfer    Operation = "style-transfer"
	OperationReimagine        Operation = "reimagine"
	OperationAIImage          Operation = "ai-image"
	OperationAIVideo          Operation = "ai-video"
)

// Upscale image types
const (
	ImageTypeGeneral  = "general"
	ImageTypeProduct  = "product"
	ImageTypePortrait = "portrait"
	ImageTypeFaithful = "faithful"
)

// DefaultScale is used when the requested scale is not one of AllowedScales.
const DefaultScale = 2

// AllowedScales lists the upscale factors accepted by the API.
var AllowedScales = []int{2, 4, 8}

// Upload is an image received from a client.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}
