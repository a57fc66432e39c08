package protocol

// ReferenceParams represents the parameters for a references request
type ReferenceParams struct {
	TextDocumentPositionParams
	Context ReferenceContext `json:"context"`
}

// ReferenceContext controls whether declarations are part of the result
type ReferenceContext struct {
	IncludeDeclaration bool `json:"includeDeclaration"`
}
