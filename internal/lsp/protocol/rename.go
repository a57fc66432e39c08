package protocol

// PrepareRenameParams represents the parameters for a prepareRename request
type PrepareRenameParams struct {
	TextDocumentPositionParams
}

// RenameParams represents the parameters for a rename request
type RenameParams struct {
	TextDocumentPositionParams
	NewName string `json:"newName"`
}

// TextEdit replaces the text in Range with NewText
type TextEdit struct {
	Range   Range  `json:"range"`
	NewText string `json:"newText"`
}

// WorkspaceEdit groups text edits by document URI
type WorkspaceEdit struct {
	Changes map[string][]TextEdit `json:"changes"`
}
