package handlers

// ErrorResponse documents the error envelope returned by all endpoints.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// FilenameResponse documents the payload returned after an icon upload.
type FilenameResponse struct {
	Filename string `json:"filename"`
}
