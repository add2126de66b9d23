package types

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Password string `json:"password"`
}

// AnalyzeResult pairs one uploaded image with its transcription.
type AnalyzeResult struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
