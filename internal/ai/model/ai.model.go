package model

type GenerateRequest struct {
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens"`
}

type GenerateResponse struct {
	GeneratedText string `json:"generated_text"`
}
