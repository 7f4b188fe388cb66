package response_models

type SpeechTranscriptionResponse struct {
	Transcript string   `json:"transcript"`
	Confidence *float64 `json:"confidence"`
	Provider   string   `json:"provider"`
}
