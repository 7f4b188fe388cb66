package request_models

// SpeechTranscriptionRequest is bound from a multipart form; the audio file is read separately.
type SpeechTranscriptionRequest struct {
	TranscriptText string `form:"transcript_text"`
	Language       string `form:"language"`
}
