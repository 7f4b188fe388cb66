package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/models/request_models"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

const maxAudioBytes = 10 << 20

type SpeechController struct {
	speechService services.SpeechServiceInterface
}

func NewSpeechController(speechService services.SpeechServiceInterface) *SpeechController {
	return &SpeechController{
		speechService: speechService,
	}
}

// Transcribe godoc
// @Summary Turn a voice request into text
// @Description With the web provider the browser transcribes and posts transcript_text; with iflytek an audio file is uploaded.
// @Tags Speech
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param audio formData file false "PCM/WAV audio"
// @Param transcript_text formData string false "Browser transcript"
// @Param language formData string false "Language, default zh_cn"
// @Success 200 {object} utils.APIResponse{data=response_models.SpeechTranscriptionResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /api/v1/speech/transcribe [post]
func (s *SpeechController) Transcribe(c *gin.Context) {
	var req request_models.SpeechTranscriptionRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	input := services.SpeechInput{TranscriptText: req.TranscriptText, Language: req.Language}
	if header, err := c.FormFile("audio"); err == nil {
		f, err := header.Open()
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Unreadable audio file")
			return
		}
		defer f.Close()

		audio, err := io.ReadAll(io.LimitReader(f, maxAudioBytes+1))
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Unreadable audio file")
			return
		}
		if len(audio) > maxAudioBytes {
			utils.RespondError(c, http.StatusRequestEntityTooLarge, "Audio file too large")
			return
		}
		input.Audio = audio
	}

	out, err := s.speechService.Transcribe(c.Request.Context(), input)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, out, "")
}
