package services

import (
	"context"
	"crypto/md5"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"wayfarer/internal/config"
	"wayfarer/internal/models/response_models"
	"wayfarer/pkg/logger"
	"wayfarer/pkg/utils"
)

const (
	SpeechProviderWeb     = "web"
	SpeechProviderIflytek = "iflytek"

	defaultSpeechLanguage = "zh_cn"
	iflytekEndpoint       = "https://api.xfyun.cn/v1/service/v1/iat"
)

// SpeechInput is one transcription request. Audio is nil when no file was attached.
type SpeechInput struct {
	Audio          []byte
	TranscriptText string
	Language       string
}

type SpeechServiceInterface interface {
	Transcribe(ctx context.Context, input SpeechInput) (response_models.SpeechTranscriptionResponse, error)
}

type SpeechService struct {
	cfg        config.SpeechConfig
	endpoint   string
	httpClient *http.Client
	now        func() time.Time
}

func NewSpeechService(cfg config.SpeechConfig) SpeechServiceInterface {
	return &SpeechService{
		cfg:        cfg,
		endpoint:   iflytekEndpoint,
		httpClient: &http.Client{Timeout: 45 * time.Second},
		now:        time.Now,
	}
}

func (s *SpeechService) Transcribe(ctx context.Context, input SpeechInput) (response_models.SpeechTranscriptionResponse, error) {
	switch strings.ToLower(strings.TrimSpace(s.cfg.Provider)) {
	case SpeechProviderWeb:
		if input.TranscriptText == "" {
			return response_models.SpeechTranscriptionResponse{}, utils.ErrTranscriptRequired
		}
		confidence := 1.0
		return response_models.SpeechTranscriptionResponse{
			Transcript: input.TranscriptText,
			Confidence: &confidence,
			Provider:   SpeechProviderWeb,
		}, nil
	case SpeechProviderIflytek:
		if input.Audio == nil {
			return response_models.SpeechTranscriptionResponse{}, utils.ErrAudioRequired
		}
		return s.iflytek(ctx, input)
	default:
		return response_models.SpeechTranscriptionResponse{}, utils.ErrUnsupportedSpeechProvider
	}
}

type iflytekParams struct {
	EngineType string `json:"engine_type"`
	Aue        string `json:"aue"`
	Language   string `json:"language"`
}

func (s *SpeechService) iflytek(ctx context.Context, input SpeechInput) (response_models.SpeechTranscriptionResponse, error) {
	if s.cfg.IflytekAppID == "" || s.cfg.IflytekAPIKey == "" {
		return response_models.SpeechTranscriptionResponse{}, utils.ErrSpeechNotConfigured
	}
	if len(input.Audio) == 0 {
		return response_models.SpeechTranscriptionResponse{}, utils.ErrEmptyAudio
	}

	language := input.Language
	if language == "" {
		language = defaultSpeechLanguage
	}
	params, err := json.Marshal(iflytekParams{EngineType: "sms16k", Aue: "raw", Language: language})
	if err != nil {
		return response_models.SpeechTranscriptionResponse{}, err
	}
	xParam := base64.StdEncoding.EncodeToString(params)
	curTime := strconv.FormatInt(s.now().Unix(), 10)
	sum := md5.Sum([]byte(s.cfg.IflytekAPIKey + curTime + xParam))

	form := url.Values{}
	form.Set("audio", base64.StdEncoding.EncodeToString(input.Audio))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return response_models.SpeechTranscriptionResponse{}, err
	}
	req.Header.Set("X-Appid", s.cfg.IflytekAppID)
	req.Header.Set("X-CurTime", curTime)
	req.Header.Set("X-Param", xParam)
	req.Header.Set("X-CheckSum", hex.EncodeToString(sum[:]))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		logger.FromContext(ctx).Warn("iflytek request failed", zap.Error(err))
		return response_models.SpeechTranscriptionResponse{}, &utils.GatewayError{Message: fmt.Sprintf("iFlyTek request failed: %v", err), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return response_models.SpeechTranscriptionResponse{}, &utils.GatewayError{Message: fmt.Sprintf("iFlyTek request failed: %v", err), Err: err}
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return response_models.SpeechTranscriptionResponse{}, &utils.GatewayError{Message: fmt.Sprintf("iFlyTek error: %d %s", resp.StatusCode, string(body))}
	}

	payload := gjson.ParseBytes(body)
	if payload.Get("code").String() != "0" {
		reason := payload.Get("desc").String()
		if reason == "" {
			reason = string(body)
		}
		return response_models.SpeechTranscriptionResponse{}, &utils.GatewayError{Message: "iFlyTek error: " + reason}
	}
	transcript := payload.Get("data").String()
	if transcript == "" {
		return response_models.SpeechTranscriptionResponse{}, &utils.GatewayError{Message: "iFlyTek response missing data"}
	}

	return response_models.SpeechTranscriptionResponse{
		Transcript: transcript,
		Provider:   SpeechProviderIflytek,
	}, nil
}
