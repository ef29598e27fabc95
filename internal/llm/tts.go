/**
* Name: 			tts.go
* Description: 		음성 합성(TTS) 요청 타입, 목소리 선택 규칙, Google TTS 클라이언트
* Workflow: 		사용자 언어로 목소리 선택, 텍스트 전송, 오디오 바이트 수신
 */

package llm

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/api/option"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
)

const (
	// 영어 사용자
	VoiceA = "nova"
	// 그 외 모든 언어
	VoiceB = "shimmer"

	DefaultLanguage = "english"
	FormatMP3       = "mp3"
)

type SpeechRequest struct {
	Model  string
	Input  string
	Voice  string
	Format string
}

type Synthesizer interface {
	Synthesize(ctx context.Context, req SpeechRequest) ([]byte, error)
}

// SelectVoice는 두 가지 목소리 중 하나만 고른다. 언어별 목소리 매핑은 하지 않음.
func SelectVoice(language string) string {
	if strings.Contains(strings.ToLower(language), "english") {
		return VoiceA
	}
	return VoiceB
}

// Google TTS 연결 정보
type GoogleSynthesizer struct {
	client *texttospeech.Client
	voices map[string]string
}

// voiceA, voiceB는 Google 목소리 이름 (예: en-US-Neural2-F)
func NewGoogleSynthesizer(ctx context.Context, credentialsFile, voiceA, voiceB string) (*GoogleSynthesizer, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, errors.New("NewGoogleSynthesizer(): failed to create TTS client: " + err.Error())
	}
	return &GoogleSynthesizer{
		client: client,
		voices: map[string]string{VoiceA: voiceA, VoiceB: voiceB},
	}, nil
}

// 텍스트를 오디오로 변환
func (g *GoogleSynthesizer) Synthesize(ctx context.Context, req SpeechRequest) ([]byte, error) {
	voiceName, ok := g.voices[req.Voice]
	if !ok {
		voiceName = g.voices[VoiceB]
	}

	resp, err := g.client.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: req.Input},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: languageCodeFromVoice(voiceName),
			Name:         voiceName,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: googleEncoding(req.Format),
		},
	})
	if err != nil {
		zap.L().Warn("GoogleSynthesizer.Synthesize(): SynthesizeSpeech failed", zap.Error(err))
		return nil, err
	}

	zap.L().Debug("GoogleSynthesizer.Synthesize(): succeeded", zap.Int("bytes", len(resp.AudioContent)))
	return resp.AudioContent, nil
}

// TTS 클라이언트 종료
func (g *GoogleSynthesizer) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// "en-US-Neural2-F" -> "en-US"
func languageCodeFromVoice(voiceName string) string {
	parts := strings.SplitN(voiceName, "-", 3)
	if len(parts) < 2 {
		return "en-US"
	}
	return parts[0] + "-" + parts[1]
}

func googleEncoding(format string) texttospeechpb.AudioEncoding {
	switch strings.ToLower(format) {
	case "wav", "pcm":
		return texttospeechpb.AudioEncoding_LINEAR16
	case "opus":
		return texttospeechpb.AudioEncoding_OGG_OPUS
	default:
		return texttospeechpb.AudioEncoding_MP3
	}
}
