package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"brandpulse/internal/api/dto"
)

// 模型返回空文本时使用
const defaultAdScript = "Introducing our latest product. Experience innovation like never before!"

// AudioAd 生成好的音频广告
type AudioAd struct {
	Script   string
	Audio    []byte
	Filename string
}

// AudioAdService Gemini 写脚本，ElevenLabs 配音
type AudioAdService struct {
	text   TextGenerator
	speech SpeechSynthesizer
	log    *zap.Logger
}

func NewAudioAdService(text TextGenerator, speech SpeechSynthesizer, log *zap.Logger) *AudioAdService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AudioAdService{text: text, speech: speech, log: log}
}

// Generate 两个凭证都检查过才发第一个请求
func (s *AudioAdService) Generate(ctx context.Context, req dto.AudioAdReq) (*AudioAd, error) {
	if err := s.text.Ready(); err != nil {
		return nil, err
	}
	if err := s.speech.Ready(); err != nil {
		return nil, err
	}

	script, err := s.text.GenerateText(ctx, buildAdScriptPrompt(req.Company, req.Product))
	if err != nil {
		return nil, err
	}
	script = strings.TrimSpace(script)
	if script == "" {
		script = defaultAdScript
	}
	s.log.Info("广告脚本已生成",
		zap.String("company", req.Company),
		zap.Int("words", len(strings.Fields(script))),
	)

	audio, err := s.speech.Synthesize(ctx, script)
	if err != nil {
		return nil, err
	}

	return &AudioAd{
		Script:   script,
		Audio:    audio,
		Filename: adFilename(req.Company, req.Product),
	}, nil
}

// adFilename <company>-<product>-ad.mp3，去掉会破坏 Content-Disposition 的字符
func adFilename(company, product string) string {
	clean := strings.NewReplacer(`"`, "", `\`, "", "/", "-", "\r", "", "\n", "")
	return clean.Replace(company) + "-" + clean.Replace(product) + "-ad.mp3"
}
